package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vinimompox/products-service/internal/core/domain"
)

type stubUserService struct {
	registerFn func(ctx context.Context, username, rawPassword, email string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, username, rawPassword, email string) (*domain.User, error) {
	return s.registerFn(ctx, username, rawPassword, email)
}

func (s *stubUserService) Authenticate(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubUserService) Authorities(user *domain.User) []string {
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, rawPassword, email string) (*domain.User, error) {
			if username != "alice" || rawPassword != "longenough1" {
				t.Fatalf("unexpected args: %s %s", username, rawPassword)
			}
			return &domain.User{
				Username: username,
				Email:    email,
				Roles:    []domain.Role{{Name: domain.RoleUser}},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"longenough1","confirm_password":"longenough1","email":"a@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" || resp["email"] != "a@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must not appear in the response")
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, rawPassword, email string) (*domain.User, error) {
			t.Fatalf("service should not be called on validation failure")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"","password":"short","confirm_password":"different"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var fields map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, f := range []string{"username", "password", "confirm_password"} {
		if fields[f] == "" {
			t.Fatalf("expected violation for %q, got %+v", f, fields)
		}
	}
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, rawPassword, email string) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"bob","password":"longenough1","confirm_password":"longenough1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var fields map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if fields["username"] == "" {
		t.Fatalf("expected username violation, got %+v", fields)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, rawPassword, email string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_UserInfo(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/userinfo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "admin")
	c.Set("authorities", []string{"ROLE_ADMIN", "ROLE_USER"})

	if err := h.UserInfo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "admin" {
		t.Fatalf("username = %q", resp.Username)
	}
	if len(resp.Roles) != 2 || resp.Roles[0] != "ADMIN" || resp.Roles[1] != "USER" {
		t.Fatalf("roles = %v, want [ADMIN USER]", resp.Roles)
	}
}

func TestAuthHandler_UserInfo_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/userinfo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.UserInfo(c)
	if err == nil {
		t.Fatalf("expected error without authentication context")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

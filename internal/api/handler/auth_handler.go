package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vinimompox/products-service/internal/api/metrics"
	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
	"github.com/vinimompox/products-service/internal/core/service"
)

// AuthHandler handles registration and the authenticated identity endpoint.
type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email,omitempty"`
}

type registerResponse struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type userInfoResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Register creates a new user account with the default USER role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	// Field-level validation reports every violation at once, keyed by field.
	fieldErrs := service.ValidateRegistration(ports.RegistrationPayload{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
	})
	if fieldErrs != nil {
		metrics.RegistrationsTotal.WithLabelValues("validation_failed").Inc()
		return c.JSON(http.StatusBadRequest, fieldErrs)
	}

	start := time.Now()
	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			metrics.RegistrationsTotal.WithLabelValues("username_taken").Inc()
			return c.JSON(http.StatusBadRequest, ports.FieldErrors{
				"username": "username is already taken",
			})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.RegistrationDuration.Observe(time.Since(start).Seconds())
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}

// UserInfo returns the identity of the authenticated caller.
//
// @Summary      Current user identity
// @Tags         auth
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  userInfoResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/userinfo [get]
func (h *AuthHandler) UserInfo(c echo.Context) error {
	username, _ := c.Get("username").(string)
	if username == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	authorities, _ := c.Get("authorities").([]string)
	roles := make([]string, 0, len(authorities))
	for _, a := range authorities {
		roles = append(roles, strings.TrimPrefix(a, "ROLE_"))
	}

	return c.JSON(http.StatusOK, userInfoResponse{
		Username: username,
		Roles:    roles,
	})
}

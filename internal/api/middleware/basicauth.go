package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vinimompox/products-service/internal/api/metrics"
	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

// AttemptLimiter throttles failed logins per username. A nil limiter
// disables throttling.
type AttemptLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// BasicAuth verifies the HTTP Basic credentials on every request and injects
// the username and authority tokens into context. There is no session state:
// each request re-runs the password check.
//
// All credential failures produce the same 401 body so a caller cannot tell
// an unknown username from a wrong password.
func BasicAuth(users ports.UserService, limiter AttemptLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, password, ok := parseBasic(c.Request().Header.Get("Authorization"))
			if !ok {
				return unauthorized(c)
			}

			ctx := c.Request().Context()

			if limiter != nil {
				blocked, err := limiter.Blocked(ctx, username)
				if err != nil {
					return err
				}
				if blocked {
					metrics.AuthAttemptsTotal.WithLabelValues("throttled").Inc()
					return domain.ErrTooManyAttempts
				}
			}

			user, err := users.Authenticate(ctx, username, password)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					metrics.AuthAttemptsTotal.WithLabelValues("invalid").Inc()
					if limiter != nil {
						_ = limiter.RecordFailure(ctx, username)
					}
					return unauthorized(c)
				}
				return err
			}

			if limiter != nil {
				_ = limiter.Reset(ctx, username)
			}
			metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()

			c.Set("username", user.Username)
			c.Set("authorities", users.Authorities(user))

			return next(c)
		}
	}
}

// parseBasic decodes an "Authorization: Basic <base64>" header into its
// username and password parts.
func parseBasic(header string) (username, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", false
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(raw), ":")
	if !ok || username == "" {
		return "", "", false
	}
	return username, password, true
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="products"`)
	return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
}

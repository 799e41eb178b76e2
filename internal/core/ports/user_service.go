package ports

import (
	"context"

	"github.com/vinimompox/products-service/internal/core/domain"
)

// RegistrationPayload is the DTO passed from the transport layer to
// ValidateRegistration and UserService.Register.
type RegistrationPayload struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
}

// FieldErrors maps a field name to a human-readable violation message.
// All violated fields are reported together, never just the first.
type FieldErrors map[string]string

// UserService defines registration and authentication use cases.
type UserService interface {
	// Register creates a new account with the default USER role.
	Register(ctx context.Context, username, rawPassword, email string) (*domain.User, error)

	// Authenticate verifies the credentials and returns the account.
	// Unknown username and wrong password are indistinguishable to the
	// caller: both return domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, rawPassword string) (*domain.User, error)

	// Authorities maps the user's roles to normalized authority tokens
	// ("ADMIN" -> "ROLE_ADMIN"), sorted by role name.
	Authorities(user *domain.User) []string
}

package ports

import (
	"context"

	"github.com/vinimompox/products-service/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The backing store must enforce username uniqueness itself (unique index):
// the existence-check-then-insert sequence in the service layer is advisory
// only, and Create must return domain.ErrUsernameTaken when two concurrent
// registrations collide on the same username.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Save(ctx context.Context, role *domain.Role) (*domain.Role, error)
}

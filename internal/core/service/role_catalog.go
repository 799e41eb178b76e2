package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

// RoleCatalog resolves role names to persisted roles and lazily creates the
// well-known ones at bootstrap.
type RoleCatalog struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

func NewRoleCatalog(repo ports.RoleRepository, log zerolog.Logger) *RoleCatalog {
	return &RoleCatalog{repo: repo, log: log}
}

// Resolve is a pure lookup; it never creates.
func (c *RoleCatalog) Resolve(ctx context.Context, name string) (*domain.Role, error) {
	return c.repo.FindByName(ctx, name)
}

// Ensure returns the role with the given name, creating it when absent.
// Idempotent by name: two calls yield the same domain role even if a
// concurrent bootstrap persisted it in between (the unique index on the
// role name makes the duplicate insert fail, after which the existing row
// is re-read).
func (c *RoleCatalog) Ensure(ctx context.Context, name string) (*domain.Role, error) {
	role, err := c.repo.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("ensure role %q: %w", name, err)
	}

	created, err := c.repo.Save(ctx, &domain.Role{Name: name})
	if err != nil {
		// Lost the creation race; the winner's row is what we wanted anyway.
		existing, findErr := c.repo.FindByName(ctx, name)
		if findErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("ensure role %q: %w", name, err)
	}

	c.log.Info().Str("role", name).Msg("role created")
	return created, nil
}

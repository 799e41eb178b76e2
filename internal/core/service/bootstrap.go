package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

// BootstrapConfig carries the initial credentials for the two demo accounts.
// These accounts are a development and demo convenience, not a credential
// provisioning mechanism. Leave the passwords empty in production and no
// accounts are created.
type BootstrapConfig struct {
	AdminPassword string
	UserPassword  string
}

// Bootstrap seeds the baseline reference data before the server starts
// accepting traffic: the ADMIN and USER roles, and optionally the demo
// accounts admin (roles ADMIN+USER) and user (roles USER). It takes its
// collaborators as parameters and holds no state of its own, so it can be
// run exactly once from main.
func Bootstrap(ctx context.Context, users ports.UserRepository, catalog *RoleCatalog, hasher ports.PasswordHasher, cfg BootstrapConfig, log zerolog.Logger) error {
	adminRole, err := catalog.Ensure(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	userRole, err := catalog.Ensure(ctx, domain.RoleUser)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if cfg.AdminPassword != "" {
		if err := ensureAccount(ctx, users, hasher, "admin", cfg.AdminPassword,
			[]domain.Role{*adminRole, *userRole}, log); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}
	if cfg.UserPassword != "" {
		if err := ensureAccount(ctx, users, hasher, "user", cfg.UserPassword,
			[]domain.Role{*userRole}, log); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	return nil
}

func ensureAccount(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, username, password string, roles []domain.Role, log zerolog.Logger) error {
	exists, err := users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Roles:        roles,
	})
	if errors.Is(err, domain.ErrUsernameTaken) {
		// Another replica seeded it first.
		return nil
	}
	if err != nil {
		return err
	}

	log.Warn().Str("username", username).Msg("demo account created; not for production use")
	return nil
}

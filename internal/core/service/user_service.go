package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

// dummyHash is a valid bcrypt digest of a throwaway string. Authenticate
// runs a compare against it when the username is unknown so that lookup
// misses and password mismatches take the same time and return the same
// error, which keeps usernames non-enumerable.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService implements registration, authentication, and authority
// resolution over the user and role stores.
type UserService struct {
	users  ports.UserRepository
	roles  *RoleCatalog
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles *RoleCatalog, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, log: log}
}

// Register creates a new account holding exactly the default USER role.
// The raw password is hashed before the user ever reaches the repository
// and is never logged.
func (s *UserService) Register(ctx context.Context, username, rawPassword, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(rawPassword) == "" {
		return nil, domain.ErrInvalidInput
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	role, err := s.roles.Resolve(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			// Bootstrap did not run; this is a deployment fault, not a
			// user error.
			s.log.Error().Str("role", domain.RoleUser).Msg("default role missing, bootstrap did not run")
			return nil, domain.ErrRoleNotConfigured
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(email),
		Roles:        []domain.Role{*role},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The unique index catches registrations that raced past the
		// advisory existence check above.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate verifies the credentials against the stored hash.
func (s *UserService) Authenticate(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	if username == "" || rawPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn the same hashing cost as the found path.
			s.hasher.Check(rawPassword, dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Check(rawPassword, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Authorities maps roles to "ROLE_"-prefixed uppercase tokens, sorted by
// role name so the result is deterministic.
func (s *UserService) Authorities(user *domain.User) []string {
	tokens := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		tokens = append(tokens, "ROLE_"+strings.ToUpper(r.Name))
	}
	sort.Strings(tokens)
	return tokens
}

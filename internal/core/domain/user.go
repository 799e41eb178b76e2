package domain

import "errors"

// Well-known role names seeded at bootstrap. The set is open: administrative
// tooling may add more.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrUsernameTaken = errors.New("username already taken")
var ErrRoleNotConfigured = errors.New("default role not configured")
var ErrRoleNotFound = errors.New("role not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Role is a named grant. Equality is defined by name, not by storage
// identity: two Role values with the same name are the same domain role
// regardless of when each was persisted.
type Role struct {
	ID   string `json:"id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

// Equal reports whether both roles name the same grant.
func (r Role) Equal(other Role) bool {
	return r.Name == other.Name
}

// User models an account in the catalog. Roles is a set in spirit; HasRole
// is the membership check so callers never compare by ID.
type User struct {
	ID           string `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Roles        []Role `json:"roles" bson:"roles"`
}

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

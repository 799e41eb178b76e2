package ports

// PasswordHasher abstracts salted adaptive password hashing. Hash must embed
// a random salt so that two calls with the same input produce different
// digests, both of which Check accepts.
type PasswordHasher interface {
	Hash(rawPassword string) (string, error)
	Check(rawPassword, hash string) bool
}

package service

// PasswordHasher stores and verifies account passwords for the local identity provider.
// Inputs longer than 72 bytes are rejected by Hash rather than silently truncated.
type PasswordHasher interface {
	// Hash returns the salted hash persisted on the credential row.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored hash. A malformed hash never matches.
	Check(password, hash string) bool
}

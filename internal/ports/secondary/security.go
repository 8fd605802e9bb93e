package secondary

// PasswordHasher defines the secondary port for password hashing.
type PasswordHasher interface {
	// Hash derives a storable hash from a plain text password.
	Hash(password string) (string, error)

	// Verify reports whether the plain text password matches the hash.
	Verify(password, hash string) bool
}

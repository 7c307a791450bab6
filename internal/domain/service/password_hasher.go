package service

// PasswordHasher abstracts the slow, salted password hash. Implementations
// mix in a server-wide secret pepper before hashing, so hashes are only
// verifiable by a process holding the same secret.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}

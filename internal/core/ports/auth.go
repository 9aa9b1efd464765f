package ports

// PasswordHasher hashes plaintext passwords for storage and verifies
// candidates against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenIssuer mints signed access tokens for authenticated restaurant
// owners.
type TokenIssuer interface {
	Issue(username string, restaurantID int) (string, error)
}

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	accountNumberMin  = 10_000_000
	accountNumberSpan = 90_000_000
)

// GenerateAccountNumber returns a random 8-digit account number. Uniqueness
// is enforced by the store's unique constraint; callers retry on collision.
func GenerateAccountNumber() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(accountNumberSpan))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return accountNumberMin + n.Int64(), nil
}

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/red7x7/membership-api/internal/constants"
)

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

// GenerateTemporaryPassword generates a one-time password for admin-issued
// accounts. It is returned to the caller once and stored only as a hash.
func GenerateTemporaryPassword() (string, error) {
	buf := make([]byte, constants.TemporaryPasswordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}

package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	ShortIDLength = 8
	alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateShortID returns a random 8-character alphanumeric link id. The id
// is not checked for uniqueness before insert; the 62^8 space keeps the
// collision odds acceptable for this system's volume.
func GenerateShortID() (string, error) {
	return GenerateShortIDWithLength(ShortIDLength)
}

func GenerateShortIDWithLength(length int) (string, error) {
	id := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range id {
		randomIndex, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		id[i] = alphabet[randomIndex.Int64()]
	}

	return string(id), nil
}

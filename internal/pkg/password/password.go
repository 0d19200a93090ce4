package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// TempAlphabet is the character set temporary passwords are drawn from.
const TempAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&"

// TempLength is the length of generated temporary passwords.
const TempLength = 8

// GenerateTemp returns a random temporary password. The plaintext is shown to
// the caller exactly once; only the hash is ever stored.
func GenerateTemp() (string, error) {
	buf := make([]byte, TempLength)
	max := big.NewInt(int64(len(TempAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = TempAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches the stored bcrypt hash.
func Compare(hash string, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"feriascalendar/internal/domain"
)

// DefaultBcryptCost is used by HashSecret.
const DefaultBcryptCost = 12

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type secretChecker struct {
	configured string
	hashed     bool
}

// NewSecretChecker returns a SecretChecker for the configured admin secret. A value with a bcrypt
// prefix is treated as a hash; anything else is compared as plain text. An empty value never matches.
func NewSecretChecker(configured string) domain.SecretChecker {
	return &secretChecker{configured: configured, hashed: IsBcryptHash(configured)}
}

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func (c *secretChecker) Check(secret string) bool {
	if c.configured == "" {
		return false
	}
	if c.hashed {
		return bcrypt.CompareHashAndPassword([]byte(c.configured), []byte(secret)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(c.configured), []byte(secret)) == 1
}

// HashSecret returns a bcrypt hash suitable for ADMIN_PASSWORD.
func HashSecret(secret string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

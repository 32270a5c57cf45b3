// Package password implements one-way password hashing (bcrypt) and the
// registration complexity policy.
package password

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"orbit/internal/common"
)

// specialChars is the punctuation set accepted by the complexity policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

const (
	minLength = 8
	maxLength = 100
)

// Hasher produces salted bcrypt hashes with a fixed work factor. The cost
// is process-wide, read-only configuration; the resulting hash string
// embeds algorithm, cost, and salt, so verification needs no external
// parameters. Hashing is intentionally slow (roughly 100-300ms per call
// at cost 12); do not lower the cost for convenience.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs below the
// bcrypt minimum fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted bcrypt hash of plain. A fresh random salt is
// used on every call, so hashing the same password twice produces
// different strings.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrValidation)
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Verify reports whether plain matches hash. Failure is a value, not a
// fault: wrong passwords, malformed hash strings, and any other mismatch
// all return false. The comparison itself is constant-time with respect
// to the secret content.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePolicy checks plain against the registration complexity policy:
// 8–100 characters with at least one uppercase letter, one lowercase
// letter, one digit, and one character from specialChars. Violations are
// reported as common.ErrWeakPassword. Only registration calls this;
// login never does.
func ValidatePolicy(plain string) error {
	if len(plain) < minLength {
		return fmt.Errorf("%w: must be at least %d characters", common.ErrWeakPassword, minLength)
	}
	if len(plain) > maxLength {
		return fmt.Errorf("%w: must be at most %d characters", common.ErrWeakPassword, maxLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("%w: must contain at least one uppercase letter", common.ErrWeakPassword)
	case !hasLower:
		return fmt.Errorf("%w: must contain at least one lowercase letter", common.ErrWeakPassword)
	case !hasDigit:
		return fmt.Errorf("%w: must contain at least one digit", common.ErrWeakPassword)
	case !hasSpecial:
		return fmt.Errorf("%w: must contain at least one special character", common.ErrWeakPassword)
	}

	return nil
}

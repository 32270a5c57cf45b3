package users

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored identity record. PasswordHash never leaves the
// service layer; HTTP response types strip it.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate describes a partial profile mutation. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	FullName *string
}

// TokenPair is what a successful login or refresh produces. Both tokens
// are stateless; the refresh token is simply longer-lived.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

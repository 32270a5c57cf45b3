package users

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the credential-store persistence boundary.
//
// Email lookups are exact and case-sensitive. Create must be race-safe:
// the storage layer's unique constraint, not an application pre-check,
// is the duplicate-email guarantee.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*User, error)

	// Delete removes the user and everything they own in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

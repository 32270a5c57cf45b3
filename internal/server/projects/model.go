package projects

import (
	"time"

	"github.com/google/uuid"
)

// Project statuses. Stored as plain strings.
const (
	StatusActive    = "active"
	StatusArchived  = "archived"
	StatusCompleted = "completed"
)

// Project is a user-owned resource. Every read and write is scoped by
// UserID: a project that exists but belongs to someone else is
// indistinguishable from one that does not exist.
type Project struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Status      string
	Color       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateInput describes a project creation request. Status defaults to
// "active" when empty.
type CreateInput struct {
	Name        string
	Description *string
	Status      string
	Color       *string
}

// UpdateInput describes a partial project mutation. Nil fields are left
// unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *string
	Color       *string
}

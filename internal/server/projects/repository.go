package projects

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the project persistence boundary. All single-row
// operations take the owner's user ID and match on both columns, so
// ownership enforcement lives in the query itself.
type Repository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Project, error)
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*Project, error)
	Update(ctx context.Context, id, userID uuid.UUID, upd UpdateInput) (*Project, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

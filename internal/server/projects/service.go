package projects

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"orbit/internal/common"
)

// Service validates project input and delegates to the repository. It
// holds no state of its own; ownership scoping happens in the queries.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validStatus(s string) error {
	return validation.Validate(s, validation.In(StatusActive, StatusArchived, StatusCompleted))
}

func (s *Service) validateCreate(in CreateInput) error {
	if err := validation.Validate(in.Name, validation.Required, validation.Length(1, 255)); err != nil {
		return fmt.Errorf("%w: name: %v", common.ErrValidation, err)
	}
	if in.Description != nil {
		if err := validation.Validate(*in.Description, validation.Length(0, 1000)); err != nil {
			return fmt.Errorf("%w: description: %v", common.ErrValidation, err)
		}
	}
	if in.Status != "" {
		if err := validStatus(in.Status); err != nil {
			return fmt.Errorf("%w: status: %v", common.ErrValidation, err)
		}
	}
	if in.Color != nil {
		if err := validation.Validate(*in.Color, validation.Length(0, 7)); err != nil {
			return fmt.Errorf("%w: color: %v", common.ErrValidation, err)
		}
	}
	return nil
}

func (s *Service) validateUpdate(upd UpdateInput) error {
	if upd.Name != nil {
		if err := validation.Validate(*upd.Name, validation.Required, validation.Length(1, 255)); err != nil {
			return fmt.Errorf("%w: name: %v", common.ErrValidation, err)
		}
	}
	if upd.Description != nil {
		if err := validation.Validate(*upd.Description, validation.Length(0, 1000)); err != nil {
			return fmt.Errorf("%w: description: %v", common.ErrValidation, err)
		}
	}
	if upd.Status != nil {
		if err := validation.Validate(*upd.Status, validation.Required); err != nil {
			return fmt.Errorf("%w: status: %v", common.ErrValidation, err)
		}
		if err := validStatus(*upd.Status); err != nil {
			return fmt.Errorf("%w: status: %v", common.ErrValidation, err)
		}
	}
	if upd.Color != nil {
		if err := validation.Validate(*upd.Color, validation.Length(0, 7)); err != nil {
			return fmt.Errorf("%w: color: %v", common.ErrValidation, err)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*Project, error) {

	if err := s.validateCreate(in); err != nil {
		return nil, err
	}

	project := &Project{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Color:       in.Color,
	}

	project, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, common.ErrInternal
	}

	return project, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrInternal
	}
	if result == nil {
		result = []Project{}
	}
	return result, nil
}

// Get returns the project only if it belongs to userID. A missing row and
// a foreign-owned row both surface as common.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Project, error) {
	project, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return project, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, upd UpdateInput) (*Project, error) {

	if err := s.validateUpdate(upd); err != nil {
		return nil, err
	}

	project, err := s.repo.Update(ctx, id, userID, upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return project, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}
	return nil
}

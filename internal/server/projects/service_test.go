package projects

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit/internal/common"
)

type fakeRepo struct {
	createOut *Project
	createErr error

	listOut []Project
	listErr error

	getOut *Project
	getErr error

	updateOut *Project
	updateErr error

	deleteErr error

	createCalls int
}

func (f *fakeRepo) Create(ctx context.Context, p *Project) (*Project, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	return p, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (*Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeRepo) Update(ctx context.Context, id, userID uuid.UUID, upd UpdateInput) (*Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return f.deleteErr
}

func TestServiceCreate_Success(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	userID := uuid.New()
	desc := "Q3 marketing launch"
	p, err := s.Create(context.Background(), userID, CreateInput{Name: "Launch", Description: &desc})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, StatusActive, p.Status)
}

func TestServiceCreate_Validation(t *testing.T) {
	longDesc := strings.Repeat("x", 1001)
	longName := strings.Repeat("x", 256)
	badStatus := "paused"
	longColor := "#ff00ff00"

	tests := []struct {
		name string
		in   CreateInput
	}{
		{"empty name", CreateInput{Name: ""}},
		{"name too long", CreateInput{Name: longName}},
		{"description too long", CreateInput{Name: "p", Description: &longDesc}},
		{"unknown status", CreateInput{Name: "p", Status: badStatus}},
		{"color too long", CreateInput{Name: "p", Color: &longColor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			s := NewService(repo)

			_, err := s.Create(context.Background(), uuid.New(), tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
			assert.Zero(t, repo.createCalls, "invalid input must fail before the store is touched")
		})
	}
}

func TestServiceList_EmptyIsNotNil(t *testing.T) {
	s := NewService(&fakeRepo{})

	got, err := s.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestServiceGet_NotFound(t *testing.T) {
	s := NewService(&fakeRepo{getErr: common.ErrNotFound})

	_, err := s.Get(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestServiceGet_RepoFailure(t *testing.T) {
	s := NewService(&fakeRepo{getErr: errors.New("db down")})

	_, err := s.Get(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrInternal))
}

func TestServiceUpdate_InvalidStatus(t *testing.T) {
	s := NewService(&fakeRepo{})

	status := "on-hold"
	_, err := s.Update(context.Background(), uuid.New(), uuid.New(), UpdateInput{Status: &status})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestServiceUpdate_EmptyNameRejected(t *testing.T) {
	s := NewService(&fakeRepo{})

	name := ""
	_, err := s.Update(context.Background(), uuid.New(), uuid.New(), UpdateInput{Name: &name})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestServiceUpdate_NotFound(t *testing.T) {
	s := NewService(&fakeRepo{updateErr: common.ErrNotFound})

	name := "Renamed"
	_, err := s.Update(context.Background(), uuid.New(), uuid.New(), UpdateInput{Name: &name})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestServiceDelete_NotFound(t *testing.T) {
	s := NewService(&fakeRepo{deleteErr: common.ErrNotFound})

	err := s.Delete(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

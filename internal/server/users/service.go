package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"orbit/internal/common"
	"orbit/internal/server/auth"
	"orbit/internal/server/config"
	"orbit/internal/server/password"
)

// Service orchestrates registration and login on top of the credential
// store, the password hasher, and the token codec.
type Service struct {
	repo       Repository
	hasher     *password.Hasher
	tokens     *auth.Manager
	accessTTL  time.Duration
	refreshTTL time.Duration

	// dummyHash is compared against when login hits an unknown email, so
	// that the request costs a bcrypt verification either way and timing
	// does not reveal whether the account exists.
	dummyHash string
}

func NewService(repo Repository, hasher *password.Hasher, tokens *auth.Manager, cfg *config.Config) *Service {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		dummy = ""
	}

	return &Service{
		repo:       repo,
		hasher:     hasher,
		tokens:     tokens,
		accessTTL:  cfg.AccessTokenValidityDuration,
		refreshTTL: cfg.RefreshTokenValidityDuration,
		dummyHash:  dummy,
	}
}

// Register validates the password policy and email format, hashes the
// password, and persists a new user. The policy check runs before any
// store access; duplicate emails surface as common.ErrEmailTaken from
// the store's unique constraint.
func (s *Service) Register(ctx context.Context, email, plainPassword string, fullName *string) (*User, error) {

	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return nil, fmt.Errorf("%w: email: %v", common.ErrValidation, err)
	}
	if fullName != nil {
		if err := validation.Validate(*fullName, validation.Required, validation.Length(1, 255)); err != nil {
			return nil, fmt.Errorf("%w: full_name: %v", common.ErrValidation, err)
		}
	}
	if err := password.ValidatePolicy(plainPassword); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a token pair. Unknown email
// and wrong password are indistinguishable to the caller: both return
// common.ErrInvalidCredentials after a bcrypt comparison has run.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (*TokenPair, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// burn the same hashing cost as a real comparison
			password.Verify(plainPassword, s.dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.generateTokenPair(user.ID)
}

// Refresh validates a refresh token, confirms the subject still exists,
// and issues a fresh token pair. Refresh tokens carry no server-side
// state; they are ordinary tokens with a longer lifetime.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {

	subject, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrInternal
	}

	return s.generateTokenPair(user.ID)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// UpdateProfile applies a partial profile mutation. The store refreshes
// updated_at as part of the write.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*User, error) {

	if upd.FullName != nil {
		if err := validation.Validate(*upd.FullName, validation.Required, validation.Length(1, 255)); err != nil {
			return nil, fmt.Errorf("%w: full_name: %v", common.ErrValidation, err)
		}
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return user, nil
}

// DeleteAccount removes the user and cascades to everything they own.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}
	return nil
}

func (s *Service) generateTokenPair(userID uuid.UUID) (*TokenPair, error) {

	accessToken, err := s.tokens.Generate(userID.String(), s.accessTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	refreshToken, err := s.tokens.Generate(userID.String(), s.refreshTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

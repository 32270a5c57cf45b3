package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orbit/internal/common"
	"orbit/internal/server/projects"
	"orbit/internal/server/users"
)

// detailResponse is the uniform error body: {"detail": "..."}.
type detailResponse struct {
	Detail string `json:"detail"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type projectResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newUserResponse(u *users.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newProjectResponse(p *projects.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newTokenResponse(pair *users.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	}
}

func abortWithError(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, detailResponse{Detail: detail})
}

// abortWithChallenge is abortWithError plus the WWW-Authenticate header
// required on bearer-auth rejections.
func abortWithChallenge(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	abortWithError(c, http.StatusUnauthorized, detail)
}

// abortServiceError maps the service-layer error taxonomy onto HTTP
// statuses and bodies. notFoundDetail names the resource in 404s.
// Internal details leak into the body only in debug mode.
func (s *Server) abortServiceError(c *gin.Context, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrWeakPassword):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, common.ErrEmailTaken):
		abortWithError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrInvalidCredentials):
		abortWithChallenge(c, "Incorrect email or password")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		abortWithChallenge(c, "Could not validate credentials")
	case errors.Is(err, common.ErrNotFound):
		abortWithError(c, http.StatusNotFound, notFoundDetail)
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		if s.debug {
			abortWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

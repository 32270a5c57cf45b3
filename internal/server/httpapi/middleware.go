package httpapi

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orbit/internal/server/users"
)

// currentUserKey is the gin context key the authorizer stores the
// resolved user under.
const currentUserKey = "currentUser"

// authMiddleware resolves the bearer token into a live user account.
// Every failure, whatever the stage, produces the same 401 body so the
// response does not reveal whether a token was malformed, expired, or
// belonged to a deleted account. The stage is still logged at debug
// level for operators.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			s.logger.Debug(c.Request.Context(), "authorization rejected", "stage", "header")
			abortWithChallenge(c, "Could not validate credentials")
			return
		}

		subject, err := s.tokens.Parse(parts[1])
		if err != nil {
			s.logger.Debug(c.Request.Context(), "authorization rejected", "stage", "token")
			abortWithChallenge(c, "Could not validate credentials")
			return
		}

		id, err := uuid.Parse(subject)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "authorization rejected", "stage", "subject")
			abortWithChallenge(c, "Could not validate credentials")
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), id)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "authorization rejected", "stage", "lookup")
			abortWithChallenge(c, "Could not validate credentials")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the user resolved by authMiddleware. It is only
// valid on routes behind the middleware.
func currentUser(c *gin.Context) *users.User {
	return c.MustGet(currentUserKey).(*users.User)
}

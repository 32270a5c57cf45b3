// Package httpapi exposes the public HTTP surface: registration, login,
// token refresh, the profile endpoints, and project CRUD. Everything
// past the /auth/register, /auth/login and /auth/refresh endpoints sits
// behind the bearer-token authorizer.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orbit/internal/logging"
	"orbit/internal/server/auth"
	"orbit/internal/server/projects"
	"orbit/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	users    *users.Service
	projects *projects.Service
	tokens   *auth.Manager
	db       *sql.DB
	debug    bool
}

func NewServer(address string, l logging.Logger, us *users.Service, ps *projects.Service, tokens *auth.Manager, db *sql.DB, debug bool) (*Server, error) {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		projects: ps,
		tokens:   tokens,
		db:       db,
		debug:    debug,
	}, nil
}

func (s *Server) Router() *gin.Engine {
	if !s.debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", s.root)
	router.GET("/health", s.health)
	router.GET("/health/db", s.healthDB)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.POST("/refresh", s.refresh)

		authGroup.Use(s.authMiddleware())
		authGroup.GET("/me", s.getProfile)
		authGroup.PUT("/me", s.updateProfile)
		authGroup.DELETE("/me", s.deleteAccount)
	}

	projectGroup := router.Group("/projects")
	projectGroup.Use(s.authMiddleware())
	{
		projectGroup.POST("", s.createProject)
		projectGroup.GET("", s.listProjects)
		projectGroup.GET("/:id", s.getProject)
		projectGroup.PUT("/:id", s.updateProject)
		projectGroup.DELETE("/:id", s.deleteProject)
	}

	return router
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

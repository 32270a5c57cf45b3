// Package server initializes and runs the application: configuration,
// logging, database and migrations, the domain services, and the public
// HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"orbit/internal/logging"
	"orbit/internal/server/auth"
	"orbit/internal/server/config"
	"orbit/internal/server/httpapi"
	"orbit/internal/server/password"
	"orbit/internal/server/projects"
	"orbit/internal/server/shared/db"
	"orbit/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	projectService *projects.Service
	tokens         *auth.Manager
	repos          db.RepositoryManager
}

func NewApp(c *config.Config) (*App, error) {

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	sl := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	logger := logging.NewSlogLogger(sl)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens, err := auth.NewManager(c.SecretKey, c.JWTAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("token manager init error: %w", err)
	}

	us := users.NewService(rm.Users(), password.NewHasher(c.BcryptCost), tokens, c)
	ps := projects.NewService(rm.Projects())

	return &App{
		config:         c,
		logger:         logger,
		userService:    us,
		projectService: ps,
		tokens:         tokens,
		repos:          rm,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewServer(app.config.Address, app.logger, app.userService, app.projectService,
		app.tokens, app.repos.Conn(), app.config.Debug)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}

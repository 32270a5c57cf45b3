package db

import (
	"context"
	"database/sql"

	"orbit/internal/server/projects"
	"orbit/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Projects() projects.Repository
}

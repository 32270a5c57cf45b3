package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"orbit/internal/common"
	"orbit/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, project *Project) (*Project, error) {

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = StatusActive
	}

	query :=
		`INSERT INTO projects (id, user_id, name, description, status, color)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.UserID, project.Name, project.Description, project.Status, project.Color).
		Scan(&project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return project, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Project, error) {

	query :=
		`SELECT id, user_id, name, description, status, color, created_at, updated_at FROM projects
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []Project
	for rows.Next() {
		var p Project
		err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.Color, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error performing sql request: %v", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetForUser(ctx context.Context, id, userID uuid.UUID) (*Project, error) {

	query :=
		`SELECT id, user_id, name, description, status, color, created_at, updated_at FROM projects
		 WHERE id = $1 AND user_id = $2
		 `

	p := &Project{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.Color, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, userID uuid.UUID, upd UpdateInput) (*Project, error) {

	// COALESCE keeps stored values for fields the caller did not set;
	// updated_at refreshes on every mutation.
	query :=
		`UPDATE projects
		 SET name = COALESCE($3, name),
		     description = COALESCE($4, description),
		     status = COALESCE($5, status),
		     color = COALESCE($6, color),
		     updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, description, status, color, created_at, updated_at
		 `

	p := &Project{}
	err := r.db.QueryRowContext(ctx, query, id, userID, upd.Name, upd.Description, upd.Status, upd.Color).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.Color, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}

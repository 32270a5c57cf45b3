package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"orbit/internal/common"
	"orbit/internal/dbx"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations. The unique index on users.email turns a concurrent
// duplicate registration into this error, which we surface as
// common.ErrEmailTaken.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query :=
		`INSERT INTO users (id, email, password_hash, full_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, email, password_hash, full_name, created_at, updated_at FROM users
		 WHERE email = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query :=
		`SELECT id, email, password_hash, full_name, created_at, updated_at FROM users
		 WHERE id = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*User, error) {

	// COALESCE keeps the stored value for fields the caller did not set;
	// updated_at refreshes on every mutation.
	query :=
		`UPDATE users
		 SET full_name = COALESCE($2, full_name),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING id, email, password_hash, full_name, created_at, updated_at
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id, upd.FullName).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

// Delete removes the user's projects and then the user itself in one
// transaction. The ON DELETE CASCADE constraint on projects.user_id is a
// backstop; the explicit delete keeps the cascade visible and testable.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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
	})
}

package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexsk87/notehub/internal/common"
	"github.com/alexsk87/notehub/internal/dbx"
	"github.com/alexsk87/notehub/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (id, content, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, note.ID, note.Content, note.AuthorID).
		Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, content, author_id, created_at, updated_at FROM notes
		 WHERE id = $1
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&note.ID, &note.Content, &note.AuthorID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Note, error) {
	query :=
		`SELECT id, content, author_id, created_at, updated_at FROM notes
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.Content, &note.AuthorID, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update overwrites content and returns the post-write row. Last writer wins;
// concurrent updates are not serialized here.
func (r *PostgresRepository) Update(ctx context.Context, id string, content string) (*models.Note, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE notes SET content = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING id, content, author_id, created_at, updated_at
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id, content).
		Scan(&note.ID, &note.Content, &note.AuthorID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	query := `DELETE FROM notes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// validID reports whether id can exist in the uuid-typed id column. A
// syntactically invalid id names no resource; checking here keeps Postgres
// from rejecting it as a type error instead.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

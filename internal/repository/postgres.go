package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "promptlink/internal/errors"
	"promptlink/internal/model"
	"promptlink/internal/utils"
)

// PostgresLinkStore persists link records in the links table.
type PostgresLinkStore struct {
	db *sql.DB
}

func NewPostgresLinkStore(db *sql.DB) *PostgresLinkStore {
	return &PostgresLinkStore{
		db: db,
	}
}

// Create inserts a new record under a freshly generated id. The id is not
// checked against existing rows first; a collision surfaces as an insert
// error from the table's primary key.
func (s *PostgresLinkStore) Create(ctx context.Context, prompt string) (*model.Link, error) {
	id, err := utils.GenerateShortID()
	if err != nil {
		return nil, apperrors.NewStoreError("ID_GENERATION", "Failed to create link", err)
	}

	link := &model.Link{
		ID:        id,
		Prompt:    prompt,
		Clicks:    0,
		CreatedAt: time.Now().UTC(),
	}

	query := `
	INSERT INTO links (id, prompt, clicks, created_at)
	VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, link.ID, link.Prompt, link.Clicks, link.CreatedAt); err != nil {
		return nil, apperrors.NewStoreError("DATABASE_ERROR", "Failed to create link", err)
	}

	return link, nil
}

func (s *PostgresLinkStore) Get(ctx context.Context, id string) (*model.Link, error) {
	query := `
	SELECT id, prompt, clicks, created_at
	FROM links
	WHERE id = $1
	`

	link := &model.Link{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&link.ID,
		&link.Prompt,
		&link.Clicks,
		&link.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrLinkNotFound
	}

	if err != nil {
		return nil, apperrors.NewStoreError("DATABASE_ERROR", "Failed to load link", err)
	}

	return link, nil
}

// Increment bumps the click counter in the database itself, so concurrent
// visitors never lose an update. A missing id is not an error here, same as
// Delete.
func (s *PostgresLinkStore) Increment(ctx context.Context, id string) error {
	query := `UPDATE links SET clicks = clicks + 1 WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.NewStoreError("DATABASE_ERROR", "Failed to update click count", err)
	}

	return nil
}

func (s *PostgresLinkStore) List(ctx context.Context) ([]model.Link, error) {
	query := `
	SELECT id, prompt, clicks, created_at
	FROM links
	ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("DATABASE_ERROR", "Failed to load links", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		var link model.Link
		if err := rows.Scan(&link.ID, &link.Prompt, &link.Clicks, &link.CreatedAt); err != nil {
			return nil, apperrors.NewStoreError("DATABASE_ERROR", "Failed to load links", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("DATABASE_ERROR", "Failed to load links", err)
	}

	return links, nil
}

// Delete is idempotent: removing an absent id succeeds as long as the
// delete itself does not error.
func (s *PostgresLinkStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM links WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.NewStoreError("DATABASE_ERROR", "Failed to delete link", err)
	}

	return nil
}

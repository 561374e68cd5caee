package store

import (
	"context"
	"fmt"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UpdateStore struct {
	db *pgxpool.Pool
}

func NewUpdateStore(db *pgxpool.Pool) *UpdateStore {
	return &UpdateStore{db: db}
}

func (s *UpdateStore) Create(ctx context.Context, upd *models.Update) error {
	query := `
		INSERT INTO updates (title, description, link)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRow(ctx, query, upd.Title, upd.Description, upd.Link).
		Scan(&upd.ID, &upd.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create update: %w", err)
	}

	return nil
}

func (s *UpdateStore) List(ctx context.Context) ([]models.Update, error) {
	query := `
		SELECT id, title, description, link, created_at
		FROM updates
		ORDER BY id DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}
	defer rows.Close()

	updates := []models.Update{}
	for rows.Next() {
		var u models.Update
		if err := rows.Scan(&u.ID, &u.Title, &u.Description, &u.Link, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan update row: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("update rows: %w", err)
	}

	return updates, nil
}

func (s *UpdateStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM updates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete update: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

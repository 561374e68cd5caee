package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminStore struct {
	db *pgxpool.Pool
}

func NewAdminStore(db *pgxpool.Pool) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) Create(ctx context.Context, username, passwordHash, email string) (int64, error) {
	var adminId int64

	query := `
        INSERT INTO admins (username, password, email)
        VALUES ($1, $2, $3)
        RETURNING id;
    `

	err := s.db.QueryRow(ctx, query, username, passwordHash, email).Scan(&adminId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("could not create admin: %w", err)
	}

	return adminId, nil
}

func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, username, password, email, created_at
        FROM admins
        WHERE username = $1
    `, username)

	a := &models.Admin{}
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Password,
		&a.Email,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // admin not found
		}
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return a, nil
}

// Exists reports whether any admin already uses the given username or email.
func (s *AdminStore) Exists(ctx context.Context, username, email string) (bool, error) {
	var exists bool

	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1 OR email = $2)
    `, username, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}

	return exists, nil
}

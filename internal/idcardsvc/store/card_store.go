package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CardStore struct {
	db *pgxpool.Pool
}

func NewCardStore(db *pgxpool.Pool) *CardStore {
	return &CardStore{db: db}
}

const cardColumns = `id, name, emp_id, position, gender, phone, email, company, skills, photo, created_at`

// Create inserts the card and fills in its generated id and timestamp.
func (s *CardStore) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (name, emp_id, position, gender, phone, email, company, skills, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.db.QueryRow(ctx, query,
		card.Name,
		card.EmployeeID,
		card.Position,
		card.Gender,
		card.Phone,
		card.Email,
		card.Company,
		card.Skills,
		card.Photo,
	).Scan(&card.ID, &card.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create card: %w", err)
	}

	return nil
}

func (s *CardStore) List(ctx context.Context) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards ORDER BY id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// Search matches the term case-insensitively against name or employee id.
func (s *CardStore) Search(ctx context.Context, term string) ([]models.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE name ILIKE $1 OR emp_id ILIKE $1
		ORDER BY id DESC
	`

	rows, err := s.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

func (s *CardStore) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	row := s.db.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)

	card := &models.Card{}
	err := scanCard(row, card)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // card not found
		}
		return nil, fmt.Errorf("failed to get card by id: %w", err)
	}

	return card, nil
}

// Delete removes the row and reports whether anything was deleted.
func (s *CardStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete card: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *CardStore) Count(ctx context.Context) (int64, error) {
	var total int64

	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}

	return total, nil
}

func scanCard(row pgx.Row, card *models.Card) error {
	return row.Scan(
		&card.ID,
		&card.Name,
		&card.EmployeeID,
		&card.Position,
		&card.Gender,
		&card.Phone,
		&card.Email,
		&card.Company,
		&card.Skills,
		&card.Photo,
		&card.CreatedAt,
	)
}

func scanCards(rows pgx.Rows) ([]models.Card, error) {
	cards := []models.Card{}
	for rows.Next() {
		var card models.Card
		if err := scanCard(rows, &card); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("card rows: %w", err)
	}

	return cards, nil
}

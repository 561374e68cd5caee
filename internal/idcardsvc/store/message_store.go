package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageStore struct {
	db *pgxpool.Pool
}

func NewMessageStore(db *pgxpool.Pool) *MessageStore {
	return &MessageStore{db: db}
}

// Create inserts the message with a server-assigned timestamp.
func (s *MessageStore) Create(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (name, email, message, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRow(ctx, query, msg.Name, msg.Email, msg.Body, msg.Image).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create message: %w", err)
	}

	return nil
}

func (s *MessageStore) List(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, name, email, message, image, created_at
		FROM messages
		ORDER BY id DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Image, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("message rows: %w", err)
	}

	return messages, nil
}

func (s *MessageStore) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, message, image, created_at
		FROM messages
		WHERE id = $1
	`, id)

	m := &models.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Image, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // message not found
		}
		return nil, fmt.Errorf("failed to get message by id: %w", err)
	}

	return m, nil
}

func (s *MessageStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

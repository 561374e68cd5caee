package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"
)

// CardStore is the slice of the card store the service needs.
type CardStore interface {
	Create(ctx context.Context, card *models.Card) error
	List(ctx context.Context) ([]models.Card, error)
	Search(ctx context.Context, term string) ([]models.Card, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// BlobRemover deletes a stored blob by its URL, best-effort.
type BlobRemover interface {
	Remove(blobURL string)
}

type CardService struct {
	cards CardStore
	blobs BlobRemover
}

func NewCardService(cards CardStore, blobs BlobRemover) *CardService {
	return &CardService{cards: cards, blobs: blobs}
}

// CardInput carries the user-supplied card fields. Skills is the only
// optional one.
type CardInput struct {
	Name       string
	EmployeeID string
	Position   string
	Gender     string
	Phone      string
	Email      string
	Company    string
	Skills     string
}

func (in CardInput) Validate() error {
	required := []struct {
		label string
		value string
	}{
		{"name", in.Name},
		{"employeeId", in.EmployeeID},
		{"position", in.Position},
		{"gender", in.Gender},
		{"phone", in.Phone},
		{"email", in.Email},
		{"company", in.Company},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.label)
		}
	}

	return nil
}

// Add validates and persists a new card. photoURL is empty when no photo
// was uploaded; the blob is already written by the time the row goes in.
func (s *CardService) Add(ctx context.Context, in CardInput, photoURL string) (*models.Card, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	card := &models.Card{
		Name:       in.Name,
		EmployeeID: in.EmployeeID,
		Position:   in.Position,
		Gender:     in.Gender,
		Phone:      in.Phone,
		Email:      in.Email,
		Company:    in.Company,
		Skills:     in.Skills,
	}
	if photoURL != "" {
		card.Photo = &photoURL
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

func (s *CardService) List(ctx context.Context) ([]models.Card, error) {
	return s.cards.List(ctx)
}

// Search requires a non-blank term and treats an empty result set as not
// found.
func (s *CardService) Search(ctx context.Context, term string) ([]models.Card, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	cards, err := s.cards.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no records found", ErrNotFound)
	}

	return cards, nil
}

// Delete removes the row first, then cleans up the photo blob. The blob
// delete can never roll back or block the row delete.
func (s *CardService) Delete(ctx context.Context, id int64) error {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if card == nil {
		return fmt.Errorf("%w: card %d", ErrNotFound, id)
	}

	deleted, err := s.cards.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: card %d", ErrNotFound, id)
	}

	if card.Photo != nil {
		s.blobs.Remove(*card.Photo)
	}

	return nil
}

func (s *CardService) Count(ctx context.Context) (int64, error) {
	return s.cards.Count(ctx)
}

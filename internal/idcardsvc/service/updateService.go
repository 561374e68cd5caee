package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"
)

// UpdateStore is the slice of the update store the service needs.
type UpdateStore interface {
	Create(ctx context.Context, upd *models.Update) error
	List(ctx context.Context) ([]models.Update, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type UpdateService struct {
	updates UpdateStore
}

func NewUpdateService(updates UpdateStore) *UpdateService {
	return &UpdateService{updates: updates}
}

// Add trims and stores a new announcement. Title and description are
// required, the link is optional.
func (s *UpdateService) Add(ctx context.Context, title, description, link string) (*models.Update, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	link = strings.TrimSpace(link)

	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}

	upd := &models.Update{
		Title:       title,
		Description: description,
	}
	if link != "" {
		upd.Link = &link
	}

	if err := s.updates.Create(ctx, upd); err != nil {
		return nil, err
	}

	return upd, nil
}

func (s *UpdateService) List(ctx context.Context) ([]models.Update, error) {
	return s.updates.List(ctx)
}

func (s *UpdateService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.updates.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: update %d", ErrNotFound, id)
	}

	return nil
}

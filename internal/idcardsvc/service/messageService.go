package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"
)

// MessageStore is the slice of the message store the service needs.
type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MessageService struct {
	messages MessageStore
	blobs    BlobRemover
}

func NewMessageService(messages MessageStore, blobs BlobRemover) *MessageService {
	return &MessageService{messages: messages, blobs: blobs}
}

type MessageInput struct {
	Name  string
	Email string
	Body  string
}

func (in MessageInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrInvalidInput)
	}
	return nil
}

// Post stores a public contact-form submission. imageURL is empty when no
// image was attached.
func (s *MessageService) Post(ctx context.Context, in MessageInput, imageURL string) (*models.Message, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	msg := &models.Message{
		Name:  in.Name,
		Email: in.Email,
		Body:  in.Body,
	}
	if imageURL != "" {
		msg.Image = &imageURL
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// List returns messages newest-first. Image URLs are stored absolute, so
// no rewriting happens here.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messages.List(ctx)
}

func (s *MessageService) Delete(ctx context.Context, id int64) error {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return fmt.Errorf("%w: message %d", ErrNotFound, id)
	}

	deleted, err := s.messages.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: message %d", ErrNotFound, id)
	}

	if msg.Image != nil {
		s.blobs.Remove(*msg.Image)
	}

	return nil
}

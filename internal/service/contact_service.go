package service

import (
	"context"
	"fmt"

	"edutech/internal/model"
	"edutech/internal/repository"
)

// ContactService accepts contact form submissions. Submissions are write-only
// over HTTP; GetContact exists for operators and tests.
type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (*model.Contact, error)
	GetContact(ctx context.Context, id string) (*model.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a contact service. Contacts are never cached.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Submit stores a new contact message and returns it with its id and createdAt set.
func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

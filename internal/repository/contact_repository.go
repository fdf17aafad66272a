package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"edutech/internal/model"
)

// ContactRepository defines contact submission persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
}

type contactRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB, now func() time.Time) ContactRepository {
	return &contactRepository{db: db, now: now}
}

// Create assigns a fresh ID, stamps CreatedAt and inserts the submission.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	contact.Seq = 0
	contact.ID = model.NewID()
	stamp(&contact.CreatedAt, r.now)
	return translate(r.db.WithContext(ctx).Create(contact).Error)
}

// FindByID finds a contact submission by ID.
func (r *contactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, translate(err)
	}
	return &contact, nil
}

// List returns all submissions in insertion order.
func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	contacts := []model.Contact{}
	if err := r.db.WithContext(ctx).Order("seq").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/infrastructure/models"
	"dealhub.backend/pkg/utils"
)

// WaitlistRepository implements pre-registration list operations
type WaitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository creates a new waitlist repository
func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

// Create adds a pre-registration entry
func (r *WaitlistRepository) Create(ctx context.Context, entry *entities.WaitlistEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}

	m := &models.WaitlistEntry{
		ID:           entry.ID,
		Email:        entry.Email,
		EntryType:    string(entry.EntryType),
		Name:         entry.Name,
		BusinessName: entry.BusinessName.String,
		Phone:        entry.Phone.String,
		Category:     entry.Category.String,
		Address:      entry.Address.String,
		State:        entry.State.String,
		City:         entry.City.String,
		LGA:          entry.LGA.String,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateErr(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	entry.CreatedAt = m.CreatedAt
	return nil
}

// GetByEmail looks up a pre-registration entry by email and type
func (r *WaitlistRepository) GetByEmail(ctx context.Context, email string, entryType entities.WaitlistType) (*entities.WaitlistEntry, error) {
	var m models.WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("email = ? AND entry_type = ?", email, string(entryType)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	e := &entities.WaitlistEntry{
		ID:        m.ID,
		Email:     m.Email,
		EntryType: entities.WaitlistType(m.EntryType),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if m.BusinessName != "" {
		e.BusinessName = null.StringFrom(m.BusinessName)
	}
	if m.Phone != "" {
		e.Phone = null.StringFrom(m.Phone)
	}
	if m.Category != "" {
		e.Category = null.StringFrom(m.Category)
	}
	if m.Address != "" {
		e.Address = null.StringFrom(m.Address)
	}
	if m.State != "" {
		e.State = null.StringFrom(m.State)
	}
	if m.City != "" {
		e.City = null.StringFrom(m.City)
	}
	if m.LGA != "" {
		e.LGA = null.StringFrom(m.LGA)
	}
	return e, nil
}

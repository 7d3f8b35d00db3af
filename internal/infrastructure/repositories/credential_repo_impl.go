package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/infrastructure/models"
)

// CredentialRepository implements the temporary credential audit store
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Upsert stores the entry, overwriting any previous entry for the merchant.
// Only the latest issued temporary password is meaningful for support.
func (r *CredentialRepository) Upsert(ctx context.Context, entry *entities.MerchantCredential) error {
	m := &models.MerchantCredential{
		MerchantID:        entry.MerchantID,
		IssuedEmail:       entry.IssuedEmail,
		TemporaryPassword: entry.TemporaryPassword,
		CreatedByAdminID:  entry.CreatedByAdminID,
		PasswordChanged:   entry.PasswordChanged,
		Notes:             entry.Notes,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"issued_email", "temporary_password", "created_by_admin_id",
			"password_changed", "notes", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	entry.CreatedAt = m.CreatedAt
	entry.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByMerchantID gets the credential entry for a merchant
func (r *CredentialRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantCredential, error) {
	var m models.MerchantCredential
	if err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCredentialEntity(&m), nil
}

// MarkPasswordChanged records that the merchant replaced the temporary password
func (r *CredentialRepository) MarkPasswordChanged(ctx context.Context, merchantID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.MerchantCredential{}).
		Where("merchant_id = ?", merchantID).
		Updates(map[string]interface{}{
			"password_changed": true,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists credential entries, newest first
func (r *CredentialRepository) List(ctx context.Context, limit, offset int) ([]*entities.MerchantCredential, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MerchantCredential{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var credModels []models.MerchantCredential
	if err := query.Find(&credModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*entities.MerchantCredential, 0, len(credModels))
	for _, m := range credModels {
		model := m
		entries = append(entries, toCredentialEntity(&model))
	}
	return entries, total, nil
}

func toCredentialEntity(m *models.MerchantCredential) *entities.MerchantCredential {
	return &entities.MerchantCredential{
		MerchantID:        m.MerchantID,
		IssuedEmail:       m.IssuedEmail,
		TemporaryPassword: m.TemporaryPassword,
		CreatedByAdminID:  m.CreatedByAdminID,
		PasswordChanged:   m.PasswordChanged,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/infrastructure/models"
	"dealhub.backend/pkg/utils"
)

// MerchantRepository implements merchant record data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant record
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = utils.GenerateUUIDv7()
	}
	if merchant.Status == "" {
		merchant.Status = entities.MerchantStatusPending
	}

	m := toMerchantModel(merchant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateErr(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	merchant.CreatedAt = m.CreatedAt
	merchant.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByEmail gets a merchant by profile email
func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByUserID gets a merchant by its linked identity
func (r *MerchantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

func (r *MerchantRepository) getOne(ctx context.Context, cond string, arg interface{}) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMerchantEntity(&m), nil
}

// Update updates merchant profile fields
func (r *MerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	updates := map[string]interface{}{
		"name":          merchant.Name,
		"business_name": merchant.BusinessName,
		"phone":         merchant.Phone.String,
		"category":      merchant.Category.String,
		"address":       merchant.Address.String,
		"state":         merchant.State.String,
		"city":          merchant.City.String,
		"lga":           merchant.LGA.String,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", merchant.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetUserID links a provisioned identity to the merchant record
func (r *MerchantRepository) SetUserID(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", id).Updates(map[string]interface{}{
		"user_id":    userID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Approve transitions pending -> approved as a guarded compare-and-set.
// A racing second approver sees zero rows updated and gets ErrAlreadyExists
// so approval side effects fire exactly once.
func (r *MerchantRepository) Approve(ctx context.Context, id, adminID uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ? AND status = ?", id, string(entities.MerchantStatusPending)).
		Updates(map[string]interface{}{
			"status":               string(entities.MerchantStatusApproved),
			"approved_at":          now,
			"approved_by_admin_id": adminID,
			"rejection_reason":     nil,
			"updated_at":           now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, id)
	}
	return nil
}

// Reject transitions pending -> rejected, recording the reason
func (r *MerchantRepository) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	result := r.db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ? AND status = ?", id, string(entities.MerchantStatusPending)).
		Updates(map[string]interface{}{
			"status":           string(entities.MerchantStatusRejected),
			"rejection_reason": reason,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, id)
	}
	return nil
}

// Resubmit transitions rejected -> pending and clears the rejection reason
func (r *MerchantRepository) Resubmit(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ? AND status = ?", id, string(entities.MerchantStatusRejected)).
		Updates(map[string]interface{}{
			"status":           string(entities.MerchantStatusPending),
			"rejection_reason": nil,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, id)
	}
	return nil
}

func (r *MerchantRepository) conflictOrNotFound(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrNotFound
	}
	return domainerrors.ErrAlreadyExists
}

// SoftDelete soft deletes a merchant record
func (r *MerchantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Merchant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists merchant records, optionally filtered by status, newest first
func (r *MerchantRepository) List(ctx context.Context, status entities.MerchantStatus, limit, offset int) ([]*entities.Merchant, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Merchant{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var merchantModels []models.Merchant
	if err := query.Find(&merchantModels).Error; err != nil {
		return nil, 0, err
	}

	merchants := make([]*entities.Merchant, 0, len(merchantModels))
	for _, m := range merchantModels {
		model := m
		merchants = append(merchants, toMerchantEntity(&model))
	}
	return merchants, total, nil
}

// CountPendingOlderThan counts pending applications older than the given age
func (r *MerchantRepository) CountPendingOlderThan(ctx context.Context, ageHours int) (int64, error) {
	cutoff := time.Now().Add(-time.Duration(ageHours) * time.Hour)
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Merchant{}).
		Where("status = ? AND created_at < ?", string(entities.MerchantStatusPending), cutoff).
		Count(&count).Error
	return count, err
}

func toMerchantModel(e *entities.Merchant) *models.Merchant {
	m := &models.Merchant{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		BusinessName: e.BusinessName,
		Phone:        e.Phone.String,
		Category:     e.Category.String,
		Address:      e.Address.String,
		State:        e.State.String,
		City:         e.City.String,
		LGA:          e.LGA.String,
		Status:       string(e.Status),
	}
	if e.UserID.Valid {
		if uid, err := uuid.Parse(e.UserID.String); err == nil {
			m.UserID = &uid
		}
	}
	if e.RejectionReason.Valid {
		reason := e.RejectionReason.String
		m.RejectionReason = &reason
	}
	if e.ApprovedAt.Valid {
		at := e.ApprovedAt.Time
		m.ApprovedAt = &at
	}
	if e.ApprovedByAdminID.Valid {
		if aid, err := uuid.Parse(e.ApprovedByAdminID.String); err == nil {
			m.ApprovedByAdminID = &aid
		}
	}
	return m
}

func toMerchantEntity(m *models.Merchant) *entities.Merchant {
	e := &entities.Merchant{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		BusinessName: m.BusinessName,
		Status:       entities.MerchantStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.UserID != nil {
		e.UserID = null.StringFrom(m.UserID.String())
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
	if m.RejectionReason != nil {
		e.RejectionReason = null.StringFrom(*m.RejectionReason)
	}
	if m.ApprovedAt != nil {
		e.ApprovedAt = null.TimeFrom(*m.ApprovedAt)
	}
	if m.ApprovedByAdminID != nil {
		e.ApprovedByAdminID = null.StringFrom(m.ApprovedByAdminID.String())
	}
	return e
}

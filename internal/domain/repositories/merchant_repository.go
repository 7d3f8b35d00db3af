package repositories

import (
	"context"

	"github.com/google/uuid"
	"dealhub.backend/internal/domain/entities"
)

// MerchantRepository defines merchant record data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByEmail(ctx context.Context, email string) (*entities.Merchant, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error)
	Update(ctx context.Context, merchant *entities.Merchant) error
	// SetUserID links a provisioned identity to the merchant record.
	SetUserID(ctx context.Context, id, userID uuid.UUID) error

	// Approve is a guarded compare-and-set from pending to approved. When
	// two admins race, the loser gets ErrAlreadyExists and no side effects.
	Approve(ctx context.Context, id, adminID uuid.UUID) error
	// Reject is a guarded compare-and-set from pending to rejected.
	Reject(ctx context.Context, id uuid.UUID, reason string) error
	// Resubmit moves a rejected record back to pending and clears the
	// rejection reason.
	Resubmit(ctx context.Context, id uuid.UUID) error

	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status entities.MerchantStatus, limit, offset int) ([]*entities.Merchant, int64, error)
	CountPendingOlderThan(ctx context.Context, ageHours int) (int64, error)
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"dealhub.backend/internal/domain/entities"
)

// CredentialRepository defines the admin-issued temporary credential store.
// Entries are keyed one-to-one by merchant: reissuing overwrites.
type CredentialRepository interface {
	Upsert(ctx context.Context, entry *entities.MerchantCredential) error
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantCredential, error)
	// MarkPasswordChanged flips the flag once the merchant replaces the
	// temporary password with one of their own.
	MarkPasswordChanged(ctx context.Context, merchantID uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entities.MerchantCredential, int64, error)
}

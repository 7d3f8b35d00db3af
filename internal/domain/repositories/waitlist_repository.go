package repositories

import (
	"context"

	"dealhub.backend/internal/domain/entities"
)

// WaitlistRepository defines pre-registration list operations
type WaitlistRepository interface {
	Create(ctx context.Context, entry *entities.WaitlistEntry) error
	GetByEmail(ctx context.Context, email string, entryType entities.WaitlistType) (*entities.WaitlistEntry, error)
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"dealhub.backend/internal/domain/entities"
)

// UserRepository defines identity data operations
type UserRepository interface {
	// Create provisions a new identity. Returns ErrAlreadyExists if an
	// identity for the email is already registered.
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// UpdatePassword replaces the stored password hash. Returns ErrNotFound
	// if the identity does not exist.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, mustChange bool) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]*entities.User, error)

	// AssignRole creates the identity-to-role mapping. A duplicate
	// assignment returns ErrAlreadyExists rather than being ignored, so
	// double-provisioning attempts surface instead of passing silently.
	AssignRole(ctx context.Context, userID uuid.UUID, role entities.Role) error
	HasRole(ctx context.Context, userID uuid.UUID, role entities.Role) (bool, error)
	GetRoles(ctx context.Context, userID uuid.UUID) ([]entities.Role, error)
}

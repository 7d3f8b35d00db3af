package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"dealhub.backend/internal/domain/entities"
	"dealhub.backend/internal/domain/repositories"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, mustChange bool) error {
	return m.Called(ctx, id, passwordHash, mustChange).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) AssignRole(ctx context.Context, userID uuid.UUID, role entities.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

func (m *MockUserRepository) HasRole(ctx context.Context, userID uuid.UUID, role entities.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetRoles(ctx context.Context, userID uuid.UUID) ([]entities.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Role), args.Error(1)
}

// Mock MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	args := m.Called(ctx, merchant)
	if args.Error(0) == nil && merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	return m.Called(ctx, merchant).Error(0)
}

func (m *MockMerchantRepository) SetUserID(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockMerchantRepository) Approve(ctx context.Context, id, adminID uuid.UUID) error {
	return m.Called(ctx, id, adminID).Error(0)
}

func (m *MockMerchantRepository) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *MockMerchantRepository) Resubmit(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMerchantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMerchantRepository) List(ctx context.Context, status entities.MerchantStatus, limit, offset int) ([]*entities.Merchant, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Merchant), args.Get(1).(int64), args.Error(2)
}

func (m *MockMerchantRepository) CountPendingOlderThan(ctx context.Context, ageHours int) (int64, error) {
	args := m.Called(ctx, ageHours)
	return args.Get(0).(int64), args.Error(1)
}

// Mock CredentialRepository
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Upsert(ctx context.Context, entry *entities.MerchantCredential) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockCredentialRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantCredential, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MerchantCredential), args.Error(1)
}

func (m *MockCredentialRepository) MarkPasswordChanged(ctx context.Context, merchantID uuid.UUID) error {
	return m.Called(ctx, merchantID).Error(0)
}

func (m *MockCredentialRepository) List(ctx context.Context, limit, offset int) ([]*entities.MerchantCredential, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MerchantCredential), args.Get(1).(int64), args.Error(2)
}

// Mock WaitlistRepository
type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) Create(ctx context.Context, entry *entities.WaitlistEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWaitlistRepository) GetByEmail(ctx context.Context, email string, entryType entities.WaitlistType) (*entities.WaitlistEntry, error) {
	args := m.Called(ctx, email, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WaitlistEntry), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, kind repositories.NotificationKind, recipient string, payload repositories.NotificationPayload) error {
	return m.Called(ctx, kind, recipient, payload).Error(0)
}

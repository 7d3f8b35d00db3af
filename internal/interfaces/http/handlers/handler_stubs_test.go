package handlers

import (
	"context"

	"github.com/google/uuid"

	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
)

type userRepoStub struct {
	getByID        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmail     func(ctx context.Context, email string) (*entities.User, error)
	createFn       func(ctx context.Context, user *entities.User) error
	updatePassword func(ctx context.Context, id uuid.UUID, hash string, mustChange bool) error
	hasRole        func(ctx context.Context, userID uuid.UUID, role entities.Role) (bool, error)
	assignRole     func(ctx context.Context, userID uuid.UUID, role entities.Role) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(context.Context, *entities.User) error { return nil }

func (s *userRepoStub) UpdatePassword(ctx context.Context, id uuid.UUID, hash string, mustChange bool) error {
	if s.updatePassword != nil {
		return s.updatePassword(ctx, id, hash, mustChange)
	}
	return nil
}

func (s *userRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *userRepoStub) List(context.Context, string) ([]*entities.User, error) { return nil, nil }

func (s *userRepoStub) AssignRole(ctx context.Context, userID uuid.UUID, role entities.Role) error {
	if s.assignRole != nil {
		return s.assignRole(ctx, userID, role)
	}
	return nil
}

func (s *userRepoStub) HasRole(ctx context.Context, userID uuid.UUID, role entities.Role) (bool, error) {
	if s.hasRole != nil {
		return s.hasRole(ctx, userID, role)
	}
	return true, nil
}

func (s *userRepoStub) GetRoles(context.Context, uuid.UUID) ([]entities.Role, error) {
	return nil, nil
}

type merchantRepoStub struct {
	createFn    func(ctx context.Context, merchant *entities.Merchant) error
	getByID     func(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	getByEmail  func(ctx context.Context, email string) (*entities.Merchant, error)
	getByUserID func(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error)
	approveFn   func(ctx context.Context, id, adminID uuid.UUID) error
	rejectFn    func(ctx context.Context, id uuid.UUID, reason string) error
	resubmitFn  func(ctx context.Context, id uuid.UUID) error
	listFn      func(ctx context.Context, status entities.MerchantStatus, limit, offset int) ([]*entities.Merchant, int64, error)
}

func (s *merchantRepoStub) Create(ctx context.Context, merchant *entities.Merchant) error {
	if s.createFn != nil {
		return s.createFn(ctx, merchant)
	}
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	return nil
}

func (s *merchantRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *merchantRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *merchantRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	if s.getByUserID != nil {
		return s.getByUserID(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *merchantRepoStub) Update(context.Context, *entities.Merchant) error { return nil }

func (s *merchantRepoStub) SetUserID(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (s *merchantRepoStub) Approve(ctx context.Context, id, adminID uuid.UUID) error {
	if s.approveFn != nil {
		return s.approveFn(ctx, id, adminID)
	}
	return nil
}

func (s *merchantRepoStub) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, id, reason)
	}
	return nil
}

func (s *merchantRepoStub) Resubmit(ctx context.Context, id uuid.UUID) error {
	if s.resubmitFn != nil {
		return s.resubmitFn(ctx, id)
	}
	return nil
}

func (s *merchantRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *merchantRepoStub) List(ctx context.Context, status entities.MerchantStatus, limit, offset int) ([]*entities.Merchant, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, status, limit, offset)
	}
	return nil, 0, nil
}

func (s *merchantRepoStub) CountPendingOlderThan(context.Context, int) (int64, error) {
	return 0, nil
}

type credentialRepoStub struct {
	upsertFn        func(ctx context.Context, entry *entities.MerchantCredential) error
	getByMerchantID func(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantCredential, error)
	listFn          func(ctx context.Context, limit, offset int) ([]*entities.MerchantCredential, int64, error)
}

func (s *credentialRepoStub) Upsert(ctx context.Context, entry *entities.MerchantCredential) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, entry)
	}
	return nil
}

func (s *credentialRepoStub) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantCredential, error) {
	if s.getByMerchantID != nil {
		return s.getByMerchantID(ctx, merchantID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *credentialRepoStub) MarkPasswordChanged(context.Context, uuid.UUID) error { return nil }

func (s *credentialRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.MerchantCredential, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

type waitlistRepoStub struct {
	createFn   func(ctx context.Context, entry *entities.WaitlistEntry) error
	getByEmail func(ctx context.Context, email string, entryType entities.WaitlistType) (*entities.WaitlistEntry, error)
}

func (s *waitlistRepoStub) Create(ctx context.Context, entry *entities.WaitlistEntry) error {
	if s.createFn != nil {
		return s.createFn(ctx, entry)
	}
	return nil
}

func (s *waitlistRepoStub) GetByEmail(ctx context.Context, email string, entryType entities.WaitlistType) (*entities.WaitlistEntry, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email, entryType)
	}
	return nil, domainerrors.ErrNotFound
}

type notifierStub struct {
	sendFn func(ctx context.Context, kind repositories.NotificationKind, recipient string, payload repositories.NotificationPayload) error
	sent   []repositories.NotificationKind
}

func (s *notifierStub) Send(ctx context.Context, kind repositories.NotificationKind, recipient string, payload repositories.NotificationPayload) error {
	s.sent = append(s.sent, kind)
	if s.sendFn != nil {
		return s.sendFn(ctx, kind, recipient, payload)
	}
	return nil
}

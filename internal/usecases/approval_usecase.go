package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
	"dealhub.backend/pkg/crypto"
	"dealhub.backend/pkg/logger"
)

// ApprovalUsecase drives the merchant approval state machine for admin
// operations: approve, reject, account provisioning and password resets.
//
// Every operation validates admin authority before touching any store.
// Once the merchant record transition commits, later steps (credential
// audit, email) are best-effort annotations and never roll it back.
type ApprovalUsecase struct {
	merchantRepo   repositories.MerchantRepository
	userRepo       repositories.UserRepository
	waitlistRepo   repositories.WaitlistRepository
	credentialRepo repositories.CredentialRepository
	notifier       repositories.Notifier
}

// NewApprovalUsecase creates a new approval usecase
func NewApprovalUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
	waitlistRepo repositories.WaitlistRepository,
	credentialRepo repositories.CredentialRepository,
	notifier repositories.Notifier,
) *ApprovalUsecase {
	return &ApprovalUsecase{
		merchantRepo:   merchantRepo,
		userRepo:       userRepo,
		waitlistRepo:   waitlistRepo,
		credentialRepo: credentialRepo,
		notifier:       notifier,
	}
}

// Approve transitions a pending merchant to approved. The underlying update
// is a compare-and-set on status=pending: when two admins race, exactly one
// wins and exactly one approval email goes out.
func (u *ApprovalUsecase) Approve(ctx context.Context, adminID, merchantID uuid.UUID) (*entities.Merchant, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if err := u.merchantRepo.Approve(ctx, merchantID, adminID); err != nil {
		return nil, err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if err := u.notifier.Send(ctx, repositories.NotificationApproved, merchant.Email, repositories.NotificationPayload{
		Name:         merchant.Name,
		BusinessName: merchant.BusinessName,
	}); err != nil {
		logger.Warn(ctx, "Approval email failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	return merchant, nil
}

// Reject transitions a pending merchant to rejected. A non-empty reason is
// required and validated before any store call.
func (u *ApprovalUsecase) Reject(ctx context.Context, adminID, merchantID uuid.UUID, reason string) (*entities.Merchant, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if err := u.merchantRepo.Reject(ctx, merchantID, reason); err != nil {
		return nil, err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if err := u.notifier.Send(ctx, repositories.NotificationRejected, merchant.Email, repositories.NotificationPayload{
		Name:            merchant.Name,
		BusinessName:    merchant.BusinessName,
		RejectionReason: reason,
	}); err != nil {
		logger.Warn(ctx, "Rejection email failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	return merchant, nil
}

// CreateAccount provisions a merchant account from a pre-registration entry:
// generated password, pre-confirmed identity, merchant role, approved record,
// and a credential audit entry. The plaintext password is returned exactly
// once so the admin can hand it over even if the email fails.
//
// Retry safety: a prior attempt that created the identity but died before
// finishing is detected ("identity exists, record unlinked") and completed
// with a fresh password instead of failing as a duplicate.
func (u *ApprovalUsecase) CreateAccount(ctx context.Context, adminID uuid.UUID, email string) (*entities.ProvisionedAccount, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	entry, err := u.waitlistRepo.GetByEmail(ctx, email, entities.WaitlistTypeMerchant)
	if err != nil {
		return nil, err
	}

	// A record already linked to an identity means the merchant is fully
	// provisioned; reissuing here would disclose a credential.
	existing, err := u.merchantRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.UserID.Valid {
		return nil, domainerrors.ErrAlreadyExists
	}

	password, err := crypto.GenerateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// Partial earlier attempt: identity exists but the merchant record
		// never got linked. Issue a fresh password and continue.
		if err := u.userRepo.UpdatePassword(ctx, user.ID, passwordHash, false); err != nil {
			return nil, err
		}
	case errors.Is(err, domainerrors.ErrNotFound):
		user = &entities.User{
			Email:        email,
			Name:         entry.Name,
			PasswordHash: passwordHash,
			PreConfirmed: true,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// Role assignment must complete before the record is usable.
	hasRole, err := u.userRepo.HasRole(ctx, user.ID, entities.RoleMerchant)
	if err != nil {
		return nil, err
	}
	if !hasRole {
		if err := u.userRepo.AssignRole(ctx, user.ID, entities.RoleMerchant); err != nil {
			return nil, err
		}
	}

	merchant, err := u.ensureApprovedRecord(ctx, existing, entry, user.ID, adminID)
	if err != nil {
		return nil, err
	}

	credential := &entities.MerchantCredential{
		MerchantID:        merchant.ID,
		IssuedEmail:       email,
		TemporaryPassword: password,
		CreatedByAdminID:  adminID,
		PasswordChanged:   false,
		Notes:             fmt.Sprintf("provisioned by admin on %s", time.Now().Format(time.RFC3339)),
	}
	if err := u.credentialRepo.Upsert(ctx, credential); err != nil {
		// The account exists and works; losing the audit entry is logged,
		// not surfaced as a failure of provisioning.
		logger.Error(ctx, "Credential audit upsert failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	emailSent := true
	if err := u.notifier.Send(ctx, repositories.NotificationCredentials, email, repositories.NotificationPayload{
		Name:              entry.Name,
		BusinessName:      merchant.BusinessName,
		TemporaryPassword: password,
	}); err != nil {
		emailSent = false
		logger.Warn(ctx, "Credentials email failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	return &entities.ProvisionedAccount{
		Merchant:          merchant,
		Email:             email,
		TemporaryPassword: password,
		EmailSent:         emailSent,
	}, nil
}

// ResetPassword issues a fresh temporary password for an already-provisioned
// merchant. Status is unchanged; the credential audit entry is overwritten.
func (u *ApprovalUsecase) ResetPassword(ctx context.Context, adminID, merchantID uuid.UUID) (*entities.ProvisionedAccount, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if !merchant.UserID.Valid {
		return nil, domainerrors.NewError("merchant has no provisioned account", domainerrors.ErrInvalidInput)
	}
	userID, err := uuid.Parse(merchant.UserID.String)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	password, err := crypto.GenerateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdatePassword(ctx, userID, passwordHash, false); err != nil {
		return nil, err
	}

	credential := &entities.MerchantCredential{
		MerchantID:        merchant.ID,
		IssuedEmail:       merchant.Email,
		TemporaryPassword: password,
		CreatedByAdminID:  adminID,
		PasswordChanged:   false,
		Notes:             fmt.Sprintf("reset by admin on %s", time.Now().Format(time.RFC3339)),
	}
	if err := u.credentialRepo.Upsert(ctx, credential); err != nil {
		logger.Error(ctx, "Credential audit upsert failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	emailSent := true
	if err := u.notifier.Send(ctx, repositories.NotificationCredentials, merchant.Email, repositories.NotificationPayload{
		Name:              merchant.Name,
		BusinessName:      merchant.BusinessName,
		TemporaryPassword: password,
	}); err != nil {
		emailSent = false
		logger.Warn(ctx, "Credentials email failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	return &entities.ProvisionedAccount{
		Merchant:          merchant,
		Email:             merchant.Email,
		TemporaryPassword: password,
		EmailSent:         emailSent,
	}, nil
}

func (u *ApprovalUsecase) ensureApprovedRecord(
	ctx context.Context,
	existing *entities.Merchant,
	entry *entities.WaitlistEntry,
	userID, adminID uuid.UUID,
) (*entities.Merchant, error) {
	if existing != nil {
		// Unlinked leftover from a partial attempt: link and finish.
		if err := u.merchantRepo.SetUserID(ctx, existing.ID, userID); err != nil {
			return nil, err
		}
		if existing.Status == entities.MerchantStatusPending {
			if err := u.merchantRepo.Approve(ctx, existing.ID, adminID); err != nil && !errors.Is(err, domainerrors.ErrAlreadyExists) {
				return nil, err
			}
		}
		return u.merchantRepo.GetByID(ctx, existing.ID)
	}

	now := time.Now()
	merchant := &entities.Merchant{
		UserID:            null.StringFrom(userID.String()),
		Email:             entry.Email,
		Name:              entry.Name,
		BusinessName:      entry.BusinessName.String,
		Phone:             entry.Phone,
		Category:          entry.Category,
		Address:           entry.Address,
		State:             entry.State,
		City:              entry.City,
		LGA:               entry.LGA,
		Status:            entities.MerchantStatusApproved,
		ApprovedAt:        null.TimeFrom(now),
		ApprovedByAdminID: null.StringFrom(adminID.String()),
	}
	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// requireAdmin aborts the operation before any mutation when the caller
// does not hold the admin role.
func (u *ApprovalUsecase) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	hasRole, err := u.userRepo.HasRole(ctx, adminID, entities.RoleAdmin)
	if err != nil {
		return err
	}
	if !hasRole {
		return domainerrors.ErrForbidden
	}
	return nil
}

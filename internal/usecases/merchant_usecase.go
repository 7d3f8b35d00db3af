package usecases

import (
	"context"

	"github.com/google/uuid"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant self-service operations
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
	userRepo     repositories.UserRepository
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
	}
}

// GetStatus gets the approval status for the caller's merchant record
func (u *MerchantUsecase) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.MerchantStatusResponse, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entities.MerchantStatusResponse{
		MerchantID:      merchant.ID,
		Status:          merchant.Status,
		BusinessName:    merchant.BusinessName,
		RejectionReason: merchant.RejectionReason,
		Message:         getStatusMessage(merchant.Status),
		SubmittedAt:     merchant.CreatedAt,
		ReviewedAt:      merchant.ApprovedAt,
	}, nil
}

// Resubmit moves the caller's rejected application back to pending and
// clears the rejection reason. Resubmitting an already-pending application
// is a no-op success, so repeated calls always land on pending.
func (u *MerchantUsecase) Resubmit(ctx context.Context, userID uuid.UUID) (*entities.MerchantStatusResponse, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch merchant.Status {
	case entities.MerchantStatusPending:
		// Already under review.
	case entities.MerchantStatusApproved:
		return nil, domainerrors.ErrAlreadyExists
	case entities.MerchantStatusRejected:
		if err := u.merchantRepo.Resubmit(ctx, merchant.ID); err != nil {
			return nil, err
		}
		merchant, err = u.merchantRepo.GetByID(ctx, merchant.ID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, domainerrors.ErrBadRequest
	}

	return &entities.MerchantStatusResponse{
		MerchantID:      merchant.ID,
		Status:          merchant.Status,
		BusinessName:    merchant.BusinessName,
		RejectionReason: merchant.RejectionReason,
		Message:         getStatusMessage(merchant.Status),
		SubmittedAt:     merchant.CreatedAt,
	}, nil
}

// UpdateProfile updates the caller's merchant profile fields
func (u *MerchantUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		merchant.Name = input.Name
	}
	if input.BusinessName != "" {
		merchant.BusinessName = input.BusinessName
	}
	setOptionalProfileFields(merchant, input.Phone, input.Category, input.Address, input.State, input.City, input.LGA)

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return u.merchantRepo.GetByID(ctx, merchant.ID)
}

func getStatusMessage(status entities.MerchantStatus) string {
	switch status {
	case entities.MerchantStatusPending:
		return "Your merchant application is under review"
	case entities.MerchantStatusApproved:
		return "Your merchant account is active"
	case entities.MerchantStatusRejected:
		return "Your merchant application was rejected"
	default:
		return ""
	}
}

package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
	"dealhub.backend/pkg/crypto"
	"dealhub.backend/pkg/jwt"
	"dealhub.backend/pkg/logger"
)

// AuthUsecase handles authentication and merchant self sign-up
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	merchantRepo   repositories.MerchantRepository
	credentialRepo repositories.CredentialRepository
	notifier       repositories.Notifier
	jwtService     *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	merchantRepo repositories.MerchantRepository,
	credentialRepo repositories.CredentialRepository,
	notifier repositories.Notifier,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		merchantRepo:   merchantRepo,
		credentialRepo: credentialRepo,
		notifier:       notifier,
		jwtService:     jwtService,
	}
}

// Register handles merchant self sign-up: identity with a merchant-chosen
// password, merchant role, and a pending merchant record. The welcome email
// is best-effort and never fails the registration.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.Merchant, error) {
	// Check if email already registered
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	existing, err := u.merchantRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrAlreadyExists
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:              input.Email,
		Name:               input.Name,
		PasswordHash:       passwordHash,
		MustChangePassword: true,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Role must be in place before the record becomes usable. A duplicate
	// here means a double-provisioning attempt and fails closed.
	if err := u.userRepo.AssignRole(ctx, user.ID, entities.RoleMerchant); err != nil {
		return nil, err
	}

	merchant := &entities.Merchant{
		UserID:       null.StringFrom(user.ID.String()),
		Email:        input.Email,
		Name:         input.Name,
		BusinessName: input.BusinessName,
		Status:       entities.MerchantStatusPending,
	}
	setOptionalProfileFields(merchant, input.Phone, input.Category, input.Address, input.State, input.City, input.LGA)

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	if err := u.notifier.Send(ctx, repositories.NotificationWelcome, merchant.Email, repositories.NotificationPayload{
		Name:         merchant.Name,
		BusinessName: merchant.BusinessName,
	}); err != nil {
		logger.Warn(ctx, "Welcome email failed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	return merchant, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, primaryRole(user.Roles))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// ChangePassword replaces the caller's password. For admin-provisioned
// merchants this flips the credential audit entry's passwordChanged flag so
// support can see the temporary password is no longer live.
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	newHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdatePassword(ctx, userID, newHash, false); err != nil {
		return err
	}

	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		logger.Warn(ctx, "Merchant lookup after password change failed", zap.Error(err))
		return nil
	}

	if err := u.credentialRepo.MarkPasswordChanged(ctx, merchant.ID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		// Audit annotation only; the password change itself is committed.
		logger.Warn(ctx, "Failed to mark credential as changed",
			zap.String("merchantId", merchant.ID.String()),
			zap.Error(err),
		)
	}

	return nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, primaryRole(user.Roles))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func primaryRole(roles []entities.Role) string {
	if len(roles) == 0 {
		return string(entities.RoleCustomer)
	}
	for _, r := range roles {
		if r == entities.RoleAdmin {
			return string(entities.RoleAdmin)
		}
	}
	return string(roles[0])
}

func setOptionalProfileFields(m *entities.Merchant, phone, category, address, state, city, lga string) {
	if phone != "" {
		m.Phone.SetValid(phone)
	}
	if category != "" {
		m.Category.SetValid(category)
	}
	if address != "" {
		m.Address.SetValid(address)
	}
	if state != "" {
		m.State.SetValid(state)
	}
	if city != "" {
		m.City.SetValid(city)
	}
	if lga != "" {
		m.LGA.SetValid(lga)
	}
}

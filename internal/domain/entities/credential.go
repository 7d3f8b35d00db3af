package entities

import (
	"time"

	"github.com/google/uuid"
)

// MerchantCredential is the audit record of an admin-issued temporary password.
// One row per merchant: reissuing a password overwrites the previous entry.
// Self-service sign-ups never create one.
type MerchantCredential struct {
	MerchantID        uuid.UUID `json:"merchantId"`
	IssuedEmail       string    `json:"issuedEmail"`
	TemporaryPassword string    `json:"temporaryPassword"`
	CreatedByAdminID  uuid.UUID `json:"createdByAdminId"`
	PasswordChanged   bool      `json:"passwordChanged"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ProvisionedAccount is returned once from admin-initiated provisioning.
// The plaintext password is surfaced only in this response so the admin can
// hand it to the merchant even when the credentials email fails.
type ProvisionedAccount struct {
	Merchant          *Merchant `json:"merchant"`
	Email             string    `json:"email"`
	TemporaryPassword string    `json:"temporaryPassword"`
	EmailSent         bool      `json:"emailSent"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// MerchantCredential holds the latest admin-issued temporary password per
// merchant. The password stays readable so support can hand it to the
// merchant; list views mask it.
type MerchantCredential struct {
	MerchantID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IssuedEmail       string    `gorm:"type:varchar(255);not null"`
	TemporaryPassword string    `gorm:"type:varchar(255);not null"`
	CreatedByAdminID  uuid.UUID `gorm:"type:uuid;not null"`
	PasswordChanged   bool      `gorm:"not null;default:false"`
	Notes             string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (MerchantCredential) TableName() string {
	return "merchant_credentials"
}

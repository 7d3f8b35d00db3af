package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            *uuid.UUID `gorm:"type:uuid;index"`
	Email             string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name              string     `gorm:"type:varchar(100);not null"`
	BusinessName      string     `gorm:"type:varchar(255);not null"`
	Phone             string     `gorm:"type:varchar(50)"`
	Category          string     `gorm:"type:varchar(100)"`
	Address           string     `gorm:"type:text"`
	State             string     `gorm:"type:varchar(100)"`
	City              string     `gorm:"type:varchar(100)"`
	LGA               string     `gorm:"type:varchar(100);column:lga"`
	Status            string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	RejectionReason   *string    `gorm:"type:text"`
	ApprovedAt        *time.Time
	ApprovedByAdminID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

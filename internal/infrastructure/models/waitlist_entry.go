package models

import (
	"time"

	"github.com/google/uuid"
)

type WaitlistEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_waitlist_email_type"`
	EntryType    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_waitlist_email_type"`
	Name         string    `gorm:"type:varchar(100);not null"`
	BusinessName string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Category     string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:text"`
	State        string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100)"`
	LGA          string    `gorm:"type:varchar(100);column:lga"`
	CreatedAt    time.Time
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// WaitlistType distinguishes pre-registration entry kinds
type WaitlistType string

const (
	WaitlistTypeMerchant WaitlistType = "merchant"
	WaitlistTypeCustomer WaitlistType = "customer"
)

// WaitlistEntry represents a pre-registration entry used to seed
// admin-provisioned merchant accounts.
type WaitlistEntry struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	EntryType    WaitlistType `json:"entryType"`
	Name         string       `json:"name"`
	BusinessName null.String  `json:"businessName,omitempty"`
	Phone        null.String  `json:"phone,omitempty"`
	Category     null.String  `json:"category,omitempty"`
	Address      null.String  `json:"address,omitempty"`
	State        null.String  `json:"state,omitempty"`
	City         null.String  `json:"city,omitempty"`
	LGA          null.String  `json:"lga,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// JoinWaitlistInput represents input for joining the pre-registration list
type JoinWaitlistInput struct {
	Email        string       `json:"email" binding:"required,email"`
	EntryType    WaitlistType `json:"entryType" binding:"required"`
	Name         string       `json:"name" binding:"required,min=2,max=100"`
	BusinessName string       `json:"businessName,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Category     string       `json:"category,omitempty"`
	Address      string       `json:"address,omitempty"`
	State        string       `json:"state,omitempty"`
	City         string       `json:"city,omitempty"`
	LGA          string       `json:"lga,omitempty"`
}

// CreateAccountInput represents input for admin-initiated account provisioning
type CreateAccountInput struct {
	Email string `json:"email" binding:"required,email"`
}

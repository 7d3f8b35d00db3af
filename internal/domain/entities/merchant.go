package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantStatus represents merchant approval status
type MerchantStatus string

const (
	MerchantStatusPending  MerchantStatus = "pending"
	MerchantStatusApproved MerchantStatus = "approved"
	MerchantStatusRejected MerchantStatus = "rejected"
)

// Merchant represents a merchant profile and its approval lifecycle state.
// UserID is null until an authentication identity has been provisioned.
type Merchant struct {
	ID                uuid.UUID      `json:"id"`
	UserID            null.String    `json:"userId,omitempty"`
	Email             string         `json:"email"`
	Name              string         `json:"name"`
	BusinessName      string         `json:"businessName"`
	Phone             null.String    `json:"phone,omitempty"`
	Category          null.String    `json:"category,omitempty"`
	Address           null.String    `json:"address,omitempty"`
	State             null.String    `json:"state,omitempty"`
	City              null.String    `json:"city,omitempty"`
	LGA               null.String    `json:"lga,omitempty"`
	Status            MerchantStatus `json:"status"`
	RejectionReason   null.String    `json:"rejectionReason,omitempty"`
	ApprovedAt        null.Time      `json:"approvedAt,omitempty"`
	ApprovedByAdminID null.String    `json:"approvedByAdminId,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         null.Time      `json:"-"`
}

// UpdateProfileInput represents input for updating merchant profile fields
type UpdateProfileInput struct {
	Name         string `json:"name,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Category     string `json:"category,omitempty"`
	Address      string `json:"address,omitempty"`
	State        string `json:"state,omitempty"`
	City         string `json:"city,omitempty"`
	LGA          string `json:"lga,omitempty"`
}

// RejectMerchantInput represents input for rejecting a merchant application
type RejectMerchantInput struct {
	Reason string `json:"reason" binding:"required"`
}

// MerchantStatusResponse represents merchant status response
type MerchantStatusResponse struct {
	MerchantID      uuid.UUID      `json:"merchantId"`
	Status          MerchantStatus `json:"status"`
	BusinessName    string         `json:"businessName"`
	RejectionReason null.String    `json:"rejectionReason,omitempty"`
	Message         string         `json:"message"`
	SubmittedAt     time.Time      `json:"submittedAt"`
	ReviewedAt      null.Time      `json:"reviewedAt,omitempty"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
	"dealhub.backend/internal/interfaces/http/response"
)

// WaitlistHandler handles the public pre-registration endpoint
type WaitlistHandler struct {
	waitlistRepo repositories.WaitlistRepository
}

// NewWaitlistHandler creates a new waitlist handler
func NewWaitlistHandler(waitlistRepo repositories.WaitlistRepository) *WaitlistHandler {
	return &WaitlistHandler{waitlistRepo: waitlistRepo}
}

// Join adds an email to the pre-registration list
// POST /api/v1/waitlist
func (h *WaitlistHandler) Join(c *gin.Context) {
	var input entities.JoinWaitlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if input.EntryType != entities.WaitlistTypeMerchant && input.EntryType != entities.WaitlistTypeCustomer {
		response.Error(c, domainerrors.BadRequest("Invalid entry type"))
		return
	}

	entry := &entities.WaitlistEntry{
		Email:     input.Email,
		EntryType: input.EntryType,
		Name:      input.Name,
	}
	if input.BusinessName != "" {
		entry.BusinessName = null.StringFrom(input.BusinessName)
	}
	if input.Phone != "" {
		entry.Phone = null.StringFrom(input.Phone)
	}
	if input.Category != "" {
		entry.Category = null.StringFrom(input.Category)
	}
	if input.Address != "" {
		entry.Address = null.StringFrom(input.Address)
	}
	if input.State != "" {
		entry.State = null.StringFrom(input.State)
	}
	if input.City != "" {
		entry.City = null.StringFrom(input.City)
	}
	if input.LGA != "" {
		entry.LGA = null.StringFrom(input.LGA)
	}

	if err := h.waitlistRepo.Create(c.Request.Context(), entry); err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Email is already on the waitlist"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "You're on the list. We'll be in touch.",
		"entry":   entry,
	})
}

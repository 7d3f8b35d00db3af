package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/interfaces/http/middleware"
	"dealhub.backend/internal/interfaces/http/response"
	"dealhub.backend/internal/usecases"
)

// MerchantHandler handles merchant self-service endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// GetStatus gets the approval status for the current user
// GET /api/v1/merchants/status
func (h *MerchantHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	status, err := h.merchantUsecase.GetStatus(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No merchant application found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Resubmit moves a rejected application back to pending
// POST /api/v1/merchants/resubmit
func (h *MerchantHandler) Resubmit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	status, err := h.merchantUsecase.Resubmit(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Application is already approved"))
			return
		}
		response.Error(c, err)
		return
	}

	middleware.RecordMerchantTransition(string(status.Status))

	response.Success(c, http.StatusOK, status)
}

// UpdateProfile updates the caller's merchant profile
// PUT /api/v1/merchants/profile
func (h *MerchantHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.merchantUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"merchant": merchant})
}

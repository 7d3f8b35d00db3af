package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
	"dealhub.backend/internal/interfaces/http/middleware"
	"dealhub.backend/internal/interfaces/http/response"
	"dealhub.backend/internal/usecases"
	"dealhub.backend/pkg/utils"
)

// AdminHandler handles admin endpoints for the merchant approval lifecycle
type AdminHandler struct {
	approvalUsecase *usecases.ApprovalUsecase
	merchantRepo    repositories.MerchantRepository
	credentialRepo  repositories.CredentialRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	approvalUsecase *usecases.ApprovalUsecase,
	merchantRepo repositories.MerchantRepository,
	credentialRepo repositories.CredentialRepository,
) *AdminHandler {
	return &AdminHandler{
		approvalUsecase: approvalUsecase,
		merchantRepo:    merchantRepo,
		credentialRepo:  credentialRepo,
	}
}

// ListMerchants lists merchant records, optionally filtered by status
// GET /api/v1/admin/merchants
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	status := entities.MerchantStatus(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	merchants, total, err := h.merchantRepo.List(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"merchants":  merchants,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ApproveMerchant approves a pending merchant application
// POST /api/v1/admin/merchants/:id/approve
func (h *AdminHandler) ApproveMerchant(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	merchant, err := h.approvalUsecase.Approve(c.Request.Context(), adminID, merchantID)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Merchant is not pending review"))
			return
		}
		response.Error(c, err)
		return
	}

	middleware.RecordMerchantTransition(string(merchant.Status))

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Merchant approved",
		"merchant": merchant,
	})
}

// RejectMerchant rejects a pending merchant application with a reason
// POST /api/v1/admin/merchants/:id/reject
func (h *AdminHandler) RejectMerchant(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	var input entities.RejectMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("A rejection reason is required"))
		return
	}

	merchant, err := h.approvalUsecase.Reject(c.Request.Context(), adminID, merchantID, input.Reason)
	if err != nil {
		switch err {
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("A rejection reason is required"))
		case domainerrors.ErrAlreadyExists:
			response.Error(c, domainerrors.Conflict("Merchant is not pending review"))
		default:
			response.Error(c, err)
		}
		return
	}

	middleware.RecordMerchantTransition(string(merchant.Status))

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Merchant rejected",
		"merchant": merchant,
	})
}

// CreateAccount provisions a merchant account from the waitlist
// POST /api/v1/admin/accounts
func (h *AdminHandler) CreateAccount(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	account, err := h.approvalUsecase.CreateAccount(c.Request.Context(), adminID, input.Email)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("No waitlist entry for that email"))
		case domainerrors.ErrAlreadyExists:
			response.Error(c, domainerrors.Conflict("An account already exists for that email"))
		default:
			response.Error(c, err)
		}
		return
	}

	middleware.RecordMerchantTransition(string(account.Merchant.Status))

	response.Success(c, http.StatusCreated, account)
}

// ResetPassword issues a new temporary password for a provisioned merchant
// POST /api/v1/admin/merchants/:id/reset-password
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	account, err := h.approvalUsecase.ResetPassword(c.Request.Context(), adminID, merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, account)
}

// GetMerchantCredential returns the full credential entry for hand-off
// GET /api/v1/admin/merchants/:id/credential
func (h *AdminHandler) GetMerchantCredential(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	credential, err := h.credentialRepo.GetByMerchantID(c.Request.Context(), merchantID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No credential entry for that merchant"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"credential": credential})
}

// ListCredentials lists credential entries with passwords masked for display
// GET /api/v1/admin/credentials
func (h *AdminHandler) ListCredentials(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	credentials, total, err := h.credentialRepo.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	type maskedCredential struct {
		MerchantID        uuid.UUID `json:"merchantId"`
		IssuedEmail       string    `json:"issuedEmail"`
		TemporaryPassword string    `json:"temporaryPassword"`
		PasswordChanged   bool      `json:"passwordChanged"`
		Notes             string    `json:"notes,omitempty"`
	}

	masked := make([]maskedCredential, 0, len(credentials))
	for _, cred := range credentials {
		masked = append(masked, maskedCredential{
			MerchantID:        cred.MerchantID,
			IssuedEmail:       cred.IssuedEmail,
			TemporaryPassword: utils.MaskSecret(cred.TemporaryPassword),
			PasswordChanged:   cred.PasswordChanged,
			Notes:             cred.Notes,
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"credentials": masked,
		"pagination":  utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"dealhub.backend/internal/domain/entities"
	"dealhub.backend/internal/interfaces/http/middleware"
	"dealhub.backend/internal/usecases"
)

func merchantRouter(merchantRepo *merchantRepoStub, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMerchantHandler(usecases.NewMerchantUsecase(merchantRepo, &userRepoStub{}))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	})
	r.GET("/merchants/status", h.GetStatus)
	r.POST("/merchants/resubmit", h.Resubmit)
	r.PUT("/merchants/profile", h.UpdateProfile)
	return r
}

func TestMerchantHandler_GetStatus(t *testing.T) {
	userID := uuid.New()
	merchantRepo := &merchantRepoStub{
		getByUserID: func(context.Context, uuid.UUID) (*entities.Merchant, error) {
			return &entities.Merchant{
				ID:              uuid.New(),
				Status:          entities.MerchantStatusRejected,
				BusinessName:    "Jane Foods",
				RejectionReason: null.StringFrom("Incomplete business documents"),
			}, nil
		},
	}
	r := merchantRouter(merchantRepo, userID)

	req := httptest.NewRequest(http.MethodGet, "/merchants/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rejected")
	assert.Contains(t, rec.Body.String(), "Incomplete business documents")
}

func TestMerchantHandler_GetStatus_NoApplication(t *testing.T) {
	r := merchantRouter(&merchantRepoStub{}, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/merchants/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMerchantHandler_Resubmit_FromRejected(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()
	merchantRepo := &merchantRepoStub{
		getByUserID: func(context.Context, uuid.UUID) (*entities.Merchant, error) {
			return &entities.Merchant{
				ID:              merchantID,
				Status:          entities.MerchantStatusRejected,
				RejectionReason: null.StringFrom("Incomplete business documents"),
			}, nil
		},
		getByID: func(_ context.Context, id uuid.UUID) (*entities.Merchant, error) {
			return &entities.Merchant{ID: id, Status: entities.MerchantStatusPending}, nil
		},
	}
	r := merchantRouter(merchantRepo, userID)

	req := httptest.NewRequest(http.MethodPost, "/merchants/resubmit", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestMerchantHandler_Resubmit_ApprovedConflicts(t *testing.T) {
	merchantRepo := &merchantRepoStub{
		getByUserID: func(context.Context, uuid.UUID) (*entities.Merchant, error) {
			return &entities.Merchant{ID: uuid.New(), Status: entities.MerchantStatusApproved}, nil
		},
	}
	r := merchantRouter(merchantRepo, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/merchants/resubmit", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMerchantHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()
	merchantRepo := &merchantRepoStub{
		getByUserID: func(context.Context, uuid.UUID) (*entities.Merchant, error) {
			return &entities.Merchant{ID: merchantID, Name: "Jane", BusinessName: "Jane Foods"}, nil
		},
		getByID: func(_ context.Context, id uuid.UUID) (*entities.Merchant, error) {
			return &entities.Merchant{ID: id, BusinessName: "Jane Foods & Catering"}, nil
		},
	}
	r := merchantRouter(merchantRepo, userID)

	req := httptest.NewRequest(http.MethodPut, "/merchants/profile",
		strings.NewReader(`{"businessName":"Jane Foods & Catering"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Foods")
}

package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealhub.backend/internal/domain/entities"
	domainerrors "dealhub.backend/internal/domain/errors"
)

func TestCredentialRepository_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	createCredentialTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	adminID := uuid.New()
	entry := &entities.MerchantCredential{
		MerchantID:        merchantID,
		IssuedEmail:       "bob@shop.com",
		TemporaryPassword: "Temp1234!abc",
		CreatedByAdminID:  adminID,
		Notes:             "provisioned",
	}
	require.NoError(t, repo.Upsert(ctx, entry))

	got, err := repo.GetByMerchantID(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, "Temp1234!abc", got.TemporaryPassword)
	assert.Equal(t, adminID, got.CreatedByAdminID)
	assert.False(t, got.PasswordChanged)
}

func TestCredentialRepository_Upsert_OverwritesPrevious(t *testing.T) {
	db := newTestDB(t)
	createCredentialTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	first := &entities.MerchantCredential{
		MerchantID:        merchantID,
		IssuedEmail:       "bob@shop.com",
		TemporaryPassword: "FirstPass1!a",
		CreatedByAdminID:  uuid.New(),
	}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NoError(t, repo.MarkPasswordChanged(ctx, merchantID))

	second := &entities.MerchantCredential{
		MerchantID:        merchantID,
		IssuedEmail:       "bob@shop.com",
		TemporaryPassword: "SecondPass2!b",
		CreatedByAdminID:  uuid.New(),
		Notes:             "reset",
	}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.GetByMerchantID(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, "SecondPass2!b", got.TemporaryPassword)
	assert.Equal(t, "reset", got.Notes)
	// A reissue brings the flag back down: the new temporary password is live.
	assert.False(t, got.PasswordChanged)

	// Still exactly one row per merchant.
	entries, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, entries, 1)
}

func TestCredentialRepository_MarkPasswordChanged(t *testing.T) {
	db := newTestDB(t)
	createCredentialTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	require.NoError(t, repo.Upsert(ctx, &entities.MerchantCredential{
		MerchantID:        merchantID,
		IssuedEmail:       "bob@shop.com",
		TemporaryPassword: "Temp1234!abc",
		CreatedByAdminID:  uuid.New(),
	}))

	require.NoError(t, repo.MarkPasswordChanged(ctx, merchantID))

	got, err := repo.GetByMerchantID(ctx, merchantID)
	require.NoError(t, err)
	assert.True(t, got.PasswordChanged)
}

func TestCredentialRepository_MarkPasswordChanged_NotFound(t *testing.T) {
	db := newTestDB(t)
	createCredentialTable(t, db)
	repo := NewCredentialRepository(db)

	err := repo.MarkPasswordChanged(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_GetByMerchantID_NotFound(t *testing.T) {
	db := newTestDB(t)
	createCredentialTable(t, db)
	repo := NewCredentialRepository(db)

	_, err := repo.GetByMerchantID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	createCredentialTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Upsert(ctx, &entities.MerchantCredential{
			MerchantID:        uuid.New(),
			IssuedEmail:       "m@shop.com",
			TemporaryPassword: "Temp1234!abc",
			CreatedByAdminID:  uuid.New(),
		}))
	}

	entries, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, entries, 2)
}

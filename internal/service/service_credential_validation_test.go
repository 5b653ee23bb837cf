package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cred-pool/internal/mock"
	"github.com/MKhiriev/go-cred-pool/internal/validators"
	"github.com/MKhiriev/go-cred-pool/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidationService(t *testing.T, maxItems int) (CredentialService, *mock.MockCredentialService) {
	t.Helper()
	inner := mock.NewMockCredentialService(gomock.NewController(t))
	return NewCredentialValidationService(maxItems).Wrap(inner), inner
}

// ─────────────────────────────────────────────
// BatchAdd
// ─────────────────────────────────────────────

func TestValidation_BatchAdd_RejectsRequestWideProblems(t *testing.T) {
	tests := []struct {
		name    string
		request models.BatchAddRequest
		want    error
	}{
		{"empty batch", models.BatchAddRequest{Items: []models.RawCredentialItem{}}, validators.ErrEmptyBatch},
		{"oversize batch", models.BatchAddRequest{Items: items(`{}`, `{}`, `{}`)}, validators.ErrBatchTooLarge},
		{"negative priority", models.BatchAddRequest{Items: items(`{}`), Priority: -1}, validators.ErrNegativePriority},
		{"bad region", models.BatchAddRequest{Items: items(`{}`), Region: "eu\nwest"}, validators.ErrInvalidRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newValidationService(t, 2)

			result, err := svc.BatchAdd(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, result.Results)
		})
	}
}

func TestValidation_BatchAdd_InvalidItemsPassThrough(t *testing.T) {
	svc, inner := newValidationService(t, 10)

	request := models.BatchAddRequest{Items: items(`{"provider":"Twitter"}`)}
	inner.EXPECT().BatchAdd(gomock.Any(), request).Return(models.BatchAddResult{Total: 1, FailedCount: 1}, nil)

	result, err := svc.BatchAdd(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FailedCount)
}

func TestValidation_BatchAdd_PriorityAboveColumnLimit(t *testing.T) {
	svc, _ := newValidationService(t, 0)

	_, err := svc.BatchAdd(context.Background(), models.BatchAddRequest{
		Items:    items(`{"refreshToken":"rt","provider":"Github"}`),
		Priority: models.MaxPriority + 1,
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrPriorityTooLarge)
}

// ─────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────

func TestValidation_Add(t *testing.T) {
	svc, inner := newValidationService(t, 1)
	ctx := context.Background()

	_, err := svc.Add(ctx, models.AddCredentialRequest{RefreshToken: "rt", Priority: -1})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrNegativePriority)

	request := models.AddCredentialRequest{RefreshToken: "rt", Provider: models.ProviderGithub, Priority: 1}
	inner.EXPECT().Add(ctx, request).Return(models.AddCredentialResponse{Success: true, CredentialID: 3}, nil)

	resp, err := svc.Add(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.CredentialID)
}

// ─────────────────────────────────────────────
// Maintenance
// ─────────────────────────────────────────────

func TestValidation_SetPriority(t *testing.T) {
	svc, inner := newValidationService(t, 0)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetPriority(ctx, 1, models.SetPriorityRequest{Priority: -2}), validators.ErrNegativePriority)
	assert.ErrorIs(t, svc.SetPriority(ctx, 0, models.SetPriorityRequest{Priority: 1}), ErrInvalidRequest)

	inner.EXPECT().SetPriority(ctx, int64(1), models.SetPriorityRequest{Priority: 2}).Return(nil)
	assert.NoError(t, svc.SetPriority(ctx, 1, models.SetPriorityRequest{Priority: 2}))
}

func TestValidation_PassThroughOperations(t *testing.T) {
	svc, inner := newValidationService(t, 0)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetDisabled(ctx, -1, models.SetDisabledRequest{}), ErrInvalidRequest)

	inner.EXPECT().SetDisabled(ctx, int64(4), models.SetDisabledRequest{Disabled: true}).Return(nil)
	inner.EXPECT().ListCredentials(ctx).Return(models.CredentialsStatusResponse{Total: 1}, nil)
	inner.EXPECT().DeleteDisabled(ctx).Return(models.BatchDeleteDisabledResponse{DeletedCount: 2}, nil)

	require.NoError(t, svc.SetDisabled(ctx, 4, models.SetDisabledRequest{Disabled: true}))

	list, err := svc.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	deleted, err := svc.DeleteDisabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted.DeletedCount)
}

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cred-pool/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchOf(n int) []models.RawCredentialItem {
	items := make([]models.RawCredentialItem, n)
	for i := range items {
		items[i] = models.RawCredentialItem(`{"refreshToken":"rt","provider":"Github"}`)
	}
	return items
}

func TestRequestValidator_BatchAddRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.BatchAddRequest
		fields  []string
		wantErr error
	}{
		{
			name:    "valid",
			request: models.BatchAddRequest{Items: batchOf(2), Priority: 3, Region: "us-east-1"},
		},
		{
			name:    "nil items",
			request: models.BatchAddRequest{},
			wantErr: ErrEmptyBatch,
		},
		{
			name:    "empty items",
			request: models.BatchAddRequest{Items: []models.RawCredentialItem{}},
			wantErr: ErrEmptyBatch,
		},
		{
			name:    "too many items",
			request: models.BatchAddRequest{Items: batchOf(4)},
			wantErr: ErrBatchTooLarge,
		},
		{
			name:    "negative priority",
			request: models.BatchAddRequest{Items: batchOf(1), Priority: -1},
			wantErr: ErrNegativePriority,
		},
		{
			name:    "priority at the column limit",
			request: models.BatchAddRequest{Items: batchOf(1), Priority: models.MaxPriority},
		},
		{
			name:    "priority above the column limit",
			request: models.BatchAddRequest{Items: batchOf(1), Priority: 3000000000},
			wantErr: ErrPriorityTooLarge,
		},
		{
			name:    "padded region is measured trimmed",
			request: models.BatchAddRequest{Items: batchOf(1), Region: "  " + strings.Repeat("r", 64) + "  "},
		},
		{
			name:    "region too long",
			request: models.BatchAddRequest{Items: batchOf(1), Region: strings.Repeat("r", 65)},
			wantErr: ErrInvalidRegion,
		},
		{
			name:    "scoped to priority ignores empty items",
			request: models.BatchAddRequest{Priority: 1},
			fields:  []string{FieldPriority},
		},
		{
			name:    "unknown field",
			request: models.BatchAddRequest{Items: batchOf(1)},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewRequestValidator(3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_PointerAndUnbounded(t *testing.T) {
	v := NewRequestValidator(0)

	req := &models.BatchAddRequest{Items: batchOf(1000)}
	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestRequestValidator_SetPriorityRequest(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SetPriorityRequest{Priority: 0}))
	assert.NoError(t, v.Validate(ctx, &models.SetPriorityRequest{Priority: 9}))
	assert.ErrorIs(t, v.Validate(ctx, models.SetPriorityRequest{Priority: -5}), ErrNegativePriority)
	assert.ErrorIs(t, v.Validate(ctx, models.SetPriorityRequest{Priority: models.MaxPriority + 1}), ErrPriorityTooLarge)
}

func TestRequestValidator_AddCredentialRequest(t *testing.T) {
	v := NewRequestValidator(1)
	ctx := context.Background()

	// the credential fields are the item validator's business
	assert.NoError(t, v.Validate(ctx, models.AddCredentialRequest{Priority: 2, Region: "eu-west-1"}))
	assert.NoError(t, v.Validate(ctx, &models.AddCredentialRequest{}))

	assert.ErrorIs(t, v.Validate(ctx, models.AddCredentialRequest{Priority: -1}), ErrNegativePriority)
	assert.ErrorIs(t, v.Validate(ctx, models.AddCredentialRequest{Priority: models.MaxPriority + 1}), ErrPriorityTooLarge)
	assert.ErrorIs(t, v.Validate(ctx, models.AddCredentialRequest{Region: "eu\twest"}), ErrInvalidRegion)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator(0)
	assert.ErrorIs(t, v.Validate(context.Background(), "a string"), ErrUnsupportedType)
}

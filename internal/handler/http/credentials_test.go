package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cred-pool/internal/service"
	"github.com/MKhiriev/go-cred-pool/internal/store"
	"github.com/MKhiriev/go-cred-pool/internal/validators"
	"github.com/MKhiriev/go-cred-pool/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const batchAddPath = "/api/admin/credentials/batch-add"

// ─────────────────────────────────────────────
// batch-add
// ─────────────────────────────────────────────

func TestBatchAdd_Success(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()

	expected := service.Aggregate([]models.ItemOutcome{
		models.NewFailureOutcome(1, "missing required field refreshToken"),
		models.NewSuccessOutcome(2, 42),
	})

	th.credentials.EXPECT().BatchAdd(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.BatchAddRequest) (models.BatchAddResult, error) {
			require.Len(t, req.Items, 2)
			assert.Equal(t, 3, req.Priority)
			assert.Equal(t, "us-east-1", req.Region)
			return expected, nil
		})

	rec := th.do(t, http.MethodPost, batchAddPath,
		`{"credentials":[{"provider":"Github"},{"refreshToken":"rt","provider":"Github"}],"priority":3,"region":"us-east-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.BatchAddResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.SuccessCount)
	assert.Equal(t, 1, got.FailedCount)
	require.Len(t, got.Results, 2)
	assert.Equal(t, 1, got.Results[0].Line)
	assert.Nil(t, got.Results[0].CredentialID)
	assert.Equal(t, int64(42), *got.Results[1].CredentialID)
}

func TestBatchAdd_MalformedBodiesNeverReachTheService(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{"credentials is an object", `{"credentials":{"refreshToken":"a"}}`, "credentials must be a JSON array"},
		{"credentials missing", `{"priority":1}`, "credentials must be a JSON array"},
		{"not json", `{credentials:`, "invalid JSON was passed"},
		{"priority is a string", `{"credentials":[],"priority":"high"}`, "must be a JSON object with a credentials array"},
		{"top-level array", `[{"refreshToken":"a"}]`, "must be a JSON object with a credentials array"},
		{"priority overflows int", `{"credentials":[],"priority":1e40}`, "must be a JSON object with a credentials array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.authorized()

			rec := th.do(t, http.MethodPost, batchAddPath, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeErrorResponse(t, rec)
			assert.Equal(t, models.ErrorTypeInvalidRequest, detail.Type)
			assert.Contains(t, detail.Message, tt.wantMessage)
			assert.NotContains(t, detail.Message, "Go value")
			assert.NotContains(t, detail.Message, "models.")
			assert.NotContains(t, rec.Body.String(), "results")
		})
	}
}

func TestBatchAdd_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "empty batch",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidRequest, validators.ErrEmptyBatch),
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeInvalidRequest,
		},
		{
			name:       "negative priority",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidRequest, validators.ErrNegativePriority),
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeInvalidRequest,
		},
		{
			name:       "store unavailable",
			err:        store.ErrStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantType:   models.ErrorTypeServiceUnavailable,
		},
		{
			name:       "unexpected",
			err:        errors.New("secret internal detail"),
			wantStatus: http.StatusInternalServerError,
			wantType:   models.ErrorTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.authorized()
			th.credentials.EXPECT().BatchAdd(gomock.Any(), gomock.Any()).Return(models.BatchAddResult{}, tt.err)

			rec := th.do(t, http.MethodPost, batchAddPath, `{"credentials":[]}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeErrorResponse(t, rec)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.NotContains(t, detail.Message, "secret internal detail")
		})
	}
}

func TestBatchAdd_RequiresAuth(t *testing.T) {
	th := newTestHandler(t)
	th.authService.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := th.do(t, http.MethodPost, batchAddPath, `{"credentials":[]}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, models.ErrorTypeUnauthorized, decodeErrorResponse(t, rec).Type)
}

// ─────────────────────────────────────────────
// single add
// ─────────────────────────────────────────────

func TestAddCredential_Created(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.credentials.EXPECT().Add(gomock.Any(), models.AddCredentialRequest{
		RefreshToken: "rt",
		ClientID:     "cid",
		ClientSecret: "secret",
		Priority:     1,
	}).Return(models.AddCredentialResponse{Success: true, Message: "credential 5 added", CredentialID: 5}, nil)

	rec := th.do(t, http.MethodPost, "/api/admin/credentials",
		`{"refreshToken":"rt","clientId":"cid","clientSecret":"secret","priority":1}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"credential 5 added","credentialId":5}`, rec.Body.String())
}

func TestAddCredential_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "duplicate",
			err:        fmt.Errorf("add credential: %w", store.ErrCredentialAlreadyExists),
			wantStatus: http.StatusConflict,
			wantType:   models.ErrorTypeConflict,
		},
		{
			name:       "invalid credential",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingRefreshToken),
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeInvalidRequest,
		},
		{
			name:       "priority out of range",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidRequest, validators.ErrPriorityTooLarge),
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeInvalidRequest,
		},
		{
			name:       "store unavailable",
			err:        fmt.Errorf("add credential: %w", store.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantType:   models.ErrorTypeServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.authorized()
			th.credentials.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.AddCredentialResponse{}, tt.err)

			rec := th.do(t, http.MethodPost, "/api/admin/credentials", `{"refreshToken":"rt","provider":"Github"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantType, decodeErrorResponse(t, rec).Type)
		})
	}
}

func TestAddCredential_WrongFieldTypeIsNeutral400(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()

	rec := th.do(t, http.MethodPost, "/api/admin/credentials", `{"refreshToken":42}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeErrorResponse(t, rec)
	assert.Equal(t, ErrInvalidJSON.Error(), detail.Message)
}

// ─────────────────────────────────────────────
// maintenance
// ─────────────────────────────────────────────

func TestListCredentials(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.credentials.EXPECT().ListCredentials(gomock.Any()).Return(models.CredentialsStatusResponse{
		Total:     2,
		Available: 1,
		Credentials: []models.CredentialStatusItem{
			{ID: 1, Provider: models.ProviderGithub},
			{ID: 2, Provider: models.ProviderGoogle, Disabled: true},
		},
	}, nil)

	rec := th.do(t, http.MethodGet, "/api/admin/credentials", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.CredentialsStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.Available)
	assert.NotContains(t, rec.Body.String(), "refreshToken")
}

func TestSetPriority(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.credentials.EXPECT().SetPriority(gomock.Any(), int64(7), models.SetPriorityRequest{Priority: 2}).Return(nil)

		rec := th.do(t, http.MethodPost, "/api/admin/credentials/7/priority", `{"priority":2}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.SuccessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
	})

	t.Run("bad id", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()

		for _, id := range []string{"abc", "0", "-3"} {
			rec := th.do(t, http.MethodPost, "/api/admin/credentials/"+id+"/priority", `{"priority":2}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		}
	})

	t.Run("not found", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.credentials.EXPECT().SetPriority(gomock.Any(), int64(9), gomock.Any()).Return(store.ErrCredentialNotFound)

		rec := th.do(t, http.MethodPost, "/api/admin/credentials/9/priority", `{"priority":1}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, models.ErrorTypeNotFound, decodeErrorResponse(t, rec).Type)
	})
}

func TestSetDisabled(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.credentials.EXPECT().SetDisabled(gomock.Any(), int64(3), models.SetDisabledRequest{Disabled: true}).Return(nil)

	rec := th.do(t, http.MethodPost, "/api/admin/credentials/3/disabled", `{"disabled":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "credential 3 disabled")
}

func TestDeleteDisabled(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.credentials.EXPECT().DeleteDisabled(gomock.Any()).Return(models.BatchDeleteDisabledResponse{
		DeletedCount: 2,
		DeletedIDs:   []int64{4, 8},
	}, nil)

	rec := th.do(t, http.MethodDelete, "/api/admin/credentials/disabled", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":2,"deletedIds":[4,8]}`, rec.Body.String())
}

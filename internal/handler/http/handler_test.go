package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/mock"
	"github.com/MKhiriev/go-cred-pool/internal/service"
	"github.com/MKhiriev/go-cred-pool/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-token"

type testHandler struct {
	*Handler
	credentials *mock.MockCredentialService
	authService *mock.MockAuthService
	appInfo     *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		credentials: mock.NewMockCredentialService(ctrl),
		authService: mock.NewMockAuthService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	th.Handler = &Handler{
		services: &service.Services{
			AuthService:       th.authService,
			CredentialService: th.credentials,
			AppInfoService:    th.appInfo,
		},
		logger: logger.Nop(),
	}
	return th
}

// authorized makes the mocked AuthService accept testToken.
func (th *testHandler) authorized() {
	th.authService.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{Principal: service.AdminPrincipal}, nil).AnyTimes()
}

func (th *testHandler) do(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

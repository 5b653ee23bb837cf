package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/service"
	"github.com/MKhiriev/go-cred-pool/internal/store"
	"github.com/MKhiriev/go-cred-pool/internal/utils"
	"github.com/MKhiriev/go-cred-pool/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:         http.StatusBadRequest,
	ErrInvalidCredentialID: http.StatusBadRequest,

	models.ErrMalformedBatchRequest: http.StatusBadRequest,
	models.ErrCredentialsNotArray:   http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRequest:          http.StatusBadRequest,
	service.ErrWrongAPIKey:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrCredentialNotFound:      http.StatusNotFound,
	store.ErrCredentialAlreadyExists: http.StatusConflict,
	store.ErrStoreUnavailable:        http.StatusServiceUnavailable,
}

var errorTypeByStatus = map[int]string{
	http.StatusBadRequest:          models.ErrorTypeInvalidRequest,
	http.StatusUnauthorized:        models.ErrorTypeUnauthorized,
	http.StatusNotFound:            models.ErrorTypeNotFound,
	http.StatusConflict:            models.ErrorTypeConflict,
	http.StatusServiceUnavailable:  models.ErrorTypeServiceUnavailable,
	http.StatusInternalServerError: models.ErrorTypeInternal,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with an [models.ErrorResponse]. Internal
// errors are reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, errorTypeByStatus[status], message)
}

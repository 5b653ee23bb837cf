package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongAPIKey         = errors.New("wrong api key")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidRequest wraps every request-wide validation failure.
	ErrInvalidRequest = errors.New("invalid request")
)

// Reasons reported on a failed line when the item was valid but could not
// be stored.
const (
	ReasonDuplicateCredential = "credential with the same refreshToken already exists"
	ReasonStoreUnavailable    = "credential store is unavailable"
	ReasonSaveFailed          = "failed to save credential"
)

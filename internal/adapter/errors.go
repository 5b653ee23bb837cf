package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrInvalidRequest      = errors.New("request rejected by server")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")
)

package models

// ErrorResponse is the body of every non-2xx admin API response.
//
//	{"error": {"type": "invalid_request", "message": "credentials must be a JSON array"}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a batch-level (request-wide) failure.
type ErrorDetail struct {
	// Type is a stable machine-readable category such as "invalid_request".
	Type string `json:"type"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// SuccessResponse acknowledges a maintenance operation on a single credential.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginRequest exchanges the admin API key for a bearer token.
type LoginRequest struct {
	APIKey string `json:"apiKey"`
}

// Error types reported in [ErrorDetail.Type].
const (
	ErrorTypeInvalidRequest     = "invalid_request"
	ErrorTypeUnauthorized       = "unauthorized"
	ErrorTypeNotFound           = "not_found"
	ErrorTypeConflict           = "conflict"
	ErrorTypeServiceUnavailable = "service_unavailable"
	ErrorTypeInternal           = "internal_error"
)

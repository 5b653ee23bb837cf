package models

import "errors"

// Batch-level decoding errors. Both reject the whole submission before any
// item is validated.
var (
	// ErrMalformedBatchRequest is returned when the request body is not a JSON
	// object of the expected shape (unparsable JSON, non-integer priority, ...).
	ErrMalformedBatchRequest = errors.New("request body must be a JSON object with a credentials array and an integer priority")

	// ErrCredentialsNotArray is returned when the credentials field is missing
	// or is not a JSON array.
	ErrCredentialsNotArray = errors.New("credentials must be a JSON array")
)

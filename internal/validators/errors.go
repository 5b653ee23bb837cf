package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Per-item validation errors. They are reported as the reason of a failed
// line and never abort a batch.
var (
	ErrItemNotObject             = errors.New("credential must be a JSON object")
	ErrMissingRefreshToken       = errors.New("missing required field refreshToken")
	ErrInvalidProvider           = errors.New("invalid provider")
	ErrBuilderIDClientIDRequired = errors.New("provider BuilderId requires clientId and clientSecret")
)

// Request-wide validation errors. Each rejects the whole submission.
var (
	ErrEmptyBatch       = errors.New("at least one credential is required")
	ErrBatchTooLarge    = errors.New("too many credentials in one batch")
	ErrNegativePriority = errors.New("priority must be a non-negative integer")
	ErrPriorityTooLarge = errors.New("priority must not exceed 2147483647")
	ErrInvalidRegion    = errors.New("region must be at most 64 printable ASCII characters")
)

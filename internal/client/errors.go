package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-pool/internal/validators"
)

var (
	// ErrBatchFileFormat is returned when the batch file is neither a JSON
	// array of credentials nor an object with a "credentials" array.
	ErrBatchFileFormat = errors.New("batch file must hold a JSON array of credentials")

	// ErrPrecheckFailed is returned when local validation rejects at least one
	// line. Nothing is sent to the server.
	ErrPrecheckFailed = errors.New("batch pre-check failed")

	// ErrItemsFailed is returned after the report is printed when the server
	// rejected at least one line.
	ErrItemsFailed = errors.New("some credentials were not added")

	ErrMissingAPIKey = errors.New("admin API key is not set (use --api-key or ADAPTER_API_KEY)")
)

// PrecheckError lists every line that failed local validation.
type PrecheckError struct {
	Items []*validators.ItemError
}

func (e *PrecheckError) Error() string {
	lines := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		lines = append(lines, fmt.Sprintf("line %d: %s", item.Line, item.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrPrecheckFailed, strings.Join(lines, "; "))
}

func (e *PrecheckError) Unwrap() error {
	return ErrPrecheckFailed
}

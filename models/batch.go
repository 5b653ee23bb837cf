package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RawCredentialItem is a single untrusted element of a batch as it arrived on
// the wire. It stays raw until the item validator has looked at it, so that
// type mismatches (a numeric refreshToken, a non-object element) are reported
// per line instead of failing the whole request.
type RawCredentialItem = json.RawMessage

// BatchAddRequest is a batch-add submission.
//
// Wire form:
//
//	{"credentials": [...], "priority": 0, "region": "us-east-1"}
//
// Decoding enforces the batch-level shape rules: the body must be a JSON
// object, credentials must be a JSON array and priority, when present, must be
// an integer. Anything else is a malformed request and no item is looked at.
type BatchAddRequest struct {
	// Items keeps the submission order; index i is reported as line i+1.
	Items []RawCredentialItem

	// Priority is applied to every accepted item. Lower is used first.
	Priority int

	// Region is optional and applied to every accepted item. Surrounding
	// whitespace is dropped while decoding.
	Region string
}

type batchAddRequestWire struct {
	Credentials json.RawMessage `json:"credentials"`
	Priority    *int            `json:"priority,omitempty"`
	Region      *string         `json:"region,omitempty"`
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *BatchAddRequest) UnmarshalJSON(data []byte) error {
	var wire batchAddRequestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBatchRequest, err)
	}

	items, err := ParseCredentialItems(wire.Credentials)
	if err != nil {
		return err
	}

	r.Items = items
	r.Priority = 0
	if wire.Priority != nil {
		r.Priority = *wire.Priority
	}
	r.Region = ""
	if wire.Region != nil {
		r.Region = strings.TrimSpace(*wire.Region)
	}

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (r BatchAddRequest) MarshalJSON() ([]byte, error) {
	items := r.Items
	if items == nil {
		items = []RawCredentialItem{}
	}

	wire := struct {
		Credentials []RawCredentialItem `json:"credentials"`
		Priority    int                 `json:"priority"`
		Region      string              `json:"region,omitempty"`
	}{
		Credentials: items,
		Priority:    r.Priority,
		Region:      r.Region,
	}

	return json.Marshal(wire)
}

// ParseCredentialItems splits a JSON array into its raw elements.
//
// Returns [ErrCredentialsNotArray] when raw is missing, null or any JSON value
// other than an array. An empty array is returned as an empty, non-nil slice;
// rejecting it is up to the caller.
func ParseCredentialItems(raw []byte) ([]RawCredentialItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrCredentialsNotArray
	}

	items := make([]RawCredentialItem, 0)
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBatchRequest, err)
	}

	return items, nil
}

// ItemOutcome is the result for one line of a batch. Exactly one of
// CredentialID (on success) and Error (on failure) is set.
type ItemOutcome struct {
	Line         int    `json:"line"`
	Success      bool   `json:"success"`
	CredentialID *int64 `json:"credentialId,omitempty"`
	Error        string `json:"error,omitempty"`
}

// NewSuccessOutcome builds the outcome of a persisted item.
func NewSuccessOutcome(line int, credentialID int64) ItemOutcome {
	return ItemOutcome{
		Line:         line,
		Success:      true,
		CredentialID: &credentialID,
	}
}

// NewFailureOutcome builds the outcome of a rejected item. An empty reason is
// replaced by a generic one so that a failed outcome always carries an error.
func NewFailureOutcome(line int, reason string) ItemOutcome {
	if reason == "" {
		reason = "unknown error"
	}
	return ItemOutcome{
		Line:    line,
		Success: false,
		Error:   reason,
	}
}

// BatchAddResult is the aggregated report of a batch-add submission.
// SuccessCount + FailedCount == Total == len(Results) always holds.
type BatchAddResult struct {
	Total        int           `json:"total"`
	SuccessCount int           `json:"successCount"`
	FailedCount  int           `json:"failedCount"`
	Results      []ItemOutcome `json:"results"`
}

// Failed returns the failed outcomes in line order. Callers use it to build a
// follow-up batch containing only the lines that need correcting.
func (r BatchAddResult) Failed() []ItemOutcome {
	failed := make([]ItemOutcome, 0, r.FailedCount)
	for _, o := range r.Results {
		if !o.Success {
			failed = append(failed, o)
		}
	}
	return failed
}

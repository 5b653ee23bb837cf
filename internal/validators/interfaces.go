// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for credential batches.
//
// Two kinds of validation live here:
//   - ItemValidator: the per-line structural rules for a single raw
//     credential. Its failures are data (an *ItemError carrying the line and
//     reason), never batch-fatal.
//   - Validator: request-wide rules (non-empty batch, priority, region, batch
//     size). Its failures reject the whole submission.
//
// Both are pure: they perform no I/O and can run on the client before a
// batch is submitted as well as on the server.
package validators

import (
	"context"

	"github.com/MKhiriev/go-cred-pool/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// ItemValidator validates one raw credential of a batch.
type ItemValidator interface {
	// ValidateItem checks the item at the 0-based index of its batch. On
	// success it returns the normalized item; otherwise the error is an
	// *ItemError whose Line is index+1.
	ValidateItem(index int, raw models.RawCredentialItem) (models.CredentialItem, error)
}

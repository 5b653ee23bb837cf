// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-cred-pool admin API.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrInvalidRequest] for
// 400, [ErrUnauthorized] for 401). The server's error message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-pool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the admin API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges the admin API key for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, apiKey string) error

	// BatchAdd submits one batch and returns the per-line report. A non-nil
	// error means the batch as a whole was rejected or never reached the
	// server; per-item failures are reported inside the result.
	BatchAdd(ctx context.Context, req models.BatchAddRequest) (models.BatchAddResult, error)

	// ListCredentials returns the stored credentials without their secrets.
	ListCredentials(ctx context.Context) (models.CredentialsStatusResponse, error)

	// GetServerVersion returns the plain-text version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}

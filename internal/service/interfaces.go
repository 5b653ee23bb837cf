package service

import (
	"context"

	"github.com/MKhiriev/go-cred-pool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CredentialServiceWrapper

// CredentialService manages the credential pool.
type CredentialService interface {
	// BatchAdd validates and stores every item of request independently and
	// returns one outcome per item in input order. Item failures are data in
	// the result; the returned error is reserved for request-wide problems.
	BatchAdd(ctx context.Context, request models.BatchAddRequest) (models.BatchAddResult, error)

	// Add validates and stores a single credential. Unlike BatchAdd, a
	// rejected credential is returned as an error.
	Add(ctx context.Context, request models.AddCredentialRequest) (models.AddCredentialResponse, error)

	ListCredentials(ctx context.Context) (models.CredentialsStatusResponse, error)
	SetPriority(ctx context.Context, id int64, request models.SetPriorityRequest) error
	SetDisabled(ctx context.Context, id int64, request models.SetDisabledRequest) error
	DeleteDisabled(ctx context.Context) (models.BatchDeleteDisabledResponse, error)
}

// AuthService exchanges the admin API key for bearer tokens and verifies them.
type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// logging or validating.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService // returns a decorated CredentialService applying additional behavior
}

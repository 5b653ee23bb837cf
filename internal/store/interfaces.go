package store

import (
	"context"

	"github.com/MKhiriev/go-cred-pool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_repository_mock.go -package=mock

// CredentialRepository persists credentials. Implementations must be safe for
// concurrent use; uniqueness of the refresh token fingerprint is enforced by
// the store itself, so two batches racing on the same token see one success
// and one [ErrCredentialAlreadyExists].
type CredentialRepository interface {
	// Create stores cred and returns its new identifier. The sealed secrets,
	// fingerprint, priority and region are taken from cred as given.
	Create(ctx context.Context, cred models.Credential) (int64, error)

	// List returns every stored credential ordered by priority, then id.
	List(ctx context.Context) ([]models.Credential, error)

	// SetPriority updates the priority of one credential.
	SetPriority(ctx context.Context, id int64, priority int) error

	// SetDisabled enables or disables one credential.
	SetDisabled(ctx context.Context, id int64, disabled bool) error

	// DeleteDisabled removes every disabled credential and returns the
	// removed ids in ascending order.
	DeleteDisabled(ctx context.Context) ([]int64, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry,
	// which here means the store is temporarily unavailable.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

package store

import (
	"context"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	CredentialRepository CredentialRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories on top of the connection. The returned *DB must be
// closed by the caller.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, *DB, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, nil, err
	}

	return &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
	}, db, nil
}

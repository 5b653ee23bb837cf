// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. The same code serves PostgreSQL and SQLite; the
// dialect-specific parts (placeholders, error codes) live in *DB.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, log *logger.Logger) CredentialRepository {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts cred and returns the store-assigned id.
//
// Error handling:
//   - unique violation on fingerprint → [ErrCredentialAlreadyExists];
//   - connection loss, cancelled context, busy database → [ErrStoreUnavailable];
//   - anything else → wrapped [ErrExecutingStatement].
func (r *credentialRepository) Create(ctx context.Context, cred models.Credential) (int64, error) {
	log := logger.FromContext(ctx)

	createdAt := cred.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	query, args, err := buildInsertCredentialQuery(r.db.builder, cred, createdAt)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Create").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Create").Msg("error inserting credential")
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCredentialNotSaved
		}
		return 0, r.classify(err)
	}

	return id, nil
}

// List returns every stored credential ordered by priority, then id.
func (r *credentialRepository) List(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.List").Msg("error selecting credentials")
		if isUnavailable(r.db.errorClassificator, err) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0)
	for rows.Next() {
		var (
			cred     models.Credential
			provider string
		)
		if err = rows.Scan(
			&cred.ID,
			&provider,
			&cred.RefreshToken,
			&cred.ClientID,
			&cred.ClientSecret,
			&cred.Fingerprint,
			&cred.Priority,
			&cred.Region,
			&cred.Disabled,
			&cred.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*credentialRepository.List").Msg("error scanning credential")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		cred.Provider = models.Provider(provider)
		credentials = append(credentials, cred)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.List").Msg("error iterating credentials")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// SetPriority updates the priority of credential id.
func (r *credentialRepository) SetPriority(ctx context.Context, id int64, priority int) error {
	query, args, err := buildUpdatePriorityQuery(r.db.builder, id, priority)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*credentialRepository.SetPriority", query, args)
}

// SetDisabled flips the disabled flag of credential id.
func (r *credentialRepository) SetDisabled(ctx context.Context, id int64, disabled bool) error {
	query, args, err := buildUpdateDisabledQuery(r.db.builder, id, disabled)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*credentialRepository.SetDisabled", query, args)
}

// DeleteDisabled removes all disabled credentials.
func (r *credentialRepository) DeleteDisabled(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDisabledQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteDisabled").Msg("error deleting credentials")
		return nil, r.classify(err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.Sort(ids)
	return ids, nil
}

// Ping implements [CredentialRepository].
func (r *credentialRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *credentialRepository) execUpdate(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating credential")
		return r.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// classify maps a driver error from a write onto the package sentinels.
func (r *credentialRepository) classify(err error) error {
	switch {
	case r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrCredentialAlreadyExists, err)
	case isUnavailable(r.db.errorClassificator, err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

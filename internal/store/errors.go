package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialAlreadyExists is returned when a credential with the same
	// refresh token fingerprint is already stored.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when an update targets a credential
	// id that does not exist.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrStoreUnavailable is returned when the database cannot be reached,
	// the connection is lost mid-operation, or the caller's context ends
	// before the operation completes.
	ErrStoreUnavailable = errors.New("credential store is unavailable")

	// ErrCredentialNotSaved is returned when an INSERT completes without
	// error but yields no identifier.
	ErrCredentialNotSaved = errors.New("credential was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan credential row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan credential rows")

	// ErrUnsupportedDSN is returned when the configured DSN is empty.
	ErrUnsupportedDSN = errors.New("database dsn is empty")
)

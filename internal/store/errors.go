package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotExists is returned when a snapshot with the same id is
	// already stored.
	ErrSnapshotExists = errors.New("snapshot already exists")

	// ErrSnapshotNotFound is returned when no snapshot matches the given id.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrTemporary wraps driver errors classified as [Retryable].
	ErrTemporary = errors.New("temporary database error")

	// ErrUnsupportedDSN is returned when the DSN names neither a file nor a
	// postgres URL.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan snapshot rows")

	// ErrEncodingPrompt is returned when a prompt cannot be serialised into
	// or out of its stored payload.
	ErrEncodingPrompt = errors.New("failed to encode prompt payload")
)

package store

import (
	"errors"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match a document
	// produces an empty result, or an update/delete affects no row.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidDocument is returned when a write is rejected by a schema
	// constraint (unique, check, not-null, foreign key). The concrete error
	// is a [*DocumentError] carrying a client-facing message.
	ErrInvalidDocument = errors.New("invalid document")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// DocumentError describes a write rejected by a schema constraint.
// It matches [ErrInvalidDocument] under [errors.Is].
type DocumentError struct {
	// Message is safe to show to the client.
	Message string
	Err     error
}

func (e *DocumentError) Error() string {
	return e.Message
}

func (e *DocumentError) Unwrap() []error {
	return []error{ErrInvalidDocument, e.Err}
}

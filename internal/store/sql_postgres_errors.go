package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repositories whether a failed operation is the client's fault,
// worth retrying, or neither.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, syntax
	// errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// InvalidDocument indicates an integrity constraint violation: the
	// written document itself is unacceptable.
	InvalidDocument
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Retryable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 40 — transaction rollback, serialization failure, deadlock (40000, 40001, 40P01)
//   - Class 57 — cannot connect now (57P03)
//
// InvalidDocument codes:
//   - Class 23 — integrity constraint violations
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable

	// Class 23 — integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation:
		return InvalidDocument
	}

	return NonRetryable
}

// constraintMessages holds the client-facing message of every named
// constraint declared by the migrations.
var constraintMessages = map[string]string{
	"students_google_id_key":               "Student already exists",
	"students_field_of_study_check":        "Invalid field of study",
	"agencies_email_key":                   "Email already in use",
	"agencies_agency_name_key":             "Agency name already in use",
	"agencies_vat_code_key":                "VAT code already in use",
	"agencies_approval_status_check":       "Invalid approval status",
	"secretaries_username_key":             "Username already in use",
	"secretaries_username_check":           "Username must be between 5 and 64 characters",
	"job_offers_title_check":               "Title must be between 5 and 32 characters",
	"job_offers_description_check":         "Description must be between 50 and 3000 characters",
	"job_offers_field_of_study_check":      "Invalid field of study",
	"job_offers_number_of_positions_check": "Number of positions must be between 1 and 10",
	"job_applications_message_check":       "Message must be between 1 and 3000 characters",
}

// newDocumentError builds the [DocumentError] for a constraint violation.
func newDocumentError(pgErr *pgconn.PgError) *DocumentError {
	if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
		return &DocumentError{Message: msg, Err: pgErr}
	}

	var msg string
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		msg = "Document already exists"
	case pgerrcode.NotNullViolation:
		msg = fmt.Sprintf("Missing %s", pgErr.ColumnName)
	case pgerrcode.ForeignKeyViolation:
		msg = "Referenced document doesn't exist"
	default:
		msg = "Invalid document"
	}

	return &DocumentError{Message: msg, Err: pgErr}
}

// wrapError translates driver errors into the store's error taxonomy:
// [ErrNotFound] for empty results, [*DocumentError] for constraint
// violations, and the error itself otherwise.
func (db *DB) wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if db.errorClassificator.Classify(err) == InvalidDocument {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return newDocumentError(pgErr)
		}
	}

	return err
}

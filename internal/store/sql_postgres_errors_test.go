package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure, ""), Retryable},
		{"deadlock wrapped", fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected, "")), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure, ""), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation, "x"), InvalidDocument},
		{"check violation", pgError(pgerrcode.CheckViolation, "x"), InvalidDocument},
		{"not null violation", pgError(pgerrcode.NotNullViolation, ""), InvalidDocument},
		{"foreign key violation", pgError(pgerrcode.ForeignKeyViolation, ""), InvalidDocument},
		{"syntax error", pgError(pgerrcode.SyntaxError, ""), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_wrapError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	assert.NoError(t, db.wrapError(nil))
	assert.ErrorIs(t, db.wrapError(sql.ErrNoRows), ErrNotFound)

	boom := errors.New("boom")
	assert.Same(t, boom, db.wrapError(boom))

	notNull := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "email"}
	err := db.wrapError(notNull)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Equal(t, "Missing email", err.Error())

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "email", pgErr.ColumnName)
}

func TestConstraintMessages_CoverNamedConstraints(t *testing.T) {
	for name, msg := range constraintMessages {
		err := newDocumentError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: name})
		assert.Equal(t, msg, err.Message, name)
	}
}

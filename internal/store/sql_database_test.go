package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const touchQuery = "UPDATE agencies SET updated_at = NOW()"

func touch(ctx context.Context) func(tx *sql.Tx) error {
	return func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, touchQuery)
		return err
	}
}

func TestDB_WithTx_Commit(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, db.WithTx(context.Background(), touch(context.Background())))
}

func TestDB_WithTx_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).WillReturnError(pgError(pgerrcode.SerializationFailure, ""))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, db.WithTx(context.Background(), touch(context.Background())))
}

func TestDB_WithTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestDB(t)

	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(touchQuery)).WillReturnError(pgError(pgerrcode.DeadlockDetected, ""))
		mock.ExpectRollback()
	}

	err := db.WithTx(context.Background(), touch(context.Background()))
	assert.Equal(t, Retryable, db.errorClassificator.Classify(err))
}

func TestDB_WithTx_DoesNotRetryOtherErrors(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	assert.Error(t, db.WithTx(context.Background(), touch(context.Background())))
}

func TestDB_WithTx_BeginError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := db.WithTx(context.Background(), touch(context.Background()))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestDB_WithTx_CommitError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit lost"))

	err := db.WithTx(context.Background(), touch(context.Background()))
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

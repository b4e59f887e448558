package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJobApplicationRepo(t *testing.T) (*jobApplicationRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &jobApplicationRepository{db: db, ids: fixedIDs("ja-1"), logger: logger.Nop()}, mock
}

func TestJobApplicationRepository_Create_WithoutOffer(t *testing.T) {
	repo, mock := newTestJobApplicationRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO job_applications .+ RETURNING created_at, updated_at`).
		WithArgs("ja-1", "s-1", "a-1", nil, "Hello").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	application := &models.JobApplication{StudentID: "s-1", AgencyID: "a-1", Message: "Hello"}
	require.NoError(t, repo.Create(context.Background(), application))
	assert.Equal(t, "ja-1", application.ID)
}

func TestJobApplicationRepository_Create_WithOffer(t *testing.T) {
	repo, mock := newTestJobApplicationRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO job_applications`).
		WithArgs("ja-1", "s-1", "a-1", "o-1", "Hello").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	application := &models.JobApplication{StudentID: "s-1", AgencyID: "a-1", JobOfferID: "o-1", Message: "Hello"}
	require.NoError(t, repo.Create(context.Background(), application))
}

func TestJobApplicationRepository_FindOne(t *testing.T) {
	repo, mock := newTestJobApplicationRepo(t)
	now := time.Now().UTC()

	cols := []string{"id", "student_id", "agency_id", "job_offer_id", "message", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT .+ FROM job_applications WHERE .*job_applications\.id = \$1 AND job_applications\.student_id = \$2`).
		WithArgs("ja-1", "s-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("ja-1", "s-1", "a-1", "", "Hello", now, now))

	application, err := repo.FindOne(context.Background(), JobApplicationFilter{ID: "ja-1", StudentID: "s-1"}, FindOptions{})
	require.NoError(t, err)
	assert.Empty(t, application.JobOfferID)
}

func TestJobApplicationRepository_Delete(t *testing.T) {
	repo, mock := newTestJobApplicationRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_applications WHERE id = $1")).
		WithArgs("ja-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "ja-1"))
}

func TestJobApplicationRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestJobApplicationRepo(t)

	mock.ExpectExec(`DELETE FROM job_applications`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "ja-404"), ErrNotFound)
}

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgencyRepo(t *testing.T) (*agencyRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &agencyRepository{db: db, ids: fixedIDs("a-1"), logger: logger.Nop()}, mock
}

var agencyPublicColumns = []string{
	"id", "email", "website_url", "phone_number", "agency_name", "agency_description", "agency_address",
	"vat_code", "logo_url", "banner_url", "job_offers", "created_at", "updated_at",
}

var jobOfferColumnNames = []string{
	"id", "agency_id", "title", "description", "field_of_study", "expiry_date", "must_have_diploma",
	"number_of_positions", "created_at", "updated_at",
}

func TestAgencyRepository_Find_PublicProjection(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(agencyPublicColumns).
		AddRow("a-1", "hr@acme.it", "https://acme.it", "+390212345678", "Acme", "desc", "Via Roma 1",
			"IT01234567890", "", "", "o-1", now, now).
		AddRow("a-2", "jobs@beta.it", "https://beta.it", "+390298765432", "Beta", "desc", "Via Po 2",
			"IT09876543210", "", "", "", now, now)

	mock.ExpectQuery(`SELECT .+ FROM agencies WHERE .*agencies\.approval_status = \$1.* LIMIT 5 OFFSET 10`).
		WithArgs("approved").
		WillReturnRows(rows)

	agencies, err := repo.Find(context.Background(),
		AgencyFilter{ApprovalStatus: models.ApprovalApproved},
		FindOptions{Skip: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, agencies, 2)

	assert.Equal(t, []string{"o-1"}, agencies[0].JobOffers)
	assert.Equal(t, []string{}, agencies[1].JobOffers)
	assert.Empty(t, agencies[0].ResponsibleFirstName)
	assert.Empty(t, agencies[0].ApprovalStatus)
	assert.Empty(t, agencies[0].HashedPassword)
}

func TestAgencyRepository_FindOne_WithPassword(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	now := time.Now().UTC()

	cols := []string{
		"id", "email", "hashed_password", "website_url", "phone_number", "agency_name", "agency_description",
		"agency_address", "vat_code", "logo_url", "banner_url", "job_offers", "created_at", "updated_at",
	}
	rows := sqlmock.NewRows(cols).AddRow("a-1", "hr@acme.it", "$2a$10$hash", "https://acme.it", "+390212345678",
		"Acme", "desc", "Via Roma 1", "IT01234567890", "", "", "", now, now)

	mock.ExpectQuery(`SELECT .*agencies\.hashed_password.* FROM agencies WHERE .*agencies\.email = \$1`).
		WithArgs("hr@acme.it").
		WillReturnRows(rows)

	agency, err := repo.FindOne(context.Background(), AgencyFilter{Email: "hr@acme.it"}, FindOptions{ShowHashedPassword: true})
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", agency.HashedPassword)
}

func TestAgencyRepository_FindDetails_PopulatesOffers(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM agencies`).
		WithArgs("a-1").
		WillReturnRows(sqlmock.NewRows(agencyPublicColumns).AddRow("a-1", "hr@acme.it", "https://acme.it",
			"+390212345678", "Acme", "desc", "Via Roma 1", "IT01234567890", "", "", "o-1", now, now))
	mock.ExpectQuery(`SELECT .+ FROM job_offers WHERE job_offers\.agency_id = \$1`).
		WithArgs("a-1").
		WillReturnRows(sqlmock.NewRows(jobOfferColumnNames).AddRow("o-1", "a-1", "Junior dev", "long description",
			"it", now.AddDate(0, 1, 0), false, int64(2), now, now))

	details, err := repo.FindDetails(context.Background(), AgencyFilter{ID: "a-1"}, FindOptions{PopulateJobOffers: true})
	require.NoError(t, err)

	require.Len(t, details.JobOffers, 1)
	assert.Equal(t, "Junior dev", details.JobOffers[0].Title)
	assert.Equal(t, 2, details.JobOffers[0].NumberOfPositions)
	assert.Nil(t, details.JobApplications, "applications are personal data")
}

func TestAgencyRepository_FindDetails_NotFound(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM agencies`).
		WillReturnRows(sqlmock.NewRows(agencyPublicColumns))

	_, err := repo.FindDetails(context.Background(), AgencyFilter{ID: "nope"}, FindOptions{PopulateJobOffers: true})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgencyRepository_Create_DefaultsToWaiting(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO agencies .+ RETURNING created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	agency := &models.Agency{AgencyName: "Acme"}
	require.NoError(t, repo.Create(context.Background(), agency))

	assert.Equal(t, "a-1", agency.ID)
	assert.Equal(t, models.ApprovalWaiting, agency.ApprovalStatus)
	assert.NotNil(t, agency.JobOffers)
}

func TestAgencyRepository_Create_ConstraintMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"duplicate email", pgError(pgerrcode.UniqueViolation, "agencies_email_key"), "Email already in use"},
		{"duplicate vat", pgError(pgerrcode.UniqueViolation, "agencies_vat_code_key"), "VAT code already in use"},
		{"unnamed unique", pgError(pgerrcode.UniqueViolation, ""), "Document already exists"},
		{"bad status", pgError(pgerrcode.CheckViolation, "agencies_approval_status_check"), "Invalid approval status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAgencyRepo(t)
			mock.ExpectQuery(`INSERT INTO agencies`).WillReturnError(tt.err)

			err := repo.Create(context.Background(), &models.Agency{})
			require.ErrorIs(t, err, ErrInvalidDocument)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestAgencyRepository_Update_KeepsPasswordWhenNotLoaded(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE agencies SET .*banner_url = \$12, updated_at = NOW\(\) WHERE id = \$13 RETURNING updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	agency := &models.Agency{ID: "a-1", ApprovalStatus: models.ApprovalApproved, ApprovalDate: &now}
	require.NoError(t, repo.Update(context.Background(), agency))
	assert.Equal(t, now, agency.UpdatedAt)
}

func TestAgencyRepository_Update_WritesNewPassword(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE agencies SET .*hashed_password = \$13, updated_at = NOW\(\) WHERE id = \$14`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	agency := &models.Agency{ID: "a-1", HashedPassword: "$2a$10$new", ApprovalStatus: models.ApprovalWaiting}
	require.NoError(t, repo.Update(context.Background(), agency))
}

func TestAgencyRepository_Update_LeavesApprovalUntouched(t *testing.T) {
	var executed string
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(func(_, actual string) error {
		executed = actual
		return nil
	})))
	require.NoError(t, err)
	defer conn.Close()

	db := &DB{DB: conn, errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}
	repo := &agencyRepository{db: db, ids: fixedIDs("a-1"), logger: logger.Nop()}

	mock.ExpectQuery("UPDATE agencies").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	approvedAt := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	agency := &models.Agency{
		ID:                "a-1",
		AgencyDescription: "New description",
		ApprovalStatus:    models.ApprovalWaiting,
		ApprovalDate:      &approvedAt,
	}
	require.NoError(t, repo.Update(context.Background(), agency))

	assert.Contains(t, executed, "agency_description = $")
	assert.NotContains(t, executed, "approval_status")
	assert.NotContains(t, executed, "approval_date")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_UpdateApproval(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE agencies SET approval_status = $1, approval_date = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("approved", at, "a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE agencies SET approval_status`).
		WithArgs("rejected", at, "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateApproval(context.Background(), "a-1", models.ApprovalApproved, at))
	assert.ErrorIs(t, repo.UpdateApproval(context.Background(), "gone", models.ApprovalRejected, at), ErrNotFound)
}

func TestAgencyRepository_Delete_Cascade(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM job_applications WHERE (agency_id = $1 OR job_offer_id IN (SELECT id FROM job_offers WHERE agency_id = $2))")).
		WithArgs("a-1", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_offers WHERE agency_id = $1")).
		WithArgs("a-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM agencies WHERE id = $1")).
		WithArgs("a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "a-1"))
}

func TestAgencyRepository_Delete_FailureRollsBack(t *testing.T) {
	repo, mock := newTestAgencyRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM job_applications`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM job_offers`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "a-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type stubProber map[string]bool

func (p stubProber) Exists(_ context.Context, rawURL string) bool {
	return p[rawURL]
}

type stubAgencies struct {
	agencies map[string]*models.Agency
	err      error
	calls    int
}

func (s *stubAgencies) FindOne(_ context.Context, filter store.AgencyFilter, _ store.FindOptions) (*models.Agency, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.agencies[filter.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func nowFunc() time.Time { return fixedNow }

func TestFiscalCodeOfAge(t *testing.T) {
	check := FiscalCodeOfAge(16, app.MsgStudentTooYoung, nowFunc)
	ctx := context.Background()

	assert.NoError(t, check(ctx, "RSSMRA10A01F257N"))
	assert.NoError(t, check(ctx, "RSSMRA85T10A562S"))

	err := check(ctx, "RSSMRA15A01F257S")
	require.Error(t, err)
	assert.Equal(t, app.MsgStudentTooYoung, err.Error())

	err = check(ctx, "RSSMRA85T10A562X")
	require.Error(t, err)
	assert.Equal(t, app.MsgInvalidFiscalNumber, err.Error())

	err = check(ctx, 42)
	require.Error(t, err)
	assert.Equal(t, app.MsgInvalidFiscalNumber, err.Error())
}

func TestFiscalCodeOfAge_Responsible(t *testing.T) {
	check := FiscalCodeOfAge(18, app.MsgResponsibleTooYoung, nowFunc)

	err := check(context.Background(), "VRDGPP09A01F257X")
	require.Error(t, err)
	assert.Equal(t, app.MsgResponsibleTooYoung, err.Error())
	assert.NoError(t, check(context.Background(), "VRDGPP90A01F257I"))
}

func TestPhoneNumber(t *testing.T) {
	check := PhoneNumber()

	assert.NoError(t, check(context.Background(), "3924133359"))
	assert.NoError(t, check(context.Background(), "+39 392 413 3359"))

	err := check(context.Background(), "123")
	require.Error(t, err)
	assert.Equal(t, app.MsgInvalidPhoneNumber, err.Error())
	assert.Error(t, check(context.Background(), "not a number"))
}

func TestPhoneE164(t *testing.T) {
	assert.Equal(t, "+393924133359", PhoneE164("3924133359"))
	assert.Equal(t, "+393924133359", PhoneE164("+39 392 413 3359"))
	assert.Equal(t, "123", PhoneE164("123"))
	assert.Equal(t, 5, PhoneE164(5))
}

func TestStringSanitizers(t *testing.T) {
	assert.Equal(t, "abc", TrimSpace("  abc "))
	assert.Equal(t, "ABC", UpperCase(" abc "))
	assert.Equal(t, "a@b.it", LowerCase(" A@B.it"))
	assert.Equal(t, true, TrimSpace(true))
}

func TestURLExists(t *testing.T) {
	check := URLExists(stubProber{"https://ok.example": true}, app.MsgWebsiteURLDoesntExist)

	assert.NoError(t, check(context.Background(), "https://ok.example"))
	err := check(context.Background(), "https://missing.example")
	require.Error(t, err)
	assert.Equal(t, app.MsgWebsiteURLDoesntExist, err.Error())

	assert.Error(t, URLExists(nil, "nope")(context.Background(), "https://ok.example"))
}

func TestID(t *testing.T) {
	check := ID(app.MsgInvalidID)

	assert.NoError(t, check(context.Background(), "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8a"))
	err := check(context.Background(), "not-an-id")
	require.Error(t, err)
	assert.Equal(t, app.MsgInvalidID, err.Error())
	assert.Error(t, check(context.Background(), 7))
}

func TestExpiryWithin(t *testing.T) {
	check := ExpiryWithin(12, nowFunc)
	ctx := context.Background()

	tests := []struct {
		name    string
		value   any
		wantMsg string
	}{
		{name: "next month", value: fixedNow.AddDate(0, 1, 0).Format(time.RFC3339)},
		{name: "exactly one year", value: fixedNow.AddDate(1, 0, 0).Format(time.RFC3339)},
		{name: "one year and a day", value: fixedNow.AddDate(1, 0, 1).Format(time.RFC3339), wantMsg: app.MsgExpiryDateTooFar},
		{name: "yesterday", value: fixedNow.AddDate(0, 0, -1).Format(time.RFC3339), wantMsg: app.MsgExpiryDateInPast},
		{name: "not a date", value: "tomorrow", wantMsg: app.MsgExpiryDateInvalid},
		{name: "date only", value: "2027-01-15"},
		{name: "date only too far", value: "2027-10-19", wantMsg: app.MsgExpiryDateTooFar},
		{name: "date only in the past", value: "2026-10-18", wantMsg: app.MsgExpiryDateInPast},
		{name: "malformed date", value: "2027-13-01", wantMsg: app.MsgExpiryDateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := check(ctx, tt.value)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestDateRFC3339(t *testing.T) {
	assert.Equal(t, "2027-01-15T00:00:00Z", DateRFC3339("2027-01-15"))
	assert.Equal(t, "2027-01-15T09:30:00+01:00", DateRFC3339("2027-01-15T09:30:00+01:00"))
	assert.Equal(t, "soon", DateRFC3339("soon"))
}

func TestAgencyApproved(t *testing.T) {
	const (
		approvedID = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8a"
		waitingID  = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8b"
		missingID  = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8c"
	)
	agencies := &stubAgencies{agencies: map[string]*models.Agency{
		approvedID: {ID: approvedID, ApprovalStatus: models.ApprovalApproved},
		waitingID:  {ID: waitingID, ApprovalStatus: models.ApprovalWaiting},
	}}
	check := AgencyApproved(agencies)
	ctx := context.Background()

	assert.NoError(t, check(ctx, approvedID))

	for _, id := range []string{waitingID, missingID} {
		err := check(ctx, id)
		require.Error(t, err)
		assert.Equal(t, app.MsgAgencyMustBeApproved, err.Error())
	}

	err := check(ctx, "bad")
	require.Error(t, err)
	assert.Equal(t, app.MsgAgencyIDInvalid, err.Error())
	assert.Equal(t, 3, agencies.calls)

	failing := &stubAgencies{err: errors.New("connection refused")}
	err = AgencyApproved(failing)(ctx, approvedID)
	require.Error(t, err)
	assert.Equal(t, app.MsgAgencyMustBeApproved, err.Error())
}

func TestEmailSuffix(t *testing.T) {
	check := EmailSuffix("@school.it")

	assert.NoError(t, check(context.Background(), "mario.rossi@SCHOOL.it"))
	err := check(context.Background(), "mario@gmail.com")
	require.Error(t, err)
	assert.Equal(t, app.MsgInvalidStudentEmail, err.Error())

	assert.NoError(t, EmailSuffix("")(context.Background(), "mario@gmail.com"))
}

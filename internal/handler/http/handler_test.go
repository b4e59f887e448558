package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/mock"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

const (
	studentCookie = "student_session"
	agencyCookie  = "agency_session"
	signupCookie  = "signup_session"

	agencyID    = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8a"
	studentID   = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8c"
	jobOfferID  = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8d"
	secretaryID = "0195f3a2-7c1e-7b52-9a4d-3c2f1e0d9b8e"
)

var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	sessions        *mock.MockSessionService
	agencies        *mock.MockAgencyService
	students        *mock.MockStudentService
	secretaries     *mock.MockSecretaryService
	approval        *mock.MockApprovalService
	moderation      *mock.MockModerationService
	jobOffers       *mock.MockJobOfferService
	jobApplications *mock.MockJobApplicationService
	appInfo         *mock.MockAppInfoService

	agencyRepo *mock.MockAgencyRepository
	prober     *mock.MockURLProber
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			StudentAuthCookieName:  studentCookie,
			AgencyAuthCookieName:   agencyCookie,
			SignupCookieName:       signupCookie,
			AuthCookieDurationDays: 14,
			SignupURL:              "https://client.example/signup",
			ClientLoginRedirectURL: "https://client.example/dashboard",
		},
	}
}

func newTestHandler(t *testing.T, limiter RateLimiter) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		sessions:        mock.NewMockSessionService(ctrl),
		agencies:        mock.NewMockAgencyService(ctrl),
		students:        mock.NewMockStudentService(ctrl),
		secretaries:     mock.NewMockSecretaryService(ctrl),
		approval:        mock.NewMockApprovalService(ctrl),
		moderation:      mock.NewMockModerationService(ctrl),
		jobOffers:       mock.NewMockJobOfferService(ctrl),
		jobApplications: mock.NewMockJobApplicationService(ctrl),
		appInfo:         mock.NewMockAppInfoService(ctrl),
		agencyRepo:      mock.NewMockAgencyRepository(ctrl),
		prober:          mock.NewMockURLProber(ctrl),
	}

	services := &service.Services{
		Sessions:        deps.sessions,
		Agencies:        deps.agencies,
		Students:        deps.students,
		Secretaries:     deps.secretaries,
		Approval:        deps.approval,
		Moderation:      deps.moderation,
		JobOffers:       deps.jobOffers,
		JobApplications: deps.jobApplications,
		AppInfo:         deps.appInfo,
	}
	schemas := validators.NewSchemas(validators.Dependencies{
		Prober:      deps.prober,
		Agencies:    deps.agencyRepo,
		EmailSuffix: "@school.it",
		Now:         func() time.Time { return fixedNow },
	})

	return NewHandler(services, schemas, limiter, testConfig(), logger.Nop()), deps
}

// newTestRouter returns the full router of a handler without rate limits.
func newTestRouter(t *testing.T) (http.Handler, testDeps) {
	t.Helper()
	h, deps := newTestHandler(t, nil)
	return h.Init(), deps
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withCookie(req *http.Request, name, value string) *http.Request {
	req.AddCookie(&http.Cookie{Name: name, Value: value})
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Err string `json:"err"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Err
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// expectAgencySession makes the agency cookie "agency-token" authenticate agency.
func expectAgencySession(deps testDeps, agency *models.Agency) {
	deps.sessions.EXPECT().Verify(gomock.Any(), models.ActorAgency, "agency-token").Return(agency.ID, nil)
	deps.agencies.EXPECT().Get(gomock.Any(), agency.ID).Return(agency, nil)
}

// expectStudentSession makes the student cookie "student-token" authenticate student.
func expectStudentSession(deps testDeps, student *models.Student) {
	deps.sessions.EXPECT().Verify(gomock.Any(), models.ActorStudent, "student-token").Return(student.ID, nil)
	deps.students.EXPECT().Get(gomock.Any(), student.ID).Return(student, nil)
}

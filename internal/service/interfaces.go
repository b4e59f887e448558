// Package service implements the business operations of the job board on
// top of the repositories and outbound adapters.
package service

import (
	"context"

	"github.com/MKhiriev/occupa-lo-studente/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService issues and verifies stateless session tokens. A token
// issued for one actor kind never verifies as another.
type SessionService interface {
	Issue(ctx context.Context, kind models.ActorKind, actorID string) (models.Token, error)
	// Verify returns the actor id carried by token or ErrInvalidToken.
	Verify(ctx context.Context, kind models.ActorKind, token string) (string, error)
	IssueSignup(ctx context.Context, profile models.GoogleProfile) (models.Token, error)
	VerifySignup(ctx context.Context, token string) (models.GoogleProfile, error)
}

type AgencyService interface {
	Register(ctx context.Context, req models.CreateAgencyRequest, remoteIP string) (*models.Agency, error)
	Login(ctx context.Context, req models.AgencyLoginRequest) (*models.Agency, error)
	// Get loads the agency behind a session. Missing agencies yield ErrActorNotFound.
	Get(ctx context.Context, id string) (*models.Agency, error)
	Details(ctx context.Context, id string) (*models.AgencyDetails, error)
	Update(ctx context.Context, agency *models.Agency, req models.UpdateAgencyRequest) (*models.Agency, error)
	Delete(ctx context.Context, id string) error
	ListApproved(ctx context.Context, query models.ListQuery) ([]models.Agency, error)
	GetApproved(ctx context.Context, id string) (*models.AgencyDetails, error)
}

type StudentService interface {
	AuthCodeURL(state string) string
	// SignIn exchanges a Google authorization code. It returns a nil student
	// when the profile has no account yet.
	SignIn(ctx context.Context, code string) (*models.Student, models.GoogleProfile, error)
	Create(ctx context.Context, profile models.GoogleProfile, req models.CreateStudentRequest) (*models.Student, error)
	TestAuth(ctx context.Context, req models.TestAuthRequest) (*models.Student, error)
	// Get loads the student behind a session. Missing students yield ErrActorNotFound.
	Get(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student, req models.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

type SecretaryService interface {
	// Authenticate checks the credentials and records the login. Unknown
	// usernames and wrong passwords both yield ErrWrongCredentials.
	Authenticate(ctx context.Context, username, password, ip string) (*models.Secretary, error)
	RotatePassword(ctx context.Context, secretary *models.Secretary) (string, error)
	// Provision creates a secretary account. An empty password is replaced
	// by a generated one, which is returned.
	Provision(ctx context.Context, username, password string) (*models.Secretary, string, error)
}

// ApprovalService moves agencies through waiting, approved and rejected.
type ApprovalService interface {
	Transition(ctx context.Context, agencyID string, action models.ApprovalAction) (*models.Agency, error)
}

type ModerationService interface {
	DeleteAgency(ctx context.Context, agencyID string, notify bool) error
	DeleteJobOffer(ctx context.Context, jobOfferID string, notify bool) error
}

type JobOfferService interface {
	Create(ctx context.Context, agency *models.Agency, req models.CreateJobOfferRequest) (*models.JobOffer, error)
	Get(ctx context.Context, id string) (*models.JobOffer, error)
	Update(ctx context.Context, agencyID, id string, req models.UpdateJobOfferRequest) (*models.JobOffer, error)
	Delete(ctx context.Context, agencyID, id string) error
	// ListOpen returns offers of approved agencies that have not expired.
	ListOpen(ctx context.Context, query models.ListQuery) ([]models.JobOffer, error)
}

type JobApplicationService interface {
	Apply(ctx context.Context, student *models.Student, req models.CreateJobApplicationRequest) (*models.JobApplication, error)
	Withdraw(ctx context.Context, studentID, id string) error
}

// NotificationService sends best-effort emails. Failures never reach the
// caller.
type NotificationService interface {
	AgencyRegistered(ctx context.Context, agency *models.Agency)
	AgencyStatusChanged(ctx context.Context, agency *models.Agency)
	AgencyDeleted(ctx context.Context, agency *models.Agency)
	JobOfferDeleted(ctx context.Context, agency *models.Agency, offer *models.JobOffer)
}

// MailQueue accepts outgoing mail for asynchronous delivery.
type MailQueue interface {
	Enqueue(mail models.Mail) bool
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StudentRepository persists students. Deleting a student also removes
// its job applications.
type StudentRepository interface {
	FindOne(ctx context.Context, filter StudentFilter, opts FindOptions) (*models.Student, error)
	Find(ctx context.Context, filter StudentFilter, opts FindOptions) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// AgencyRepository persists agencies. Deleting an agency also removes its
// job offers and every application addressed to it or to its offers.
type AgencyRepository interface {
	FindOne(ctx context.Context, filter AgencyFilter, opts FindOptions) (*models.Agency, error)
	Find(ctx context.Context, filter AgencyFilter, opts FindOptions) ([]models.Agency, error)
	// FindDetails loads one agency and, when opts.PopulateJobOffers is set,
	// its offers and received applications.
	FindDetails(ctx context.Context, filter AgencyFilter, opts FindOptions) (*models.AgencyDetails, error)
	Create(ctx context.Context, agency *models.Agency) error
	Update(ctx context.Context, agency *models.Agency) error
	// UpdateApproval sets the approval status and date and nothing else.
	UpdateApproval(ctx context.Context, id string, status models.ApprovalStatus, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// SecretaryRepository persists secretaries and their login history.
type SecretaryRepository interface {
	FindOne(ctx context.Context, filter SecretaryFilter, opts FindOptions) (*models.Secretary, error)
	Create(ctx context.Context, secretary *models.Secretary) error
	Update(ctx context.Context, secretary *models.Secretary) error
	// SaveLogin appends ip to the login history and sets the last login date.
	SaveLogin(ctx context.Context, secretaryID, ip string, at time.Time) error
}

// JobOfferRepository persists job offers. Deleting an offer also removes
// the applications referencing it.
type JobOfferRepository interface {
	FindOne(ctx context.Context, filter JobOfferFilter, opts FindOptions) (*models.JobOffer, error)
	Find(ctx context.Context, filter JobOfferFilter, opts FindOptions) ([]models.JobOffer, error)
	Create(ctx context.Context, offer *models.JobOffer) error
	Update(ctx context.Context, offer *models.JobOffer) error
	Delete(ctx context.Context, id string) error
}

// JobApplicationRepository persists job applications.
type JobApplicationRepository interface {
	FindOne(ctx context.Context, filter JobApplicationFilter, opts FindOptions) (*models.JobApplication, error)
	Find(ctx context.Context, filter JobApplicationFilter, opts FindOptions) ([]models.JobApplication, error)
	Create(ctx context.Context, application *models.JobApplication) error
	Delete(ctx context.Context, id string) error
}

type idGenerator interface {
	Generate() string
}

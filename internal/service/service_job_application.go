package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type jobApplicationService struct {
	applications store.JobApplicationRepository
	agencies     store.AgencyRepository
	jobOffers    store.JobOfferRepository
	now          func() time.Time

	logger *logger.Logger
}

func NewJobApplicationService(
	applications store.JobApplicationRepository,
	agencies store.AgencyRepository,
	jobOffers store.JobOfferRepository,
	now func() time.Time,
	logger *logger.Logger,
) JobApplicationService {
	return &jobApplicationService{
		applications: applications,
		agencies:     agencies,
		jobOffers:    jobOffers,
		now:          now,
		logger:       logger,
	}
}

// Apply sends the student's application to an approved agency, optionally
// for one of its open offers.
func (s *jobApplicationService) Apply(ctx context.Context, student *models.Student, req models.CreateJobApplicationRequest) (*models.JobApplication, error) {
	agency, err := s.agencies.FindOne(ctx, store.AgencyFilter{ID: req.AgencyID}, store.Private())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading agency: %w", err)
	}
	if !agency.IsApproved() {
		return nil, ErrAgencyNotApproved
	}

	if req.JobOfferID != "" {
		offer, err := s.jobOffers.FindOne(ctx, store.JobOfferFilter{ID: req.JobOfferID}, store.FindOptions{})
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrJobOfferNotFound, err)
		}
		if err != nil {
			return nil, fmt.Errorf("error loading job offer: %w", err)
		}
		if offer.AgencyID != agency.ID {
			return nil, ErrJobOfferNotOfAgency
		}
		if offer.IsExpired(s.now()) {
			return nil, ErrJobOfferExpired
		}
	}

	application := &models.JobApplication{
		StudentID:  student.ID,
		AgencyID:   agency.ID,
		JobOfferID: req.JobOfferID,
		Message:    req.Message,
	}
	if err = s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("error creating job application: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("job_application_id", application.ID).
		Str("agency_id", agency.ID).
		Msg("job application sent")

	return application, nil
}

// Withdraw deletes an application of the student.
func (s *jobApplicationService) Withdraw(ctx context.Context, studentID, id string) error {
	application, err := s.applications.FindOne(ctx, store.JobApplicationFilter{ID: id}, store.FindOptions{})
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrJobApplicationNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("error loading job application: %w", err)
	}
	if application.StudentID != studentID {
		return ErrForbidden
	}

	if err = s.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrJobApplicationNotFound, err)
		}
		return fmt.Errorf("error deleting job application: %w", err)
	}

	return nil
}

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

type jobOfferService struct {
	jobOffers store.JobOfferRepository
	now       func() time.Time

	logger *logger.Logger
}

func NewJobOfferService(jobOffers store.JobOfferRepository, now func() time.Time, logger *logger.Logger) JobOfferService {
	return &jobOfferService{
		jobOffers: jobOffers,
		now:       now,
		logger:    logger,
	}
}

// Create publishes an offer for the agency. Agencies that are not approved
// are refused even when the request passed validation.
func (s *jobOfferService) Create(ctx context.Context, agency *models.Agency, req models.CreateJobOfferRequest) (*models.JobOffer, error) {
	if !agency.IsApproved() {
		return nil, ErrAgencyNotApproved
	}

	offer := &models.JobOffer{
		AgencyID:          agency.ID,
		Title:             req.Title,
		Description:       req.Description,
		FieldOfStudy:      req.FieldOfStudy,
		ExpiryDate:        req.ExpiryDate,
		MustHaveDiploma:   req.MustHaveDiploma,
		NumberOfPositions: req.NumberOfPositions,
	}
	if err := s.jobOffers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("error creating job offer: %w", err)
	}

	logger.FromContext(ctx).Info().Str("job_offer_id", offer.ID).Str("agency_id", agency.ID).Msg("job offer created")
	return offer, nil
}

// Get returns the offer when its agency is approved. Offers of waiting or
// rejected agencies are reported missing, as in the student listings.
func (s *jobOfferService) Get(ctx context.Context, id string) (*models.JobOffer, error) {
	offer, err := s.jobOffers.FindOne(ctx, store.JobOfferFilter{ID: id, ApprovedAgenciesOnly: true}, store.FindOptions{})
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrJobOfferNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading job offer: %w", err)
	}

	return offer, nil
}

func (s *jobOfferService) Update(ctx context.Context, agencyID, id string, req models.UpdateJobOfferRequest) (*models.JobOffer, error) {
	offer, err := s.owned(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	setString(&offer.Title, req.Title)
	setString(&offer.Description, req.Description)
	if req.FieldOfStudy != nil {
		offer.FieldOfStudy = *req.FieldOfStudy
	}
	if req.ExpiryDate != nil {
		offer.ExpiryDate = *req.ExpiryDate
	}
	if req.MustHaveDiploma != nil {
		offer.MustHaveDiploma = *req.MustHaveDiploma
	}
	if req.NumberOfPositions != nil {
		offer.NumberOfPositions = *req.NumberOfPositions
	}

	if err = s.jobOffers.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("error updating job offer: %w", err)
	}

	return offer, nil
}

// Delete removes an offer of the agency and the applications to it.
func (s *jobOfferService) Delete(ctx context.Context, agencyID, id string) error {
	if _, err := s.owned(ctx, agencyID, id); err != nil {
		return err
	}

	if err := s.jobOffers.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrJobOfferNotFound, err)
		}
		return fmt.Errorf("error deleting job offer: %w", err)
	}

	logger.FromContext(ctx).Info().Str("job_offer_id", id).Msg("job offer deleted")
	return nil
}

func (s *jobOfferService) ListOpen(ctx context.Context, query models.ListQuery) ([]models.JobOffer, error) {
	offers, err := s.jobOffers.Find(ctx, store.JobOfferFilter{
		FieldOfStudy:         query.FieldOfStudy,
		ApprovedAgenciesOnly: true,
		NotExpiredAt:         s.now(),
	}, store.FindOptions{Skip: query.Skip, Limit: query.Limit})
	if err != nil {
		return nil, fmt.Errorf("error listing job offers: %w", err)
	}

	return offers, nil
}

// owned loads the offer and checks that agencyID published it.
func (s *jobOfferService) owned(ctx context.Context, agencyID, id string) (*models.JobOffer, error) {
	offer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.AgencyID != agencyID {
		logger.FromContext(ctx).Info().Str("job_offer_id", id).Str("agency_id", agencyID).Msg("agency touched a job offer it does not own")
		return nil, ErrForbidden
	}

	return offer, nil
}

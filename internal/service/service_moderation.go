package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
)

// moderationService runs the secretary deletions. Notifications are sent
// only after the deletion succeeded.
type moderationService struct {
	agencies  store.AgencyRepository
	jobOffers store.JobOfferRepository
	notifier  NotificationService

	logger *logger.Logger
}

func NewModerationService(agencies store.AgencyRepository, jobOffers store.JobOfferRepository, notifier NotificationService, logger *logger.Logger) ModerationService {
	return &moderationService{
		agencies:  agencies,
		jobOffers: jobOffers,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *moderationService) DeleteAgency(ctx context.Context, agencyID string, notify bool) error {
	agency, err := s.agencies.FindOne(ctx, store.AgencyFilter{ID: agencyID}, store.Private())
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("error loading agency: %w", err)
	}

	if err = s.agencies.Delete(ctx, agency.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
		}
		return fmt.Errorf("error deleting agency: %w", err)
	}

	logger.FromContext(ctx).Info().Str("agency_id", agency.ID).Bool("notify", notify).Msg("agency deleted by secretary")
	if notify {
		s.notifier.AgencyDeleted(ctx, agency)
	}

	return nil
}

func (s *moderationService) DeleteJobOffer(ctx context.Context, jobOfferID string, notify bool) error {
	offer, err := s.jobOffers.FindOne(ctx, store.JobOfferFilter{ID: jobOfferID}, store.FindOptions{})
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrJobOfferNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("error loading job offer: %w", err)
	}

	if err = s.jobOffers.Delete(ctx, offer.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrJobOfferNotFound, err)
		}
		return fmt.Errorf("error deleting job offer: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().Str("job_offer_id", offer.ID).Bool("notify", notify).Msg("job offer deleted by secretary")
	if !notify {
		return nil
	}

	agency, err := s.agencies.FindOne(ctx, store.AgencyFilter{ID: offer.AgencyID}, store.Private())
	if err != nil {
		log.Err(err).Str("func", "*moderationService.DeleteJobOffer").Str("agency_id", offer.AgencyID).Msg("error loading agency to notify")
		return nil
	}
	s.notifier.JobOfferDeleted(ctx, agency, offer)

	return nil
}

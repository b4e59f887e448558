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

type approvalService struct {
	agencies store.AgencyRepository
	notifier NotificationService
	now      func() time.Time

	logger *logger.Logger
}

func NewApprovalService(agencies store.AgencyRepository, notifier NotificationService, now func() time.Time, logger *logger.Logger) ApprovalService {
	return &approvalService{
		agencies: agencies,
		notifier: notifier,
		now:      now,
		logger:   logger,
	}
}

// Transition applies the secretary decision to the agency and stamps the
// approval date. Repeating the current status changes nothing and sends no
// email.
func (s *approvalService) Transition(ctx context.Context, agencyID string, action models.ApprovalAction) (*models.Agency, error) {
	target, ok := action.TargetStatus()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidApproval, action)
	}

	agency, err := s.agencies.FindOne(ctx, store.AgencyFilter{ID: agencyID}, store.Private())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading agency: %w", err)
	}

	if agency.ApprovalStatus == target {
		return agency, nil
	}

	previous := agency.ApprovalStatus
	at := s.now()
	err = s.agencies.UpdateApproval(ctx, agency.ID, target, at)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating approval status: %w", err)
	}
	agency.ApprovalStatus = target
	agency.ApprovalDate = &at

	logger.FromContext(ctx).Info().
		Str("agency_id", agency.ID).
		Str("from", string(previous)).
		Str("to", string(target)).
		Msg("agency approval status changed")
	s.notifier.AgencyStatusChanged(ctx, agency)

	return agency, nil
}

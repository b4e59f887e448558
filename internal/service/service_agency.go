package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/occupa-lo-studente/internal/adapter"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type agencyService struct {
	agencies store.AgencyRepository
	captcha  adapter.Captcha
	notifier NotificationService

	logger *logger.Logger
}

func NewAgencyService(agencies store.AgencyRepository, captcha adapter.Captcha, notifier NotificationService, logger *logger.Logger) AgencyService {
	return &agencyService{
		agencies: agencies,
		captcha:  captcha,
		notifier: notifier,
		logger:   logger,
	}
}

// Register creates an agency waiting for approval.
//
// The CAPTCHA is verified first. An agency sharing the name, the email or
// the VAT code of an existing one is rejected with ErrAgencyAlreadyExists.
// The secretary and the agency are notified once the agency is stored.
func (s *agencyService) Register(ctx context.Context, req models.CreateAgencyRequest, remoteIP string) (*models.Agency, error) {
	log := logger.FromContext(ctx)

	ok, err := s.captcha.Verify(ctx, req.Captcha, remoteIP)
	if err != nil {
		log.Err(err).Str("func", "*agencyService.Register").Msg("error verifying captcha")
		return nil, fmt.Errorf("%w: %w", ErrCaptchaUnavailable, err)
	}
	if !ok {
		return nil, ErrCaptchaRejected
	}

	if err = s.ensureUnique(ctx, store.AgencyIdentity{
		AgencyName: req.AgencyName,
		Email:      req.Email,
		VATCode:    req.VATCode,
	}); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	agency := &models.Agency{
		ResponsibleFirstName:    req.ResponsibleFirstName,
		ResponsibleLastName:     req.ResponsibleLastName,
		ResponsibleFiscalNumber: req.ResponsibleFiscalNumber,
		Email:                   req.Email,
		HashedPassword:          hash,
		WebsiteURL:              req.WebsiteURL,
		PhoneNumber:             req.PhoneNumber,
		AgencyName:              req.AgencyName,
		AgencyDescription:       req.AgencyDescription,
		AgencyAddress:           req.AgencyAddress,
		VATCode:                 req.VATCode,
		LogoURL:                 req.LogoURL,
		BannerURL:               req.BannerURL,
		ApprovalStatus:          models.ApprovalWaiting,
	}
	if err = s.agencies.Create(ctx, agency); err != nil {
		return nil, fmt.Errorf("error creating agency: %w", err)
	}
	agency.HashedPassword = ""

	log.Info().Str("agency_id", agency.ID).Str("agency_name", agency.AgencyName).Msg("agency registered")
	s.notifier.AgencyRegistered(ctx, agency)

	return agency, nil
}

// Login checks the email and password of an agency. Unknown emails and
// wrong passwords both yield ErrWrongCredentials.
func (s *agencyService) Login(ctx context.Context, req models.AgencyLoginRequest) (*models.Agency, error) {
	agency, err := s.agencies.FindOne(ctx, store.AgencyFilter{Email: req.Email}, store.FindOptions{
		ShowPersonalData:   true,
		ShowHashedPassword: true,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("error finding agency by email: %w", err)
	}

	if !utils.ComparePassword(agency.HashedPassword, req.Password) {
		logger.FromContext(ctx).Info().Str("agency_id", agency.ID).Msg("agency login with wrong password")
		return nil, ErrWrongCredentials
	}
	agency.HashedPassword = ""

	return agency, nil
}

func (s *agencyService) Get(ctx context.Context, id string) (*models.Agency, error) {
	agency, err := s.agencies.FindOne(ctx, store.AgencyFilter{ID: id}, store.Private())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrActorNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading agency: %w", err)
	}

	return agency, nil
}

// Details returns the agency with its offers and received applications.
func (s *agencyService) Details(ctx context.Context, id string) (*models.AgencyDetails, error) {
	details, err := s.agencies.FindDetails(ctx, store.AgencyFilter{ID: id}, store.FindOptions{
		ShowPersonalData:  true,
		PopulateJobOffers: true,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading agency details: %w", err)
	}

	return details, nil
}

// Update applies the non-nil fields of req. A new password is hashed before
// it is stored. Identity changes are checked against the other agencies.
func (s *agencyService) Update(ctx context.Context, agency *models.Agency, req models.UpdateAgencyRequest) (*models.Agency, error) {
	updated := *agency
	updated.HashedPassword = ""

	setString(&updated.ResponsibleFirstName, req.ResponsibleFirstName)
	setString(&updated.ResponsibleLastName, req.ResponsibleLastName)
	setString(&updated.ResponsibleFiscalNumber, req.ResponsibleFiscalNumber)
	setString(&updated.Email, req.Email)
	setString(&updated.WebsiteURL, req.WebsiteURL)
	setString(&updated.PhoneNumber, req.PhoneNumber)
	setString(&updated.AgencyName, req.AgencyName)
	setString(&updated.AgencyDescription, req.AgencyDescription)
	setString(&updated.AgencyAddress, req.AgencyAddress)
	setString(&updated.VATCode, req.VATCode)
	setString(&updated.LogoURL, req.LogoURL)
	setString(&updated.BannerURL, req.BannerURL)

	if updated.AgencyName != agency.AgencyName || updated.Email != agency.Email || updated.VATCode != agency.VATCode {
		if err := s.ensureUnique(ctx, store.AgencyIdentity{
			AgencyName: updated.AgencyName,
			Email:      updated.Email,
			VATCode:    updated.VATCode,
			ExcludeID:  agency.ID,
		}); err != nil {
			return nil, err
		}
	}

	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		updated.HashedPassword = hash
	}

	if err := s.agencies.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("error updating agency: %w", err)
	}
	updated.HashedPassword = ""

	return &updated, nil
}

// Delete removes the agency together with its offers and applications.
func (s *agencyService) Delete(ctx context.Context, id string) error {
	err := s.agencies.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("error deleting agency: %w", err)
	}

	logger.FromContext(ctx).Info().Str("agency_id", id).Msg("agency deleted")
	return nil
}

// ListApproved returns the public projection of approved agencies. A field
// of study keeps only agencies offering jobs for it.
func (s *agencyService) ListApproved(ctx context.Context, query models.ListQuery) ([]models.Agency, error) {
	agencies, err := s.agencies.Find(ctx, store.AgencyFilter{
		ApprovalStatus:     models.ApprovalApproved,
		OffersFieldOfStudy: query.FieldOfStudy,
	}, store.FindOptions{Skip: query.Skip, Limit: query.Limit})
	if err != nil {
		return nil, fmt.Errorf("error listing agencies: %w", err)
	}

	return agencies, nil
}

// GetApproved returns an approved agency with its offers. Agencies that are
// not approved are reported as missing.
func (s *agencyService) GetApproved(ctx context.Context, id string) (*models.AgencyDetails, error) {
	details, err := s.agencies.FindDetails(ctx, store.AgencyFilter{
		ID:             id,
		ApprovalStatus: models.ApprovalApproved,
	}, store.FindOptions{PopulateJobOffers: true})
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrAgencyNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading agency: %w", err)
	}

	return details, nil
}

func (s *agencyService) ensureUnique(ctx context.Context, identity store.AgencyIdentity) error {
	_, err := s.agencies.FindOne(ctx, store.AgencyFilter{Conflicting: &identity}, store.FindOptions{})
	switch {
	case err == nil:
		return ErrAgencyAlreadyExists
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("error checking agency uniqueness: %w", err)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

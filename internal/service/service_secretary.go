package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// generatedPasswordLength is the length of rotated and provisioned passwords.
const generatedPasswordLength = 16

type secretaryService struct {
	secretaries store.SecretaryRepository
	now         func() time.Time

	logger *logger.Logger
}

func NewSecretaryService(secretaries store.SecretaryRepository, now func() time.Time, logger *logger.Logger) SecretaryService {
	return &secretaryService{
		secretaries: secretaries,
		now:         now,
		logger:      logger,
	}
}

func (s *secretaryService) Authenticate(ctx context.Context, username, password, ip string) (*models.Secretary, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return nil, ErrWrongCredentials
	}

	secretary, err := s.secretaries.FindOne(ctx, store.SecretaryFilter{Username: username}, store.FindOptions{ShowHashedPassword: true})
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("username", username).Str("ip", ip).Msg("secretary login with unknown username")
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("error finding secretary: %w", err)
	}

	if !utils.ComparePassword(secretary.HashedPassword, password) {
		log.Info().Str("secretary_id", secretary.ID).Str("ip", ip).Msg("secretary login with wrong password")
		return nil, ErrWrongCredentials
	}
	secretary.HashedPassword = ""

	at := s.now()
	if err = s.secretaries.SaveLogin(ctx, secretary.ID, ip, at); err != nil {
		return nil, fmt.Errorf("error saving secretary login: %w", err)
	}
	secretary.LoginIPAddresses = append(secretary.LoginIPAddresses, ip)
	secretary.LastLoginDate = &at

	return secretary, nil
}

// RotatePassword replaces the secretary password with a generated one and
// returns it. The plain password is never stored.
func (s *secretaryService) RotatePassword(ctx context.Context, secretary *models.Secretary) (string, error) {
	password, hash, err := newPassword()
	if err != nil {
		return "", err
	}

	updated := *secretary
	updated.HashedPassword = hash
	if err = s.secretaries.Update(ctx, &updated); err != nil {
		return "", fmt.Errorf("error updating secretary password: %w", err)
	}

	logger.FromContext(ctx).Info().Str("secretary_id", secretary.ID).Msg("secretary password rotated")
	return password, nil
}

func (s *secretaryService) Provision(ctx context.Context, username, password string) (*models.Secretary, string, error) {
	var (
		hash string
		err  error
	)
	if password == "" {
		if password, hash, err = newPassword(); err != nil {
			return nil, "", err
		}
	} else if hash, err = utils.HashPassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	secretary := &models.Secretary{Username: username, HashedPassword: hash}
	if err = s.secretaries.Create(ctx, secretary); err != nil {
		return nil, "", fmt.Errorf("error creating secretary: %w", err)
	}
	secretary.HashedPassword = ""

	return secretary, password, nil
}

func newPassword() (password, hash string, err error) {
	password, err = utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return "", "", err
	}
	hash, err = utils.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return password, hash, nil
}

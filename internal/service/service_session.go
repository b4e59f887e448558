package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// signupTokenDuration bounds the time between the OAuth callback and the
// completion of the signup form.
const signupTokenDuration = time.Hour

// sessionService signs every token with one shared secret. The actor kind
// is carried by the payload key, so a student token has no agency key and
// never verifies as an agency.
type sessionService struct {
	signKey string
	issuer  string

	logger *logger.Logger
}

func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		signKey: cfg.JWTSecret,
		issuer:  cfg.TokenIssuer,
		logger:  logger,
	}
}

// Issue signs a token without expiry for the given actor. The session
// lifetime is bounded by the cookie that stores it.
func (s *sessionService) Issue(ctx context.Context, kind models.ActorKind, actorID string) (models.Token, error) {
	var claims models.SessionClaims
	switch kind {
	case models.ActorStudent:
		claims.Student = actorID
	case models.ActorAgency:
		claims.Agency = actorID
	default:
		return models.Token{}, fmt.Errorf("%w: unsupported actor kind %q", ErrTokenCreationFailed, kind)
	}
	if actorID == "" {
		return models.Token{}, fmt.Errorf("%w: empty actor id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(s.issuer, claims, 0, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Issue").Str("kind", kind.String()).Msg("error signing session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *sessionService) Verify(ctx context.Context, kind models.ActorKind, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("kind", kind.String()).Msg("session token rejected")
		return "", ErrInvalidToken
	}

	id := parsed.Session.ActorID(kind)
	if id == "" || kind == models.ActorSignup {
		return "", ErrInvalidToken
	}

	return id, nil
}

// IssueSignup signs a short-lived token carrying the Google profile of a
// student who has no account yet.
func (s *sessionService) IssueSignup(ctx context.Context, profile models.GoogleProfile) (models.Token, error) {
	if profile.GoogleID == "" {
		return models.Token{}, fmt.Errorf("%w: empty google id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(s.issuer, models.SessionClaims{Signup: &profile}, signupTokenDuration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.IssueSignup").Msg("error signing signup token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *sessionService) VerifySignup(ctx context.Context, token string) (models.GoogleProfile, error) {
	if token == "" {
		return models.GoogleProfile{}, ErrInvalidToken
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("signup token rejected")
		return models.GoogleProfile{}, ErrInvalidToken
	}
	if parsed.Session.ActorID(models.ActorSignup) == "" {
		return models.GoogleProfile{}, ErrInvalidToken
	}

	return *parsed.Session.Signup, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

func newTestSessions() SessionService {
	return NewSessionService(config.App{JWTSecret: "test-secret", TokenIssuer: "occupa-lo-studente"}, logger.Nop())
}

func TestSessionService_IssueAndVerify(t *testing.T) {
	s := newTestSessions()
	ctx := context.Background()

	for _, kind := range []models.ActorKind{models.ActorStudent, models.ActorAgency} {
		t.Run(kind.String(), func(t *testing.T) {
			token, err := s.Issue(ctx, kind, "actor-1")
			require.NoError(t, err)
			assert.Nil(t, token.Session.ExpiresAt)

			id, err := s.Verify(ctx, kind, token.String())
			require.NoError(t, err)
			assert.Equal(t, "actor-1", id)
		})
	}
}

func TestSessionService_TokenNeverVerifiesAsAnotherKind(t *testing.T) {
	s := newTestSessions()
	ctx := context.Background()

	agencyToken, err := s.Issue(ctx, models.ActorAgency, "agency-1")
	require.NoError(t, err)
	studentToken, err := s.Issue(ctx, models.ActorStudent, "student-1")
	require.NoError(t, err)

	_, err = s.Verify(ctx, models.ActorStudent, agencyToken.String())
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(ctx, models.ActorAgency, studentToken.String())
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(ctx, models.ActorSignup, studentToken.String())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionService_VerifyRejectsBadTokens(t *testing.T) {
	s := newTestSessions()
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("occupa-lo-studente", models.SessionClaims{Agency: "a1"}, 0, "other-secret")
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWTToken("someone-else", models.SessionClaims{Agency: "a1"}, 0, "test-secret")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"malformed":    "not.a.jwt",
		"wrong secret": foreign.String(),
		"wrong issuer": wrongIssuer.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(ctx, models.ActorAgency, token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSessionService_IssueRejectsUnknownKindAndEmptyID(t *testing.T) {
	s := newTestSessions()

	_, err := s.Issue(context.Background(), models.ActorSignup, "g-1")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)

	_, err = s.Issue(context.Background(), models.ActorAgency, "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestSessionService_SignupToken(t *testing.T) {
	s := newTestSessions()
	ctx := context.Background()
	profile := models.GoogleProfile{GoogleID: "g-42", FirstName: "Luca", LastName: "Bianchi", Email: "luca@school.it"}

	token, err := s.IssueSignup(ctx, profile)
	require.NoError(t, err)
	require.NotNil(t, token.Session.ExpiresAt)

	got, err := s.VerifySignup(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = s.Verify(ctx, models.ActorStudent, token.String())
	assert.ErrorIs(t, err, ErrInvalidToken)

	studentToken, err := s.Issue(ctx, models.ActorStudent, "student-1")
	require.NoError(t, err)
	_, err = s.VerifySignup(ctx, studentToken.String())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

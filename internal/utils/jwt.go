package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the given session claims.
//
// The registered claims Issuer (iss) and IssuedAt (iat) are always set.
// ExpiresAt (exp) is set only when tokenDuration is positive; a zero duration
// yields a token without expiry whose lifetime is bounded by the cookie holding it.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	claims        - session payload; exactly one actor key should be set
//	tokenDuration - how long the token remains valid, 0 for no exp claim
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("occupa-lo-studente", models.SessionClaims{Agency: id}, 0, "secret")
func GenerateJWTToken(issuer string, claims models.SessionClaims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration < 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims.Issuer = issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Session: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check when the claim is present
//
// Deciding which actor the token authenticates is left to the caller,
// see [models.SessionClaims.ActorID].
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "occupa-lo-studente")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, Session: *claims, SignedString: tokenString}, nil
}

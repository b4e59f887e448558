package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT payload of every session token. Exactly one of
// the kind-specific keys is set; the key present decides which actor kind
// the token authenticates.
type SessionClaims struct {
	Student string         `json:"student,omitempty"`
	Agency  string         `json:"agency,omitempty"`
	Signup  *GoogleProfile `json:"signup,omitempty"`

	jwt.RegisteredClaims
}

// ActorID returns the identifier stored under the payload key of kind.
// For [ActorSignup] it returns the Google subject of the carried profile.
func (c SessionClaims) ActorID(kind ActorKind) string {
	switch kind {
	case ActorStudent:
		return c.Student
	case ActorAgency:
		return c.Agency
	case ActorSignup:
		if c.Signup != nil {
			return c.Signup.GoogleID
		}
	}

	return ""
}

// Token wraps a signed session JWT.
type Token struct {
	// Token is the underlying JWT, excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// Session holds the decoded payload.
	Session SessionClaims `json:"-"`

	// SignedString is the compact JWS form stored in the session cookie.
	SignedString string `json:"-"`
}

// String returns the compact serialized token.
func (t Token) String() string {
	return t.SignedString
}

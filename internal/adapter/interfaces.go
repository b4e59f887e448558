// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the server.
//
// Each collaborator is an interface so services and validators can be tested
// with generated mocks:
//   - [Captcha] verifies reCAPTCHA responses,
//   - [URLProber] checks that submitted URLs are reachable,
//   - [OAuthProvider] runs the Google OAuth2 code flow,
//   - [Mailer] delivers HTML email over SMTP.
//
// HTTP integrations share a resty client bounded by the adapter request
// timeout. Non-2xx upstream replies are mapped by mapHTTPError so callers can
// use [errors.Is] (e.g. [ErrUpstreamRejected] for 4xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/occupa-lo-studente/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Captcha verifies the token produced by the reCAPTCHA widget.
type Captcha interface {
	// Verify reports whether the token is accepted. An error means the
	// verification service could not be reached or answered unexpectedly.
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// URLProber reports whether a URL points to a reachable resource.
type URLProber interface {
	Exists(ctx context.Context, rawURL string) bool
}

// OAuthProvider runs the authorization code flow against Google.
type OAuthProvider interface {
	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for an access token and loads
	// the account profile with it.
	Exchange(ctx context.Context, code string) (models.GoogleProfile, error)
}

// Mailer delivers email.
type Mailer interface {
	Send(ctx context.Context, mail models.Mail) error
}

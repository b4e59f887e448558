// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised by the middlewares before a request reaches the services.
// They are mapped to responses by writeError like any service error.
var (
	// errMissingCookie is returned when the session cookie of the route's
	// actor kind is absent or empty.
	errMissingCookie = errors.New("missing session cookie")

	// errMissingActor is returned when a handler runs without the actor its
	// middleware should have attached to the context.
	errMissingActor = errors.New("no authenticated actor in request context")

	// errInvalidBody is returned when the request body is not a JSON object.
	errInvalidBody = errors.New("request body is not a JSON object")

	// errInvalidQuery is returned when a validated query value cannot be
	// converted to its typed form.
	errInvalidQuery = errors.New("invalid query parameter")

	// errRateLimited is returned when the client exceeded the request budget
	// of a limited route.
	errRateLimited = errors.New("rate limit exceeded")

	// errInvalidOAuthState is returned when the OAuth callback state does not
	// match the state cookie set by the consent redirect.
	errInvalidOAuthState = errors.New("oauth state mismatch")
)

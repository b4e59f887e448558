// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings shared by the
// validation pipeline, the services and the HTTP handlers.
//
// Every string written into an {"err": "..."} response body lives here so the
// API keeps consistent wording.
package app

const (
	// MsgRouteDoesntExist is returned for any path the router does not know.
	MsgRouteDoesntExist = "Route doesn't exist"

	// MsgUnknownError is returned when an unexpected server-side failure
	// occurs. The detail is only logged.
	MsgUnknownError = "unknown error"

	// MsgUnauthenticated is the opaque reply of every authorization failure.
	MsgUnauthenticated = "unauthenticated"

	// MsgForbidden is returned when an actor touches a resource it does not own.
	MsgForbidden = "forbidden"

	// MsgInvalidBody is returned when the request body is not a JSON object.
	MsgInvalidBody = "Invalid request body"

	// MsgTooManyRequests is returned by rate limited routes.
	MsgTooManyRequests = "Too many requests, try again later"

	MsgInvalidCaptcha        = "Invalid ReCAPTCHA"
	MsgCaptchaVerifyFailed   = "Error while verifying ReCAPTCHA"
	MsgAgencyAlreadyExists   = "Agency with the same data (name, email or VAT code) already exists"
	MsgInvalidLoginPassword  = "Invalid email or password"
	MsgAgencyNotFound        = "Agency not found"
	MsgStudentNotFound       = "Student not found"
	MsgJobOfferNotFound      = "Job offer not found"
	MsgJobApplicationMissing = "Job application not found"
	MsgDocumentNotFound      = "Not found"

	// MsgTestAuthDisabled is returned by the test-auth route in production.
	MsgTestAuthDisabled = "Test authentication is disabled"

	// MsgOAuthFailed is returned when the Google code exchange or profile
	// lookup fails.
	MsgOAuthFailed = "Error while authenticating with Google"

	// MsgInvalidStudentEmail is returned when the Google account does not
	// belong to the school domain.
	MsgInvalidStudentEmail = "Email must belong to the school domain"

	MsgAgencyNotApprovedForApply = "Agency is not approved"
	MsgJobOfferNotOfAgency       = "Job offer doesn't belong to the agency"
	MsgJobOfferExpired           = "Job offer is expired"
)

package service

import "errors"

// Authentication errors. The HTTP layer answers all of them with an opaque 401.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidToken     = errors.New("invalid session token")
	ErrActorNotFound    = errors.New("actor not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrCaptchaRejected  = errors.New("captcha rejected")
)

var (
	ErrCaptchaUnavailable    = errors.New("captcha verification failed")
	ErrOAuthFailed           = errors.New("google authentication failed")
	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrPasswordHashing       = errors.New("password hashing failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Domain errors, each mapped to a client-facing message.
var (
	ErrAgencyAlreadyExists    = errors.New("agency already exists")
	ErrInvalidStudentEmail    = errors.New("student email outside the school domain")
	ErrTestAuthDisabled       = errors.New("test authentication is disabled")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidApproval        = errors.New("invalid approval action")
	ErrAgencyNotApproved      = errors.New("agency is not approved")
	ErrJobOfferNotOfAgency    = errors.New("job offer doesn't belong to the agency")
	ErrJobOfferExpired        = errors.New("job offer is expired")
	ErrAgencyNotFound         = errors.New("agency not found")
	ErrStudentNotFound        = errors.New("student not found")
	ErrJobOfferNotFound       = errors.New("job offer not found")
	ErrJobApplicationNotFound = errors.New("job application not found")
)

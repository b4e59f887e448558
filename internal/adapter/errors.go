package adapter

import "errors"

var (
	ErrUpstreamRejected    = errors.New("upstream rejected the request")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected upstream status")

	ErrCaptchaNotConfigured = errors.New("recaptcha secret is not configured")
	ErrOAuthNotConfigured   = errors.New("google oauth is not configured")
	ErrMissingAccessToken   = errors.New("token response carries no access token")
	ErrIncompleteProfile    = errors.New("google profile has no subject or email")
	ErrMailNotConfigured    = errors.New("smtp server is not configured")
	ErrSendingMail          = errors.New("error sending mail")
	ErrAddressNotAllowed    = errors.New("address is not public")
)

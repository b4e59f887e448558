package config

import "time"

// EnvironmentProduction is the App.Environment value of production deployments.
const EnvironmentProduction = "production"

const (
	defaultTokenIssuer        = "occupa-lo-studente"
	defaultSignupCookieName   = "signup_token"
	defaultCookieDurationDays = 14
	defaultEnvironment        = "development"
	defaultVersion            = "dev"

	defaultServerRequestTimeout  = 30 * time.Second
	defaultHealthProbeInterval   = 10 * time.Second
	defaultAdapterRequestTimeout = 10 * time.Second

	defaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	defaultGoogleAuthURL      = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultGoogleTokenURL     = "https://oauth2.googleapis.com/token"
	defaultGoogleUserInfoURL  = "https://openidconnect.googleapis.com/v1/userinfo"

	defaultMailPort = 587

	defaultRateLimit  = 20
	defaultRateWindow = time.Minute
)

// setDefaults fills optional values left empty by every source.
func (cfg *StructuredConfig) setDefaults() {
	setIfZero(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setIfZero(&cfg.App.SignupCookieName, defaultSignupCookieName)
	setIfZero(&cfg.App.AuthCookieDurationDays, defaultCookieDurationDays)
	setIfZero(&cfg.App.Environment, defaultEnvironment)
	setIfZero(&cfg.App.Version, defaultVersion)

	setIfZero(&cfg.Server.RequestTimeout, defaultServerRequestTimeout)
	setIfZero(&cfg.Server.HealthProbeInterval, defaultHealthProbeInterval)

	setIfZero(&cfg.Adapter.RequestTimeout, defaultAdapterRequestTimeout)
	setIfZero(&cfg.Adapter.RecaptchaVerifyURL, defaultRecaptchaVerifyURL)
	setIfZero(&cfg.Adapter.GoogleAuthURL, defaultGoogleAuthURL)
	setIfZero(&cfg.Adapter.GoogleTokenURL, defaultGoogleTokenURL)
	setIfZero(&cfg.Adapter.GoogleUserInfoURL, defaultGoogleUserInfoURL)

	setIfZero(&cfg.Mail.Port, defaultMailPort)

	setIfZero(&cfg.Redis.RateLimit, defaultRateLimit)
	setIfZero(&cfg.Redis.RateWindow, defaultRateWindow)
}

func setIfZero[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

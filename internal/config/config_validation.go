// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] carries every
// value the server cannot start without. All missing variables are reported
// together in one [ErrMissingRequiredConfig] error.
func (cfg *StructuredConfig) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"APP_JWT_SECRET", cfg.App.JWTSecret},
		{"APP_STUDENT_AUTH_COOKIE_NAME", cfg.App.StudentAuthCookieName},
		{"APP_AGENCY_AUTH_COOKIE_NAME", cfg.App.AgencyAuthCookieName},
		{"APP_SECRETARY_EMAIL", cfg.App.SecretaryEmail},
		{"APP_SEND_EMAIL_FROM", cfg.App.SendEmailFrom},
		{"APP_SIGNUP_URL", cfg.App.SignupURL},
		{"APP_CLIENT_LOGIN_REDIRECT_URL", cfg.App.ClientLoginRedirectURL},
		{"STORAGE_DB_DATABASE_URI", cfg.Storage.DB.DSN},
		{"SERVER_ADDRESS", cfg.Server.HTTPAddress},
		{"ADAPTER_RECAPTCHA_SECRET", cfg.Adapter.RecaptchaSecret},
		{"ADAPTER_GOOGLE_CLIENT_ID", cfg.Adapter.GoogleClientID},
		{"ADAPTER_GOOGLE_CLIENT_SECRET", cfg.Adapter.GoogleClientSecret},
		{"ADAPTER_GOOGLE_REDIRECT_URL", cfg.Adapter.GoogleRedirectURL},
		{"MAIL_SERVER", cfg.Mail.Server},
		{"MAIL_USERNAME", cfg.Mail.Username},
		{"MAIL_PASSWORD", cfg.Mail.Password},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if cfg.App.StudentAuthCookieName != "" && cfg.App.StudentAuthCookieName == cfg.App.AgencyAuthCookieName {
		return ErrSameCookieNames
	}

	if len(missing) > 0 {
		return missingConfigError(missing)
	}

	return nil
}

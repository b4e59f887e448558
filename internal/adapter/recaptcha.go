package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
)

type recaptcha struct {
	client    *utils.HTTPClient
	verifyURL string
	secret    string

	logger *logger.Logger
}

type recaptchaResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// NewRecaptcha returns a [Captcha] backed by the reCAPTCHA siteverify API.
func NewRecaptcha(cfg config.Adapter, client *utils.HTTPClient, logger *logger.Logger) Captcha {
	return &recaptcha{
		client:    client,
		verifyURL: cfg.RecaptchaVerifyURL,
		secret:    cfg.RecaptchaSecret,
		logger:    logger,
	}
}

func (r *recaptcha) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if r.secret == "" {
		return false, ErrCaptchaNotConfigured
	}

	form := map[string]string{
		"secret":   r.secret,
		"response": token,
	}
	if remoteIP != "" {
		form["remoteip"] = remoteIP
	}

	var result recaptchaResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		Post(r.verifyURL)
	if err != nil {
		return false, fmt.Errorf("%w: recaptcha verify: %w", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	if !result.Success {
		r.logger.Debug().Str("func", "*recaptcha.Verify").
			Str("error_codes", strings.Join(result.ErrorCodes, ",")).
			Msg("recaptcha token rejected")
	}
	return result.Success, nil
}

package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

const googleScopes = "openid email profile"

type googleOAuth struct {
	client *utils.HTTPClient

	clientID     string
	clientSecret string
	redirectURL  string
	authURL      string
	tokenURL     string
	userInfoURL  string

	logger *logger.Logger
}

type googleTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type googleUserInfo struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// NewGoogleOAuth returns an [OAuthProvider] for the Google OAuth2 endpoints
// configured in cfg.
func NewGoogleOAuth(cfg config.Adapter, client *utils.HTTPClient, logger *logger.Logger) OAuthProvider {
	return &googleOAuth{
		client:       client,
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURL:  cfg.GoogleRedirectURL,
		authURL:      cfg.GoogleAuthURL,
		tokenURL:     cfg.GoogleTokenURL,
		userInfoURL:  cfg.GoogleUserInfoURL,
		logger:       logger,
	}
}

func (g *googleOAuth) AuthCodeURL(state string) string {
	params := url.Values{
		"client_id":     {g.clientID},
		"redirect_uri":  {g.redirectURL},
		"response_type": {"code"},
		"scope":         {googleScopes},
		"access_type":   {"online"},
		"prompt":        {"select_account"},
	}
	if state != "" {
		params.Set("state", state)
	}
	return g.authURL + "?" + params.Encode()
}

func (g *googleOAuth) Exchange(ctx context.Context, code string) (models.GoogleProfile, error) {
	if g.clientID == "" || g.clientSecret == "" {
		return models.GoogleProfile{}, ErrOAuthNotConfigured
	}

	var token googleTokenResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     g.clientID,
			"client_secret": g.clientSecret,
			"redirect_uri":  g.redirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&token).
		Post(g.tokenURL)
	if err != nil {
		return models.GoogleProfile{}, fmt.Errorf("%w: google token exchange: %w", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GoogleProfile{}, fmt.Errorf("google token exchange: %w", err)
	}
	if token.AccessToken == "" {
		return models.GoogleProfile{}, ErrMissingAccessToken
	}

	var info googleUserInfo
	resp, err = g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(g.userInfoURL)
	if err != nil {
		return models.GoogleProfile{}, fmt.Errorf("%w: google userinfo: %w", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GoogleProfile{}, fmt.Errorf("google userinfo: %w", err)
	}
	if info.Subject == "" || info.Email == "" {
		return models.GoogleProfile{}, ErrIncompleteProfile
	}

	g.logger.Debug().Str("func", "*googleOAuth.Exchange").Str("google_id", info.Subject).Msg("google profile loaded")

	return models.GoogleProfile{
		GoogleID:   info.Subject,
		FirstName:  info.GivenName,
		LastName:   info.FamilyName,
		Email:      info.Email,
		PictureURL: info.Picture,
	}, nil
}

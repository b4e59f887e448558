package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the optional JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		JWTSecret              string `json:"jwt_secret"`
		TokenIssuer            string `json:"token_issuer"`
		StudentAuthCookieName  string `json:"student_auth_cookie_name"`
		AgencyAuthCookieName   string `json:"agency_auth_cookie_name"`
		SignupCookieName       string `json:"signup_cookie_name"`
		AuthCookieDurationDays int    `json:"auth_cookie_duration_days"`
		Environment            string `json:"environment"`
		Version                string `json:"version"`
		EmailSuffix            string `json:"email_suffix"`
		SecretaryEmail         string `json:"secretary_email"`
		SendEmailFrom          string `json:"send_email_from"`
		SignupURL              string `json:"signup_url"`
		ClientLoginRedirectURL string `json:"client_login_redirect_url"`
		ProbeURLs              bool   `json:"probe_urls"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		GRPCAddress         string   `json:"grpc_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		HealthProbeInterval Duration `json:"health_probe_interval"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout     Duration `json:"request_timeout"`
		RecaptchaSecret    string   `json:"recaptcha_secret"`
		RecaptchaVerifyURL string   `json:"recaptcha_verify_url"`
		GoogleClientID     string   `json:"google_client_id"`
		GoogleClientSecret string   `json:"google_client_secret"`
		GoogleRedirectURL  string   `json:"google_redirect_url"`
	} `json:"adapter,omitempty"`

	Mail struct {
		Server   string `json:"server"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"mail,omitempty"`

	Redis struct {
		URL        string   `json:"url"`
		RateLimit  int      `json:"rate_limit"`
		RateWindow Duration `json:"rate_window"`
	} `json:"redis,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	app := jsonCfg.App
	cfg := &StructuredConfig{
		App: App{
			JWTSecret:              app.JWTSecret,
			TokenIssuer:            app.TokenIssuer,
			StudentAuthCookieName:  app.StudentAuthCookieName,
			AgencyAuthCookieName:   app.AgencyAuthCookieName,
			SignupCookieName:       app.SignupCookieName,
			AuthCookieDurationDays: app.AuthCookieDurationDays,
			Environment:            app.Environment,
			Version:                app.Version,
			EmailSuffix:            app.EmailSuffix,
			SecretaryEmail:         app.SecretaryEmail,
			SendEmailFrom:          app.SendEmailFrom,
			SignupURL:              app.SignupURL,
			ClientLoginRedirectURL: app.ClientLoginRedirectURL,
			ProbeURLs:              app.ProbeURLs,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:         jsonCfg.Server.HTTPAddress,
			GRPCAddress:         jsonCfg.Server.GRPCAddress,
			RequestTimeout:      time.Duration(jsonCfg.Server.RequestTimeout),
			HealthProbeInterval: time.Duration(jsonCfg.Server.HealthProbeInterval),
		},
		Adapter: Adapter{
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			RecaptchaSecret:    jsonCfg.Adapter.RecaptchaSecret,
			RecaptchaVerifyURL: jsonCfg.Adapter.RecaptchaVerifyURL,
			GoogleClientID:     jsonCfg.Adapter.GoogleClientID,
			GoogleClientSecret: jsonCfg.Adapter.GoogleClientSecret,
			GoogleRedirectURL:  jsonCfg.Adapter.GoogleRedirectURL,
		},
		Mail: Mail{
			Server:   jsonCfg.Mail.Server,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
		},
		Redis: Redis{
			URL:        jsonCfg.Redis.URL,
			RateLimit:  jsonCfg.Redis.RateLimit,
			RateWindow: time.Duration(jsonCfg.Redis.RateWindow),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

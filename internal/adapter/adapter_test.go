// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

func allowAnyAddr(netip.AddrPort) bool { return true }

func newTestClient() *utils.HTTPClient {
	return utils.NewHTTPClient(2 * time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── reCAPTCHA ───────────────────────────────────────────────────────────────

func TestRecaptcha_Verify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "s3cret", r.PostForm.Get("secret"))
		assert.Equal(t, "widget-token", r.PostForm.Get("response"))
		assert.Equal(t, "10.0.0.1", r.PostForm.Get("remoteip"))
		writeJSON(w, http.StatusOK, `{"success": true}`)
	}))
	defer srv.Close()

	c := NewRecaptcha(config.Adapter{RecaptchaSecret: "s3cret", RecaptchaVerifyURL: srv.URL}, newTestClient(), logger.Nop())
	ok, err := c.Verify(context.Background(), "widget-token", "10.0.0.1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecaptcha_Verify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success": false, "error-codes": ["invalid-input-response"]}`)
	}))
	defer srv.Close()

	c := NewRecaptcha(config.Adapter{RecaptchaSecret: "s3cret", RecaptchaVerifyURL: srv.URL}, newTestClient(), logger.Nop())
	ok, err := c.Verify(context.Background(), "bad", "")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecaptcha_Verify_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewRecaptcha(config.Adapter{RecaptchaSecret: "s3cret", RecaptchaVerifyURL: srv.URL}, newTestClient(), logger.Nop())
	_, err := c.Verify(context.Background(), "token", "")

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestRecaptcha_Verify_NotConfigured(t *testing.T) {
	c := NewRecaptcha(config.Adapter{}, newTestClient(), logger.Nop())
	_, err := c.Verify(context.Background(), "token", "")

	assert.ErrorIs(t, err, ErrCaptchaNotConfigured)
}

// ── URL probe ───────────────────────────────────────────────────────────────

func TestURLProber_Enabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := newURLProber(newTestClient(), true, allowAnyAddr, logger.Nop())

	assert.True(t, p.Exists(context.Background(), srv.URL+"/ok"))
	assert.False(t, p.Exists(context.Background(), srv.URL+"/missing"))
}

func TestURLProber_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable := srv.URL
	srv.Close()

	p := newURLProber(newTestClient(), true, allowAnyAddr, logger.Nop())
	assert.False(t, p.Exists(context.Background(), unreachable))
}

func TestURLProber_RefusesNonPublicAddresses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	p := NewURLProber(newTestClient(), true, logger.Nop())

	assert.False(t, p.Exists(context.Background(), srv.URL+"/admin"))
	assert.Zero(t, hits.Load())
}

func TestURLProber_RefusesRedirectToNonPublicAddress(t *testing.T) {
	var internalHits atomic.Int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		internalHits.Add(1)
	}))
	defer internal.Close()

	var publicHits atomic.Int32
	public := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		publicHits.Add(1)
		http.Redirect(w, r, internal.URL+"/secret", http.StatusFound)
	}))
	defer public.Close()

	publicAddr := netip.MustParseAddrPort(public.Listener.Addr().String())
	p := newURLProber(newTestClient(), true, func(target netip.AddrPort) bool {
		return target == publicAddr
	}, logger.Nop())

	assert.False(t, p.Exists(context.Background(), public.URL+"/logo.png"))
	assert.Equal(t, int32(1), publicHits.Load())
	assert.Zero(t, internalHits.Load())
}

func TestIsPublicAddr(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"93.184.216.34", true},
		{"2606:2800:220:1:248:1893:25c8:1946", true},
		{"127.0.0.1", false},
		{"::1", false},
		{"10.0.0.5", false},
		{"172.16.3.4", false},
		{"192.168.1.1", false},
		{"169.254.169.254", false},
		{"100.64.0.1", false},
		{"0.0.0.0", false},
		{"fd00::1", false},
		{"fe80::1", false},
		{"224.0.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, isPublicAddr(netip.MustParseAddr(tt.addr)))
		})
	}
}

func TestURLProber_Disabled(t *testing.T) {
	p := NewURLProber(newTestClient(), false, logger.Nop())

	assert.True(t, p.Exists(context.Background(), "https://never-contacted.example/logo.png"))
	assert.False(t, p.Exists(context.Background(), "ftp://files.example"))
	assert.False(t, p.Exists(context.Background(), "not a url"))
	assert.False(t, p.Exists(context.Background(), "https://"))
}

// ── Google OAuth ────────────────────────────────────────────────────────────

func newGoogleServer(t *testing.T, userInfo string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		writeJSON(w, http.StatusOK, `{"access_token": "at-1", "token_type": "Bearer", "expires_in": 3600}`)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, userInfo)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func googleConfig(base string) config.Adapter {
	return config.Adapter{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "https://api.example/api/student/auth/google/callback",
		GoogleAuthURL:      base + "/auth",
		GoogleTokenURL:     base + "/token",
		GoogleUserInfoURL:  base + "/userinfo",
	}
}

func TestGoogleOAuth_Exchange(t *testing.T) {
	srv := newGoogleServer(t, `{"sub": "g-42", "email": "luca@school.it", "given_name": "Luca", "family_name": "Bianchi", "picture": "https://pics.example/l.png"}`)
	g := NewGoogleOAuth(googleConfig(srv.URL), newTestClient(), logger.Nop())

	profile, err := g.Exchange(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, models.GoogleProfile{
		GoogleID:   "g-42",
		FirstName:  "Luca",
		LastName:   "Bianchi",
		Email:      "luca@school.it",
		PictureURL: "https://pics.example/l.png",
	}, profile)
}

func TestGoogleOAuth_Exchange_IncompleteProfile(t *testing.T) {
	srv := newGoogleServer(t, `{"sub": "g-42"}`)
	g := NewGoogleOAuth(googleConfig(srv.URL), newTestClient(), logger.Nop())

	_, err := g.Exchange(context.Background(), "auth-code")
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestGoogleOAuth_Exchange_RejectedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error": "invalid_grant"}`)
	}))
	defer srv.Close()
	g := NewGoogleOAuth(googleConfig(srv.URL), newTestClient(), logger.Nop())

	_, err := g.Exchange(context.Background(), "auth-code")
	assert.ErrorIs(t, err, ErrUpstreamRejected)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestGoogleOAuth_Exchange_NotConfigured(t *testing.T) {
	g := NewGoogleOAuth(config.Adapter{}, newTestClient(), logger.Nop())

	_, err := g.Exchange(context.Background(), "auth-code")
	assert.ErrorIs(t, err, ErrOAuthNotConfigured)
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g := NewGoogleOAuth(googleConfig("https://accounts.example"), newTestClient(), logger.Nop())

	got := g.AuthCodeURL("xyz")

	assert.True(t, strings.HasPrefix(got, "https://accounts.example/auth?"))
	assert.Contains(t, got, "client_id=client-id")
	assert.Contains(t, got, "response_type=code")
	assert.Contains(t, got, "state=xyz")
	assert.Contains(t, got, "scope=openid+email+profile")
}

// ── Mailer ──────────────────────────────────────────────────────────────────

func TestSMTPMailer_InvalidAddress(t *testing.T) {
	m := NewSMTPMailer(config.Mail{Server: "smtp.example", Port: 587}, time.Second, logger.Nop())

	err := m.Send(context.Background(), models.Mail{From: "not an address", To: "agency@example.com", Subject: "s", HTML: "<p>x</p>"})
	assert.ErrorIs(t, err, ErrSendingMail)
}

func TestSMTPMailer_NotConfigured(t *testing.T) {
	m := NewSMTPMailer(config.Mail{}, time.Second, logger.Nop())

	err := m.Send(context.Background(), models.Mail{From: "noreply@school.it", To: "agency@example.com", Subject: "s", HTML: "<p>x</p>"})
	assert.ErrorIs(t, err, ErrMailNotConfigured)
}

func TestNewMessage(t *testing.T) {
	msg, err := newMessage(models.Mail{From: "noreply@school.it", To: "agency@example.com", Subject: "Welcome", HTML: "<p>hi</p>"})

	require.NoError(t, err)
	assert.NotNil(t, msg)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusOK},
		{status: http.StatusNoContent},
		{status: http.StatusBadRequest, want: ErrUpstreamRejected},
		{status: http.StatusForbidden, want: ErrUpstreamRejected},
		{status: http.StatusBadGateway, want: ErrUpstreamUnavailable},
		{status: http.StatusNotModified, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			resp, err := newTestClient().R().Get(srv.URL)
			require.NoError(t, err)

			err = mapHTTPError(resp)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

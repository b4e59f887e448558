package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

const (
	oauthStateCookieName = "oauth_state"
	oauthStateMaxAge     = 10 * time.Minute
	signupCookieMaxAge   = time.Hour
)

func (h *Handler) setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) sessionCookieName(kind models.ActorKind) string {
	if kind == models.ActorAgency {
		return h.app.AgencyAuthCookieName
	}
	return h.app.StudentAuthCookieName
}

// startSession sets the session cookie of the actor. It is best effort: the
// response the cookie is attached to succeeds anyway.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, kind models.ActorKind, id string) {
	token, err := h.services.Sessions.Issue(r.Context(), kind, id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.startSession").Str("actor_kind", kind.String()).Msg("error issuing session token")
		return
	}

	h.setCookie(w, h.sessionCookieName(kind), token.String(), h.app.CookieMaxAge())
}

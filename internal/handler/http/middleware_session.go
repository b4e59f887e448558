package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// sessionAuth authenticates one actor kind from its session cookie.
type sessionAuth[T any] struct {
	kind   models.ActorKind
	cookie string
	key    utils.ContextKey

	// resolve turns the cookie value into the actor and its id.
	resolve func(ctx context.Context, token string) (T, string, error)
}

// middleware attaches the authenticated actor to the request context under
// key. Every failure is answered with an opaque 401.
func (a sessionAuth[T]) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookie)
		if err != nil || cookie.Value == "" {
			unauthenticated(w, r, errMissingCookie)
			return
		}

		ctx := r.Context()
		actor, id, err := a.resolve(ctx, cookie.Value)
		if err != nil {
			unauthenticated(w, r, err)
			return
		}

		ctx = utils.WithActor(ctx, a.key, actor)
		ctx = logger.WithActor(ctx, a.kind.String(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verifiedActor resolves a session token of kind and loads its actor.
func verifiedActor[T any](h *Handler, kind models.ActorKind, load func(ctx context.Context, id string) (T, error)) func(ctx context.Context, token string) (T, string, error) {
	return func(ctx context.Context, token string) (T, string, error) {
		var zero T
		id, err := h.services.Sessions.Verify(ctx, kind, token)
		if err != nil {
			return zero, "", err
		}
		actor, err := load(ctx, id)
		if err != nil {
			return zero, "", err
		}
		return actor, id, nil
	}
}

func (h *Handler) studentAuth(next http.Handler) http.Handler {
	return sessionAuth[*models.Student]{
		kind:    models.ActorStudent,
		cookie:  h.app.StudentAuthCookieName,
		key:     utils.StudentCtxKey,
		resolve: verifiedActor(h, models.ActorStudent, h.services.Students.Get),
	}.middleware(next)
}

func (h *Handler) agencyAuth(next http.Handler) http.Handler {
	return sessionAuth[*models.Agency]{
		kind:    models.ActorAgency,
		cookie:  h.app.AgencyAuthCookieName,
		key:     utils.AgencyCtxKey,
		resolve: verifiedActor(h, models.ActorAgency, h.services.Agencies.Get),
	}.middleware(next)
}

// signupAuth reads the Google profile left by the OAuth callback for a
// student who has not completed the signup form yet.
func (h *Handler) signupAuth(next http.Handler) http.Handler {
	return sessionAuth[models.GoogleProfile]{
		kind:   models.ActorSignup,
		cookie: h.app.SignupCookieName,
		key:    utils.SignupCtxKey,
		resolve: func(ctx context.Context, token string) (models.GoogleProfile, string, error) {
			profile, err := h.services.Sessions.VerifySignup(ctx, token)
			return profile, profile.GoogleID, err
		},
	}.middleware(next)
}

// secretaryAuth checks the username and password query parameters on every
// request. Secretaries have no session.
func (h *Handler) secretaryAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		secretary, err := h.services.Secretaries.Authenticate(ctx, query.Get("username"), query.Get("password"), clientIP(r))
		if err != nil {
			unauthenticated(w, r, err)
			return
		}

		ctx = utils.WithActor(ctx, utils.SecretaryCtxKey, secretary)
		ctx = logger.WithActor(ctx, "secretary", secretary.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthenticated answers 401 whatever the cause. Causes that are not
// authentication failures are logged as errors.
func unauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	if status, _ := replyFromError(err); status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "unauthenticated").Str("path", r.URL.Path).Msg("error authenticating request")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("unauthenticated request")
	}
	writeMessage(w, r, app.MsgUnauthenticated, http.StatusUnauthorized)
}

// actorFrom returns the actor attached by the route's auth middleware.
func actorFrom[T any](r *http.Request, key utils.ContextKey) (T, error) {
	actor, ok := utils.ActorFromContext[T](r.Context(), key)
	if !ok {
		return actor, errMissingActor
	}
	return actor, nil
}

package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// googleAuth redirects to the Google consent page. The state is kept in a
// short-lived cookie and checked by the callback.
func (h *Handler) googleAuth(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	h.setCookie(w, oauthStateCookieName, state, oauthStateMaxAge)
	http.Redirect(w, r, h.services.Students.AuthCodeURL(state), http.StatusFound)
}

// googleCallback signs a known student in or sends a new one to the signup
// form with the Google profile in the signup cookie.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	state, err := r.Cookie(oauthStateCookieName)
	if err != nil || state.Value == "" || state.Value != r.URL.Query().Get("state") {
		h.writeError(w, r, errInvalidOAuthState)
		return
	}
	h.clearCookie(w, oauthStateCookieName)

	student, profile, err := h.services.Students.SignIn(ctx, r.URL.Query().Get("code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if student != nil {
		log.Info().Str("student_id", student.ID).Msg("student logged in")
		h.startSession(w, r, models.ActorStudent, student.ID)
		http.Redirect(w, r, h.app.ClientLoginRedirectURL, http.StatusFound)
		return
	}

	token, err := h.services.Sessions.IssueSignup(ctx, profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setCookie(w, h.app.SignupCookieName, token.String(), signupCookieMaxAge)
	http.Redirect(w, r, h.app.SignupURL, http.StatusFound)
}

// createStudent completes the signup started by the OAuth callback.
func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	profile, err := actorFrom[models.GoogleProfile](r, utils.SignupCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CreateStudentRequest
	if err = bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	student, err := h.services.Students.Create(r.Context(), profile, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.clearCookie(w, h.app.SignupCookieName)
	h.startSession(w, r, models.ActorStudent, student.ID)
	writeJSON(w, r, student)
}

// testAuth signs a student in without Google outside production.
func (h *Handler) testAuth(w http.ResponseWriter, r *http.Request) {
	var req models.TestAuthRequest
	if err := bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	student, err := h.services.Students.TestAuth(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.startSession(w, r, models.ActorStudent, student.ID)
	writeJSON(w, r, student)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	student, err := actorFrom[*models.Student](r, utils.StudentCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, student)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	student, err := actorFrom[*models.Student](r, utils.StudentCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateStudentRequest
	if err = bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.Students.Update(r.Context(), student, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, updated)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	student, err := actorFrom[*models.Student](r, utils.StudentCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.Students.Delete(r.Context(), student.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.clearCookie(w, h.app.StudentAuthCookieName)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) logoutStudent(w http.ResponseWriter, _ *http.Request) {
	h.clearCookie(w, h.app.StudentAuthCookieName)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) createJobApplication(w http.ResponseWriter, r *http.Request) {
	student, err := actorFrom[*models.Student](r, utils.StudentCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CreateJobApplicationRequest
	if err = bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	application, err := h.services.JobApplications.Apply(r.Context(), student, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, application)
}

func (h *Handler) deleteJobApplication(w http.ResponseWriter, r *http.Request) {
	student, err := actorFrom[*models.Student](r, utils.StudentCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.JobApplications.Withdraw(r.Context(), student.ID, paramValue(inputFrom(r), "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

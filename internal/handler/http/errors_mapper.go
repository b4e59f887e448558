package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
)

// errorReply is the response written for errors matching target. An empty
// message means the message is taken from the error itself.
type errorReply struct {
	target  error
	status  int
	message string
}

// errorReplies is ordered: several service errors wrap store.ErrNotFound and
// must be matched before it.
var errorReplies = []errorReply{
	{validators.ErrValidation, http.StatusBadRequest, ""},
	{store.ErrInvalidDocument, http.StatusBadRequest, ""},
	{errInvalidBody, http.StatusBadRequest, app.MsgInvalidBody},
	{errInvalidQuery, http.StatusBadRequest, app.MsgInvalidBody},
	{service.ErrAgencyAlreadyExists, http.StatusBadRequest, app.MsgAgencyAlreadyExists},
	{service.ErrInvalidApproval, http.StatusBadRequest, app.MsgApprovalActionInvalid},
	{service.ErrAgencyNotApproved, http.StatusBadRequest, app.MsgAgencyNotApprovedForApply},
	{service.ErrJobOfferNotOfAgency, http.StatusBadRequest, app.MsgJobOfferNotOfAgency},
	{service.ErrJobOfferExpired, http.StatusBadRequest, app.MsgJobOfferExpired},

	{service.ErrCaptchaRejected, http.StatusUnauthorized, app.MsgInvalidCaptcha},
	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrOAuthFailed, http.StatusUnauthorized, app.MsgOAuthFailed},
	{errInvalidOAuthState, http.StatusUnauthorized, app.MsgOAuthFailed},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrActorNotFound, http.StatusUnauthorized, app.MsgUnauthenticated},
	{errMissingCookie, http.StatusUnauthorized, app.MsgUnauthenticated},
	{errMissingActor, http.StatusUnauthorized, app.MsgUnauthenticated},

	{service.ErrForbidden, http.StatusForbidden, app.MsgForbidden},
	{service.ErrInvalidStudentEmail, http.StatusForbidden, app.MsgInvalidStudentEmail},

	{service.ErrAgencyNotFound, http.StatusNotFound, app.MsgAgencyNotFound},
	{service.ErrStudentNotFound, http.StatusNotFound, app.MsgStudentNotFound},
	{service.ErrJobOfferNotFound, http.StatusNotFound, app.MsgJobOfferNotFound},
	{service.ErrJobApplicationNotFound, http.StatusNotFound, app.MsgJobApplicationMissing},
	{service.ErrTestAuthDisabled, http.StatusNotFound, app.MsgTestAuthDisabled},
	{store.ErrNotFound, http.StatusNotFound, app.MsgDocumentNotFound},

	{errRateLimited, http.StatusTooManyRequests, app.MsgTooManyRequests},

	{service.ErrCaptchaUnavailable, http.StatusInternalServerError, app.MsgCaptchaVerifyFailed},
}

// replyFromError returns the status and client message for err. Unknown
// errors are answered with 500 "unknown error".
func replyFromError(err error) (int, string) {
	for _, reply := range errorReplies {
		if !errors.Is(err, reply.target) {
			continue
		}
		if reply.message != "" {
			return reply.status, reply.message
		}
		return reply.status, messageOf(err)
	}
	return http.StatusInternalServerError, app.MsgUnknownError
}

func messageOf(err error) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	var documentErr *store.DocumentError
	if errors.As(err, &documentErr) && documentErr.Message != "" {
		return documentErr.Message
	}
	return app.MsgUnknownError
}

// writeError answers the request with the reply mapped from err. Server-side
// failures are logged with their full detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := replyFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, r, message, status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteError(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeMessage").Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}

package http

import (
	"net/http"

	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// newPasswordResponse carries a rotated secretary password. It is shown once.
type newPasswordResponse struct {
	Password string `json:"password"`
}

func (h *Handler) approveAgency(w http.ResponseWriter, r *http.Request) {
	in := inputFrom(r)

	agency, err := h.services.Approval.Transition(r.Context(), paramValue(in, "agencyId"), models.ApprovalAction(queryValue(in, "action")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, agency)
}

func (h *Handler) secretaryDeleteAgency(w http.ResponseWriter, r *http.Request) {
	in := inputFrom(r)

	if err := h.services.Moderation.DeleteAgency(r.Context(), paramValue(in, "agencyId"), notifyAgency(in.Query)); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) secretaryDeleteJobOffer(w http.ResponseWriter, r *http.Request) {
	in := inputFrom(r)

	if err := h.services.Moderation.DeleteJobOffer(r.Context(), paramValue(in, "jobOfferId"), notifyAgency(in.Query)); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) rotateSecretaryPassword(w http.ResponseWriter, r *http.Request) {
	secretary, err := actorFrom[*models.Secretary](r, utils.SecretaryCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	password, err := h.services.Secretaries.RotatePassword(r.Context(), secretary)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, newPasswordResponse{Password: password})
}

// notifyAgency is true unless the secretary passed notifyAgency=no.
func notifyAgency(query map[string]any) bool {
	value, _ := query["notifyAgency"].(string)
	return value != "no"
}

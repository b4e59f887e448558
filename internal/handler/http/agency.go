package http

import (
	"net/http"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

func (h *Handler) createAgency(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgencyRequest
	if err := bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	agency, err := h.services.Agencies.Register(r.Context(), req, clientIP(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.startSession(w, r, models.ActorAgency, agency.ID)
	writeJSON(w, r, agency)
}

func (h *Handler) loginAgency(w http.ResponseWriter, r *http.Request) {
	var req models.AgencyLoginRequest
	if err := bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	agency, err := h.services.Agencies.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("agency_id", agency.ID).Msg("agency logged in")
	h.startSession(w, r, models.ActorAgency, agency.ID)
	writeJSON(w, r, agency)
}

func (h *Handler) logoutAgency(w http.ResponseWriter, _ *http.Request) {
	h.clearCookie(w, h.app.AgencyAuthCookieName)
	w.WriteHeader(http.StatusOK)
}

// getAgency returns the authenticated agency with its job offers and the
// applications it received.
func (h *Handler) getAgency(w http.ResponseWriter, r *http.Request) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	details, err := h.services.Agencies.Details(r.Context(), agency.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, details)
}

func (h *Handler) updateAgency(w http.ResponseWriter, r *http.Request) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateAgencyRequest
	if err = bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.Agencies.Update(r.Context(), agency, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, updated)
}

func (h *Handler) deleteAgency(w http.ResponseWriter, r *http.Request) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.Agencies.Delete(r.Context(), agency.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.clearCookie(w, h.app.AgencyAuthCookieName)
	w.WriteHeader(http.StatusOK)
}

// listAgencies returns the approved agencies in their public projection.
func (h *Handler) listAgencies(w http.ResponseWriter, r *http.Request) {
	query, err := listQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	agencies, err := h.services.Agencies.ListApproved(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if agencies == nil {
		agencies = []models.Agency{}
	}
	writeJSON(w, r, agencies)
}

// getApprovedAgency returns an approved agency and its job offers to a
// student.
func (h *Handler) getApprovedAgency(w http.ResponseWriter, r *http.Request) {
	details, err := h.services.Agencies.GetApproved(r.Context(), paramValue(inputFrom(r), "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, details)
}

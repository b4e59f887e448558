package http

import (
	"net/http"

	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

func (h *Handler) createJobOffer(w http.ResponseWriter, r *http.Request) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CreateJobOfferRequest
	if err = bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	offer, err := h.services.JobOffers.Create(r.Context(), agency, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, offer)
}

func (h *Handler) getJobOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.services.JobOffers.Get(r.Context(), paramValue(inputFrom(r), "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, offer)
}

func (h *Handler) updateJobOffer(w http.ResponseWriter, r *http.Request) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateJobOfferRequest
	if err = bind(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	offer, err := h.services.JobOffers.Update(r.Context(), agency.ID, paramValue(inputFrom(r), "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, offer)
}

func (h *Handler) deleteJobOffer(w http.ResponseWriter, r *http.Request) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.JobOffers.Delete(r.Context(), agency.ID, paramValue(inputFrom(r), "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// listJobOffers returns the open offers of approved agencies.
func (h *Handler) listJobOffers(w http.ResponseWriter, r *http.Request) {
	query, err := listQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	offers, err := h.services.JobOffers.ListOpen(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if offers == nil {
		offers = []models.JobOffer{}
	}
	writeJSON(w, r, offers)
}

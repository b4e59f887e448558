package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the API. Unknown routes and unsupported methods
// both answer 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// set before mounting so sub-routers inherit them
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/agency", h.agencyRoutes)
		r.Route("/student", h.studentRoutes)
		r.Route("/joboffer", h.jobOfferRoutes)
		r.Route("/secretary", h.secretaryRoutes)
	})

	return router
}

func (h *Handler) agencyRoutes(r chi.Router) {
	r.With(h.rateLimit("agency-create"), h.validate(h.schemas.CreateAgency)).Post("/", h.createAgency)
	r.With(h.rateLimit("agency-login"), h.validate(h.schemas.AgencyLogin)).Post("/login", h.loginAgency)
	r.Get("/logout", h.logoutAgency)
	r.With(h.validate(h.schemas.ListAgencies)).Get("/list", h.listAgencies)

	r.Group(func(r chi.Router) {
		r.Use(h.agencyAuth)
		r.Get("/", h.getAgency)
		r.With(h.validate(h.schemas.UpdateAgency)).Put("/", h.updateAgency)
		r.Delete("/", h.deleteAgency)
	})
}

func (h *Handler) studentRoutes(r chi.Router) {
	r.Get("/auth/google", h.googleAuth)
	r.Get("/auth/google/callback", h.googleCallback)
	r.With(h.rateLimit("student-testauth"), h.validate(h.schemas.TestAuth)).Post("/auth/testauth", h.testAuth)
	r.With(h.signupAuth, h.validate(h.schemas.CreateStudent)).Post("/", h.createStudent)
	r.Get("/logout", h.logoutStudent)

	r.Group(func(r chi.Router) {
		r.Use(h.studentAuth)
		r.Get("/", h.getStudent)
		r.With(h.validate(h.schemas.UpdateStudent)).Put("/", h.updateStudent)
		r.Delete("/", h.deleteStudent)
		r.With(h.validate(h.schemas.ListAgencies)).Get("/agencies", h.listAgencies)
		r.With(h.validate(h.schemas.StudentAgency)).Get("/agency/{id}", h.getApprovedAgency)
		r.With(h.validate(h.schemas.ListJobOffers)).Get("/joboffers", h.listJobOffers)
		r.With(h.validate(h.schemas.CreateJobApply)).Post("/jobapplication", h.createJobApplication)
		r.With(h.validate(h.schemas.JobApplication)).Delete("/jobapplication/{id}", h.deleteJobApplication)
	})
}

func (h *Handler) jobOfferRoutes(r chi.Router) {
	r.With(h.validate(h.schemas.JobOffer)).Get("/{id}", h.getJobOffer)

	r.Group(func(r chi.Router) {
		r.Use(h.agencyAuth)
		r.With(h.validate(h.schemas.CreateJobOffer, withAuthenticatedAgency)).Post("/", h.createJobOffer)
		r.With(h.validate(h.schemas.UpdateJobOffer)).Put("/{id}", h.updateJobOffer)
		r.With(h.validate(h.schemas.JobOffer)).Delete("/{id}", h.deleteJobOffer)
	})
}

func (h *Handler) secretaryRoutes(r chi.Router) {
	r.Use(h.rateLimit("secretary"), h.secretaryAuth)

	approve := r.With(h.validate(h.schemas.ApproveAgency))
	approve.Get("/approve/{agencyId}", h.approveAgency)
	approve.Post("/approve/{agencyId}", h.approveAgency)

	r.With(h.validate(h.schemas.DeleteAgency)).Get("/deleteagency/{agencyId}", h.secretaryDeleteAgency)
	r.With(h.validate(h.schemas.DeleteJobOffer)).Get("/deletejoboffer/{jobOfferId}", h.secretaryDeleteJobOffer)
	r.Get("/newpassword", h.rotateSecretaryPassword)
}

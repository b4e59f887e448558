package store

import (
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
)

// Repositories groups every PostgreSQL-backed repository.
type Repositories struct {
	Students        StudentRepository
	Agencies        AgencyRepository
	Secretaries     SecretaryRepository
	JobOffers       JobOfferRepository
	JobApplications JobApplicationRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	ids := utils.NewUUIDGenerator()

	return &Repositories{
		Students:        NewStudentRepository(db, ids, log),
		Agencies:        NewAgencyRepository(db, ids, log),
		Secretaries:     NewSecretaryRepository(db, ids, log),
		JobOffers:       NewJobOfferRepository(db, ids, log),
		JobApplications: NewJobApplicationRepository(db, ids, log),
	}
}

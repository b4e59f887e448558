package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// StudentFilter selects students. Zero fields are ignored.
type StudentFilter struct {
	ID       string
	GoogleID string
}

func (f StudentFilter) where() sq.And {
	cond := sq.And{}
	if f.ID != "" {
		cond = append(cond, sq.Eq{"students.id": f.ID})
	}
	if f.GoogleID != "" {
		cond = append(cond, sq.Eq{"students.google_id": f.GoogleID})
	}
	return cond
}

// AgencyIdentity holds the fields that must be unique across agencies.
type AgencyIdentity struct {
	AgencyName string
	Email      string
	VATCode    string
	// ExcludeID skips the agency being updated.
	ExcludeID string
}

// AgencyFilter selects agencies. Zero fields are ignored.
type AgencyFilter struct {
	ID             string
	Email          string
	ApprovalStatus models.ApprovalStatus

	// OffersFieldOfStudy keeps agencies publishing at least one offer for
	// the given field of study (or for any field).
	OffersFieldOfStudy models.FieldOfStudy

	// Conflicting matches agencies sharing any identity field.
	Conflicting *AgencyIdentity
}

func (f AgencyFilter) where() sq.And {
	cond := sq.And{}
	if f.ID != "" {
		cond = append(cond, sq.Eq{"agencies.id": f.ID})
	}
	if f.Email != "" {
		cond = append(cond, sq.Eq{"agencies.email": f.Email})
	}
	if f.ApprovalStatus != "" {
		cond = append(cond, sq.Eq{"agencies.approval_status": string(f.ApprovalStatus)})
	}
	if f.OffersFieldOfStudy != "" {
		cond = append(cond, sq.Expr(
			"EXISTS (SELECT 1 FROM job_offers o WHERE o.agency_id = agencies.id AND o.field_of_study IN (?, ?))",
			string(f.OffersFieldOfStudy), string(models.FieldOfStudyAny),
		))
	}
	if c := f.Conflicting; c != nil {
		cond = append(cond, sq.Or{
			sq.Eq{"agencies.agency_name": c.AgencyName},
			sq.Eq{"agencies.email": c.Email},
			sq.Eq{"agencies.vat_code": c.VATCode},
		})
		if c.ExcludeID != "" {
			cond = append(cond, sq.NotEq{"agencies.id": c.ExcludeID})
		}
	}
	return cond
}

// SecretaryFilter selects secretaries. Zero fields are ignored.
type SecretaryFilter struct {
	ID       string
	Username string
}

func (f SecretaryFilter) where() sq.And {
	cond := sq.And{}
	if f.ID != "" {
		cond = append(cond, sq.Eq{"secretaries.id": f.ID})
	}
	if f.Username != "" {
		cond = append(cond, sq.Eq{"secretaries.username": f.Username})
	}
	return cond
}

// JobOfferFilter selects job offers. Zero fields are ignored.
type JobOfferFilter struct {
	ID       string
	AgencyID string

	// FieldOfStudy keeps offers for the given field and offers open to any field.
	FieldOfStudy models.FieldOfStudy

	// ApprovedAgenciesOnly hides offers whose agency is not approved.
	ApprovedAgenciesOnly bool

	// NotExpiredAt keeps offers expiring strictly after the instant.
	NotExpiredAt time.Time
}

func (f JobOfferFilter) where() sq.And {
	cond := sq.And{}
	if f.ID != "" {
		cond = append(cond, sq.Eq{"job_offers.id": f.ID})
	}
	if f.AgencyID != "" {
		cond = append(cond, sq.Eq{"job_offers.agency_id": f.AgencyID})
	}
	if f.FieldOfStudy != "" {
		cond = append(cond, sq.Eq{"job_offers.field_of_study": []string{
			string(f.FieldOfStudy), string(models.FieldOfStudyAny),
		}})
	}
	if f.ApprovedAgenciesOnly {
		cond = append(cond, sq.Expr(
			"job_offers.agency_id IN (SELECT a.id FROM agencies a WHERE a.approval_status = ?)",
			string(models.ApprovalApproved),
		))
	}
	if !f.NotExpiredAt.IsZero() {
		cond = append(cond, sq.Gt{"job_offers.expiry_date": f.NotExpiredAt})
	}
	return cond
}

// JobApplicationFilter selects job applications. Zero fields are ignored.
type JobApplicationFilter struct {
	ID         string
	StudentID  string
	AgencyID   string
	JobOfferID string
}

func (f JobApplicationFilter) where() sq.And {
	cond := sq.And{}
	if f.ID != "" {
		cond = append(cond, sq.Eq{"job_applications.id": f.ID})
	}
	if f.StudentID != "" {
		cond = append(cond, sq.Eq{"job_applications.student_id": f.StudentID})
	}
	if f.AgencyID != "" {
		cond = append(cond, sq.Eq{"job_applications.agency_id": f.AgencyID})
	}
	if f.JobOfferID != "" {
		cond = append(cond, sq.Eq{"job_applications.job_offer_id": f.JobOfferID})
	}
	return cond
}

// applyWhere attaches cond to b unless it is empty.
func applyWhere(b sq.SelectBuilder, cond sq.And) sq.SelectBuilder {
	if len(cond) == 0 {
		return b
	}
	return b.Where(cond)
}

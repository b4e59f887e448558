package models

import "time"

// JobOffer is a position published by an approved agency.
type JobOffer struct {
	ID                string       `json:"_id"`
	AgencyID          string       `json:"agency"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	FieldOfStudy      FieldOfStudy `json:"fieldOfStudy"`
	ExpiryDate        time.Time    `json:"expiryDate"`
	MustHaveDiploma   bool         `json:"mustHaveDiploma"`
	NumberOfPositions int          `json:"numberOfPositions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsExpired reports whether the offer is no longer open at now.
func (o JobOffer) IsExpired(now time.Time) bool {
	return !o.ExpiryDate.After(now)
}

// TableName returns the name of the database table associated with JobOffer.
func (o JobOffer) TableName() string {
	return "job_offers"
}

// JobApplication links a student to an agency and optionally to one of its
// offers.
type JobApplication struct {
	ID         string `json:"_id"`
	StudentID  string `json:"student"`
	AgencyID   string `json:"forAgency"`
	JobOfferID string `json:"forJobOffer,omitempty"`
	Message    string `json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with
// JobApplication.
func (a JobApplication) TableName() string {
	return "job_applications"
}

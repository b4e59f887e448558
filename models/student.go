package models

import "time"

// Student is a pupil of the school, signed in through Google.
type Student struct {
	ID       string `json:"_id"`
	GoogleID string `json:"googleId"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FiscalNumber string `json:"fiscalNumber"`
	Curriculum   string `json:"curriculum,omitempty"`
	Email        string `json:"email"`
	PictureURL   string `json:"pictureUrl"`
	PhoneNumber  string `json:"phoneNumber"`

	FieldOfStudy      FieldOfStudy `json:"fieldOfStudy"`
	HasDrivingLicense bool         `json:"hasDrivingLicense"`
	CanTravel         bool         `json:"canTravel"`

	JobApplications []string `json:"jobApplications"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with Student.
func (s Student) TableName() string {
	return "students"
}

// GoogleProfile is the part of the Google userinfo response a student
// account is built from.
type GoogleProfile struct {
	GoogleID   string `json:"googleId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	PictureURL string `json:"pictureUrl"`
}

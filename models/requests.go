package models

import "time"

// CreateAgencyRequest is the body of the agency registration route.
type CreateAgencyRequest struct {
	ResponsibleFirstName    string `json:"responsibleFirstName"`
	ResponsibleLastName     string `json:"responsibleLastName"`
	ResponsibleFiscalNumber string `json:"responsibleFiscalNumber"`
	Email                   string `json:"email"`
	Password                string `json:"password"`
	WebsiteURL              string `json:"websiteUrl"`
	PhoneNumber             string `json:"phoneNumber"`
	AgencyName              string `json:"agencyName"`
	AgencyDescription       string `json:"agencyDescription"`
	AgencyAddress           string `json:"agencyAddress"`
	VATCode                 string `json:"vatCode"`
	LogoURL                 string `json:"logoUrl"`
	BannerURL               string `json:"bannerUrl"`
	Captcha                 string `json:"captcha"`
}

// UpdateAgencyRequest carries the agency fields to change. Nil fields are
// left untouched.
type UpdateAgencyRequest struct {
	ResponsibleFirstName    *string `json:"responsibleFirstName"`
	ResponsibleLastName     *string `json:"responsibleLastName"`
	ResponsibleFiscalNumber *string `json:"responsibleFiscalNumber"`
	Email                   *string `json:"email"`
	Password                *string `json:"password"`
	WebsiteURL              *string `json:"websiteUrl"`
	PhoneNumber             *string `json:"phoneNumber"`
	AgencyName              *string `json:"agencyName"`
	AgencyDescription       *string `json:"agencyDescription"`
	AgencyAddress           *string `json:"agencyAddress"`
	VATCode                 *string `json:"vatCode"`
	LogoURL                 *string `json:"logoUrl"`
	BannerURL               *string `json:"bannerUrl"`
}

// AgencyLoginRequest is the body of the agency login route.
type AgencyLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateStudentRequest completes a Google signup with the data Google does
// not provide.
type CreateStudentRequest struct {
	FiscalNumber      string       `json:"fiscalNumber"`
	Curriculum        string       `json:"curriculum"`
	PhoneNumber       string       `json:"phoneNumber"`
	FieldOfStudy      FieldOfStudy `json:"fieldOfStudy"`
	HasDrivingLicense bool         `json:"hasDrivingLicense"`
	CanTravel         bool         `json:"canTravel"`
}

// TestAuthRequest creates or signs in a student without Google. Only
// available outside production.
type TestAuthRequest struct {
	GoogleID   string `json:"googleId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	PictureURL string `json:"pictureUrl"`

	CreateStudentRequest
}

// UpdateStudentRequest carries the student fields to change.
type UpdateStudentRequest struct {
	Curriculum        *string       `json:"curriculum"`
	PhoneNumber       *string       `json:"phoneNumber"`
	FieldOfStudy      *FieldOfStudy `json:"fieldOfStudy"`
	HasDrivingLicense *bool         `json:"hasDrivingLicense"`
	CanTravel         *bool         `json:"canTravel"`
}

// CreateJobOfferRequest is the body of the job offer creation route.
type CreateJobOfferRequest struct {
	AgencyID          string       `json:"agency"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	FieldOfStudy      FieldOfStudy `json:"fieldOfStudy"`
	ExpiryDate        time.Time    `json:"expiryDate"`
	MustHaveDiploma   bool         `json:"mustHaveDiploma"`
	NumberOfPositions int          `json:"numberOfPositions"`
}

// UpdateJobOfferRequest carries the job offer fields to change.
type UpdateJobOfferRequest struct {
	Title             *string       `json:"title"`
	Description       *string       `json:"description"`
	FieldOfStudy      *FieldOfStudy `json:"fieldOfStudy"`
	ExpiryDate        *time.Time    `json:"expiryDate"`
	MustHaveDiploma   *bool         `json:"mustHaveDiploma"`
	NumberOfPositions *int          `json:"numberOfPositions"`
}

// CreateJobApplicationRequest is the body of the apply route.
type CreateJobApplicationRequest struct {
	AgencyID   string `json:"forAgency"`
	JobOfferID string `json:"forJobOffer"`
	Message    string `json:"message"`
}

// ListQuery holds listing filters and pagination taken from the query string.
type ListQuery struct {
	FieldOfStudy FieldOfStudy
	Skip         uint64
	Limit        uint64
}

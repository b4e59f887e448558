package models

import "time"

// ApprovalStatus is the moderation state of an agency.
type ApprovalStatus string

const (
	ApprovalWaiting  ApprovalStatus = "waiting"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ApprovalAction is the secretary's decision on an agency.
type ApprovalAction string

const (
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
)

// TargetStatus returns the approval status the action leads to.
// ok is false for unknown actions.
func (a ApprovalAction) TargetStatus() (status ApprovalStatus, ok bool) {
	switch a {
	case ActionApprove:
		return ApprovalApproved, true
	case ActionReject:
		return ApprovalRejected, true
	default:
		return "", false
	}
}

// Agency is a hiring company registered on the board.
//
// HashedPassword is never serialized. The responsible person and the approval
// fields are omitted from public listings by leaving them empty.
type Agency struct {
	ID string `json:"_id"`

	ResponsibleFirstName    string `json:"responsibleFirstName,omitempty"`
	ResponsibleLastName     string `json:"responsibleLastName,omitempty"`
	ResponsibleFiscalNumber string `json:"responsibleFiscalNumber,omitempty"`

	Email          string `json:"email"`
	HashedPassword string `json:"-"`

	WebsiteURL        string `json:"websiteUrl"`
	PhoneNumber       string `json:"phoneNumber"`
	AgencyName        string `json:"agencyName"`
	AgencyDescription string `json:"agencyDescription"`
	AgencyAddress     string `json:"agencyAddress"`
	VATCode           string `json:"vatCode"`
	LogoURL           string `json:"logoUrl,omitempty"`
	BannerURL         string `json:"bannerUrl,omitempty"`

	ApprovalStatus ApprovalStatus `json:"approvalStatus,omitempty"`
	ApprovalDate   *time.Time     `json:"approvalDate,omitempty"`

	JobOffers       []string `json:"jobOffers"`
	JobApplications []string `json:"jobApplications,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsApproved reports whether the agency may publish offers and receive
// applications.
func (a Agency) IsApproved() bool {
	return a.ApprovalStatus == ApprovalApproved
}

// AgencyDetails is an agency with its offers and received applications
// populated instead of listed by id.
type AgencyDetails struct {
	*Agency
	JobOffers       []JobOffer       `json:"jobOffers"`
	JobApplications []JobApplication `json:"jobApplications,omitempty"`
}

// TableName returns the name of the database table associated with Agency.
func (a Agency) TableName() string {
	return "agencies"
}

package validators

import (
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

const (
	studentMinAge     = 16
	responsibleMinAge = 18
	jobOfferMaxMonths = 12
)

// Schemas holds the rule table of every route that takes input.
type Schemas struct {
	CreateAgency Validator
	UpdateAgency Validator
	AgencyLogin  Validator
	ListAgencies Validator

	CreateStudent  Validator
	TestAuth       Validator
	UpdateStudent  Validator
	StudentAgency  Validator
	ListJobOffers  Validator
	CreateJobApply Validator
	JobApplication Validator

	CreateJobOffer Validator
	UpdateJobOffer Validator
	JobOffer       Validator

	ApproveAgency  Validator
	DeleteAgency   Validator
	DeleteJobOffer Validator
}

// NewSchemas builds the route schemas.
func NewSchemas(deps Dependencies) *Schemas {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	agencyFields := func(optional bool) []Field {
		return []Field{
			{Name: "responsibleFirstName", In: InBody, Optional: optional, Rule: stringRule(1, 100), Missing: app.MsgResponsibleFirstNameMissing, Invalid: app.MsgResponsibleFirstNameLength, Sanitize: TrimSpace},
			{Name: "responsibleLastName", In: InBody, Optional: optional, Rule: stringRule(1, 100), Missing: app.MsgResponsibleLastNameMissing, Invalid: app.MsgResponsibleLastNameLength, Sanitize: TrimSpace},
			{Name: "responsibleFiscalNumber", In: InBody, Optional: optional, Rule: stringRule(0, 0), Missing: app.MsgFiscalNumberMissing, Invalid: app.MsgInvalidFiscalNumber,
				Checks: []Check{FiscalCodeOfAge(responsibleMinAge, app.MsgResponsibleTooYoung, now)}, Sanitize: UpperCase},
			{Name: "websiteUrl", In: InBody, Optional: optional, Rule: urlRule(), Missing: app.MsgWebsiteURLMissing, Invalid: app.MsgWebsiteURLInvalid,
				Checks: []Check{URLExists(deps.Prober, app.MsgWebsiteURLDoesntExist)}},
			{Name: "email", In: InBody, Optional: optional, Rule: emailRule(), Missing: app.MsgEmailMissing, Invalid: app.MsgInvalidEmail, Sanitize: LowerCase},
			{Name: "password", In: InBody, Optional: optional, Rule: stringRule(8, 64), Missing: app.MsgPasswordMissing, Invalid: app.MsgPasswordLength},
			{Name: "phoneNumber", In: InBody, Optional: optional, Rule: stringRule(0, 0), Missing: app.MsgPhoneNumberMissing, Invalid: app.MsgInvalidPhoneNumber,
				Checks: []Check{PhoneNumber()}, Sanitize: PhoneE164},
			{Name: "agencyName", In: InBody, Optional: optional, Rule: stringRule(1, 100), Missing: app.MsgAgencyNameMissing, Invalid: app.MsgAgencyNameLength, Sanitize: TrimSpace},
			{Name: "agencyDescription", In: InBody, Optional: optional, Rule: stringRule(16, 1000), Missing: app.MsgAgencyDescriptionMissing, Invalid: app.MsgAgencyDescriptionLength},
			{Name: "agencyAddress", In: InBody, Optional: optional, Rule: stringRule(3, 0), Missing: app.MsgAgencyAddressMissing, Invalid: app.MsgAgencyAddressLength, Sanitize: TrimSpace},
			{Name: "vatCode", In: InBody, Optional: optional, Rule: stringRule(2, 32), Missing: app.MsgVATCodeMissing, Invalid: app.MsgVATCodeLength, Sanitize: TrimSpace},
			{Name: "logoUrl", In: InBody, Optional: true, Rule: urlRule(), Invalid: app.MsgLogoURLInvalid,
				Checks: []Check{URLExists(deps.Prober, app.MsgLogoURLDoesntExist)}},
			{Name: "bannerUrl", In: InBody, Optional: true, Rule: urlRule(), Invalid: app.MsgBannerURLInvalid,
				Checks: []Check{URLExists(deps.Prober, app.MsgBannerURLDoesntExist)}},
		}
	}

	studentFields := func(optional bool) []Field {
		return []Field{
			{Name: "curriculum", In: InBody, Optional: true, Rule: urlRule(), Invalid: app.MsgCurriculumInvalid},
			{Name: "phoneNumber", In: InBody, Optional: optional, Rule: stringRule(0, 0), Missing: app.MsgPhoneNumberMissing, Invalid: app.MsgInvalidPhoneNumber,
				Checks: []Check{PhoneNumber()}, Sanitize: PhoneE164},
			{Name: "fieldOfStudy", In: InBody, Optional: optional, Rule: enumRule(models.StudentFieldsOfStudy...), Missing: app.MsgFieldOfStudyMissing, Invalid: app.MsgInvalidFieldOfStudy},
			{Name: "hasDrivingLicense", In: InBody, Optional: true, Rule: booleanRule(), Invalid: app.MsgDrivingLicenseBool},
			{Name: "canTravel", In: InBody, Optional: true, Rule: booleanRule(), Invalid: app.MsgCanTravelBool},
		}
	}
	studentFiscalNumber := Field{Name: "fiscalNumber", In: InBody, Rule: stringRule(0, 0), Missing: app.MsgFiscalNumberMissing, Invalid: app.MsgInvalidFiscalNumber,
		Checks: []Check{FiscalCodeOfAge(studentMinAge, app.MsgStudentTooYoung, now)}, Sanitize: UpperCase}

	jobOfferFields := func(optional bool) []Field {
		return []Field{
			{Name: "title", In: InBody, Optional: optional, Rule: stringRule(5, 32), Missing: app.MsgTitleMissing, Invalid: app.MsgTitleLength, Sanitize: TrimSpace},
			{Name: "description", In: InBody, Optional: optional, Rule: stringRule(50, 3000), Missing: app.MsgDescriptionMissing, Invalid: app.MsgDescriptionLength},
			{Name: "fieldOfStudy", In: InBody, Optional: optional, Rule: enumRule(models.JobOfferFieldsOfStudy...), Missing: app.MsgFieldOfStudyMissing, Invalid: app.MsgInvalidFieldOfStudy},
			{Name: "expiryDate", In: InBody, Optional: optional, Rule: stringRule(0, 0), Missing: app.MsgExpiryDateMissing, Invalid: app.MsgExpiryDateInvalid,
				Checks: []Check{ExpiryWithin(jobOfferMaxMonths, now)}, Sanitize: DateRFC3339},
			{Name: "mustHaveDiploma", In: InBody, Optional: optional, Rule: booleanRule(), Missing: app.MsgMustHaveDiplomaMissing, Invalid: app.MsgMustHaveDiplomaInvalid},
			{Name: "numberOfPositions", In: InBody, Optional: optional, Rule: integerRule(1, 10), Missing: app.MsgNumberOfPositionsMissing, Invalid: app.MsgNumberOfPositionsInvalid},
		}
	}

	pagination := []Field{
		{Name: "skip", In: InQuery, Optional: true, Rule: digitsRule(), Invalid: app.MsgSkipInvalid},
		{Name: "limit", In: InQuery, Optional: true, Rule: digitsRule(), Invalid: app.MsgLimitInvalid},
	}
	notifyAgency := Field{Name: "notifyAgency", In: InQuery, Optional: true, Rule: enumRule("yes", "no"), Invalid: app.MsgNotifyAgencyInvalid}

	return &Schemas{
		CreateAgency: MustSchema(append(agencyFields(false),
			Field{Name: "captcha", In: InBody, Rule: stringRule(1, 0), Invalid: app.MsgInvalidCaptchaCode},
		)...),
		UpdateAgency: MustSchema(agencyFields(true)...),
		AgencyLogin: MustSchema(
			Field{Name: "email", In: InBody, Rule: emailRule(), Missing: app.MsgEmailMissing, Invalid: app.MsgInvalidEmail, Sanitize: LowerCase},
			Field{Name: "password", In: InBody, Rule: stringRule(1, 0), Invalid: app.MsgPasswordMissing},
		),
		ListAgencies: MustSchema(append([]Field{
			{Name: "fieldOfStudy", In: InQuery, Optional: true, Rule: enumRule(models.StudentFieldsOfStudy...), Invalid: app.MsgInvalidFieldOfStudy},
		}, pagination...)...),

		CreateStudent: MustSchema(append([]Field{studentFiscalNumber}, studentFields(false)...)...),
		TestAuth: MustSchema(append([]Field{
			{Name: "googleId", In: InBody, Rule: stringRule(1, 0), Invalid: app.MsgGoogleIDInvalid},
			{Name: "firstName", In: InBody, Rule: stringRule(1, 0), Missing: app.MsgFirstNameMissing, Invalid: app.MsgFirstNameInvalid, Sanitize: TrimSpace},
			{Name: "lastName", In: InBody, Rule: stringRule(1, 0), Missing: app.MsgLastNameMissing, Invalid: app.MsgLastNameInvalid, Sanitize: TrimSpace},
			{Name: "email", In: InBody, Rule: emailRule(), Missing: app.MsgEmailMissing, Invalid: app.MsgInvalidEmail,
				Checks: []Check{EmailSuffix(deps.EmailSuffix)}, Sanitize: LowerCase},
			{Name: "pictureUrl", In: InBody, Optional: true, Rule: urlRule(), Invalid: app.MsgPictureURLInvalid},
			studentFiscalNumber,
		}, studentFields(false)...)...),
		UpdateStudent: MustSchema(studentFields(true)...),
		StudentAgency: MustSchema(idField("id", app.MsgInvalidID)),
		ListJobOffers: MustSchema(pagination...),
		CreateJobApply: MustSchema(
			Field{Name: "forAgency", In: InBody, Rule: stringRule(0, 0), Missing: app.MsgAgencyIDMissing, Invalid: app.MsgAgencyIDInvalid,
				Checks: []Check{ID(app.MsgAgencyIDInvalid)}},
			Field{Name: "forJobOffer", In: InBody, Optional: true, Rule: stringRule(0, 0), Invalid: app.MsgApplicationJobOffer,
				Checks: []Check{ID(app.MsgApplicationJobOffer)}},
			Field{Name: "message", In: InBody, Rule: stringRule(1, 3000), Missing: app.MsgApplicationMsgAbsent, Invalid: app.MsgApplicationMessage},
		),
		JobApplication: MustSchema(idField("id", app.MsgInvalidID)),

		CreateJobOffer: MustSchema(append([]Field{
			{Name: "agency", In: InBody, Rule: stringRule(0, 0), Missing: app.MsgAgencyIDMissing, Invalid: app.MsgAgencyIDInvalid,
				Checks: []Check{AgencyApproved(deps.Agencies)}},
		}, jobOfferFields(false)...)...),
		UpdateJobOffer: MustSchema(append([]Field{idField("id", app.MsgInvalidID)}, jobOfferFields(true)...)...),
		JobOffer:       MustSchema(idField("id", app.MsgInvalidID)),

		ApproveAgency: MustSchema(
			idField("agencyId", app.MsgInvalidID),
			Field{Name: "action", In: InQuery, Rule: enumRule(string(models.ActionApprove), string(models.ActionReject)),
				Missing: app.MsgApprovalActionMissing, Invalid: app.MsgApprovalActionInvalid},
		),
		DeleteAgency:   MustSchema(idField("agencyId", app.MsgInvalidID), notifyAgency),
		DeleteJobOffer: MustSchema(idField("jobOfferId", app.MsgInvalidID), notifyAgency),
	}
}

func idField(name, message string) Field {
	return Field{Name: name, In: InParams, Rule: stringRule(0, 0), Invalid: message, Checks: []Check{ID(message)}}
}

// stringRule limits the length in characters. Zero bounds are not enforced.
func stringRule(minLength, maxLength int) map[string]any {
	rule := map[string]any{"type": "string"}
	if minLength > 0 {
		rule["minLength"] = minLength
	}
	if maxLength > 0 {
		rule["maxLength"] = maxLength
	}
	return rule
}

func enumRule(values ...string) map[string]any {
	return map[string]any{"type": "string", "enum": values}
}

func booleanRule() map[string]any {
	return map[string]any{"type": "boolean"}
}

func integerRule(minimum, maximum int) map[string]any {
	return map[string]any{"type": "integer", "minimum": minimum, "maximum": maximum}
}

func emailRule() map[string]any {
	return map[string]any{"type": "string", "format": "email"}
}

func urlRule() map[string]any {
	return map[string]any{"type": "string", "format": "uri", "pattern": "^https?://"}
}

func digitsRule() map[string]any {
	return map[string]any{"type": "string", "pattern": "^[0-9]+$"}
}

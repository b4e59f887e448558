package app

// Validation messages, reported by the rule tables of the validators package.
const (
	MsgInvalidID = "Invalid ObjectId"

	MsgResponsibleFirstNameMissing = "Agency's responsible first name not specified"
	MsgResponsibleFirstNameLength  = "Agency's responsible first name must be 1-100 characters long"
	MsgResponsibleLastNameMissing  = "Agency's responsible last name not specified"
	MsgResponsibleLastNameLength   = "Agency's responsible last name must be 1-100 characters long"

	MsgFiscalNumberMissing      = "Fiscal number not specified"
	MsgInvalidFiscalNumber      = "Invalid fiscal number"
	MsgResponsibleTooYoung      = "Agency's responsible must be at least 18"
	MsgStudentTooYoung          = "Student must be at least 16"
	MsgWebsiteURLMissing        = "Website URL not specified"
	MsgWebsiteURLInvalid        = "Website URL must be a valid URL"
	MsgWebsiteURLDoesntExist    = "Website URL doesn't exist"
	MsgLogoURLInvalid           = "Logo URL must be an URL"
	MsgLogoURLDoesntExist       = "Logo URL doesn't exist"
	MsgBannerURLInvalid         = "Banner URL must be an URL"
	MsgBannerURLDoesntExist     = "Banner URL doesn't exist"
	MsgEmailMissing             = "Email not specified"
	MsgInvalidEmail             = "Invalid email"
	MsgPasswordMissing          = "Password not specified"
	MsgPasswordLength           = "Password must be between 8-64 characters long"
	MsgPhoneNumberMissing       = "Phone number not specified"
	MsgInvalidPhoneNumber       = "Invalid phone number"
	MsgAgencyNameMissing        = "Agency name not specified"
	MsgAgencyNameLength         = "Invalid agency name length"
	MsgAgencyDescriptionMissing = "Agency description not specified"
	MsgAgencyDescriptionLength  = "Description must be 16-1000 characters long"
	MsgAgencyAddressMissing     = "Agency address not specified"
	MsgAgencyAddressLength      = "Agency address must be at least 3 characters long"
	MsgVATCodeMissing           = "Agency VAT code not specified"
	MsgVATCodeLength            = "VAT code must be between 2-32 characters long"
	MsgInvalidCaptchaCode       = "Invalid ReCAPTCHA code"

	MsgGoogleIDInvalid      = "Invalid Google ID"
	MsgFirstNameMissing     = "First name not specified"
	MsgFirstNameInvalid     = "firstName must be string"
	MsgLastNameMissing      = "Last name not specified"
	MsgLastNameInvalid      = "lastName must be string"
	MsgPictureURLInvalid    = "pictureUrl must be a valid URL"
	MsgCurriculumInvalid    = "curriculumLink must be a valid URL"
	MsgFieldOfStudyMissing  = "Field of study not specified"
	MsgInvalidFieldOfStudy  = "Invalid field of study"
	MsgDrivingLicenseBool   = "hasDrivingLicense must be a boolean"
	MsgCanTravelBool        = "canTravel must be a boolean"
	MsgApplicationMessage   = "Message must be 1-3000 characters long"
	MsgApplicationAgency    = "Agency ObjectId not specified"
	MsgApplicationJobOffer  = "Job offer ObjectId is not a valid ObjectId"
	MsgApplicationMsgAbsent = "Message not specified"

	MsgAgencyIDMissing          = "Agency ObjectId not specified"
	MsgAgencyIDInvalid          = "Agency ObjectId is not a valid ObjectId"
	MsgAgencyMustBeApproved     = "Agency must be approved"
	MsgTitleMissing             = "Title not specified"
	MsgTitleLength              = "Title must be 5-32 characters long"
	MsgDescriptionMissing       = "Description not specified"
	MsgDescriptionLength        = "Description must be 50-3000 characters long"
	MsgExpiryDateMissing        = "Expiry date not specified"
	MsgExpiryDateInvalid        = "Expiry date is not a valid date"
	MsgExpiryDateTooFar         = "Expiry date must be at most 1 year from now"
	MsgExpiryDateInPast         = "Expiry date must be in the future"
	MsgMustHaveDiplomaMissing   = "Must have diploma not specified"
	MsgMustHaveDiplomaInvalid   = "Must have diploma must be a boolean"
	MsgNumberOfPositionsMissing = "Number of positions not specified"
	MsgNumberOfPositionsInvalid = "Number of positions must be between 1 and 10"
	MsgSecretaryUsernameMissing = "Secretary username not specified"
	MsgSecretaryUsernameLength  = "Secretary username must be 5-64 characters long"
	MsgSecretaryPasswordMissing = "Secretary password not specified"
	MsgApprovalActionMissing    = "Action not specified"
	MsgApprovalActionInvalid    = "Action must be approve or reject"
	MsgNotifyAgencyInvalid      = "notifyAgency must be yes or no"
	MsgSkipInvalid              = "skip must be a non-negative integer"
	MsgLimitInvalid             = "limit must be a non-negative integer"
)

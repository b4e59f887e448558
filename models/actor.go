package models

// ActorKind identifies who a session token was issued for. Tokens of one kind
// never authorize routes guarded for another.
type ActorKind string

const (
	ActorStudent ActorKind = "student"
	ActorAgency  ActorKind = "agency"
	// ActorSignup marks the short-lived token that carries a Google profile
	// between the OAuth callback and student creation.
	ActorSignup ActorKind = "signup"
)

// String returns the kind as used for the JWT payload key.
func (k ActorKind) String() string {
	return string(k)
}

// FieldOfStudy is the school course a student attends or a job offer targets.
type FieldOfStudy string

const (
	FieldOfStudyIT          FieldOfStudy = "it"
	FieldOfStudyElectronics FieldOfStudy = "electronics"
	FieldOfStudyChemistry   FieldOfStudy = "chemistry"
	// FieldOfStudyAny is only valid on job offers.
	FieldOfStudyAny FieldOfStudy = "any"
)

// StudentFieldsOfStudy lists the values a student profile may carry.
var StudentFieldsOfStudy = []string{
	string(FieldOfStudyIT),
	string(FieldOfStudyElectronics),
	string(FieldOfStudyChemistry),
}

// JobOfferFieldsOfStudy lists the values a job offer may carry.
var JobOfferFieldsOfStudy = []string{
	string(FieldOfStudyAny),
	string(FieldOfStudyIT),
	string(FieldOfStudyElectronics),
	string(FieldOfStudyChemistry),
}

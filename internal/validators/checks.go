package validators

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// defaultPhoneRegion is used for numbers written without an international prefix.
const defaultPhoneRegion = "IT"

// FiscalCodeOfAge accepts valid fiscal codes whose holder is at least minAge
// years old.
func FiscalCodeOfAge(minAge int, tooYoung string, now func() time.Time) Check {
	return func(_ context.Context, value any) error {
		s, _ := value.(string)
		code, err := ParseFiscalCode(s, now())
		if err != nil {
			return errors.New(app.MsgInvalidFiscalNumber)
		}
		if code.Age(now()) < minAge {
			return errors.New(tooYoung)
		}
		return nil
	}
}

// PhoneNumber accepts numbers that are valid for their region.
func PhoneNumber() Check {
	return func(_ context.Context, value any) error {
		if _, ok := parsePhone(value); !ok {
			return errors.New(app.MsgInvalidPhoneNumber)
		}
		return nil
	}
}

// PhoneE164 rewrites a valid phone number in E.164 form.
func PhoneE164(value any) any {
	num, ok := parsePhone(value)
	if !ok {
		return value
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func parsePhone(value any) (*phonenumbers.PhoneNumber, bool) {
	s, _ := value.(string)
	num, err := phonenumbers.Parse(s, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return nil, false
	}
	return num, true
}

// TrimSpace removes leading and trailing white space from string values.
func TrimSpace(value any) any {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

// UpperCase trims and upper-cases string values.
func UpperCase(value any) any {
	if s, ok := value.(string); ok {
		return strings.ToUpper(strings.TrimSpace(s))
	}
	return value
}

// LowerCase trims and lower-cases string values.
func LowerCase(value any) any {
	if s, ok := value.(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return value
}

// URLExists asks prober whether the URL can be reached.
func URLExists(prober URLProber, message string) Check {
	return func(ctx context.Context, value any) error {
		s, _ := value.(string)
		if prober == nil || !prober.Exists(ctx, s) {
			return errors.New(message)
		}
		return nil
	}
}

// ID accepts document ids.
func ID(message string) Check {
	return func(_ context.Context, value any) error {
		s, _ := value.(string)
		if uuid.Validate(s) != nil {
			return errors.New(message)
		}
		return nil
	}
}

// ExpiryWithin accepts dates after now and at most months from now. Both
// RFC 3339 timestamps and plain dates are accepted, see [parseDate].
func ExpiryWithin(months int, now func() time.Time) Check {
	return func(_ context.Context, value any) error {
		expiry, ok := parseDate(value)
		if !ok {
			return errors.New(app.MsgExpiryDateInvalid)
		}
		current := now()
		if !expiry.After(current) {
			return errors.New(app.MsgExpiryDateInPast)
		}
		if expiry.After(current.AddDate(0, months, 0)) {
			return errors.New(app.MsgExpiryDateTooFar)
		}
		return nil
	}
}

// DateRFC3339 rewrites a date accepted by [parseDate] as an RFC 3339
// timestamp so it binds to a time.Time.
func DateRFC3339(value any) any {
	if t, ok := parseDate(value); ok {
		return t.Format(time.RFC3339)
	}
	return value
}

// parseDate reads an RFC 3339 timestamp or a yyyy-mm-dd date, the latter as
// midnight UTC.
func parseDate(value any) (time.Time, bool) {
	s, _ := value.(string)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgencyApproved accepts ids of existing agencies in the approved state.
func AgencyApproved(agencies AgencyLookup) Check {
	return func(ctx context.Context, value any) error {
		id, _ := value.(string)
		if uuid.Validate(id) != nil {
			return errors.New(app.MsgAgencyIDInvalid)
		}
		agency, err := agencies.FindOne(ctx, store.AgencyFilter{ID: id}, store.FindOptions{ShowPersonalData: true})
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logger.FromContext(ctx).Err(err).Str("func", "validators.AgencyApproved").Msg("error loading agency")
			}
			return errors.New(app.MsgAgencyMustBeApproved)
		}
		if agency.ApprovalStatus != models.ApprovalApproved {
			return errors.New(app.MsgAgencyMustBeApproved)
		}
		return nil
	}
}

// EmailSuffix accepts addresses ending with suffix. An empty suffix accepts
// every address.
func EmailSuffix(suffix string) Check {
	return func(_ context.Context, value any) error {
		s, _ := value.(string)
		if suffix != "" && !strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix)) {
			return errors.New(app.MsgInvalidStudentEmail)
		}
		return nil
	}
}

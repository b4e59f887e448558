package validators

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidFiscalCode = errors.New("invalid fiscal code")

const (
	fiscalCodeLength = 16
	monthLetters     = "ABCDEHLMPRST"
	omocodeLetters   = "LMNPQRSTUV"
	femaleDayOffset  = 40
)

// positions that hold digits, possibly replaced by omocode letters
var omocodePositions = [...]int{6, 7, 9, 10, 12, 13, 14}

// check character values of the characters in odd (1-based) positions,
// indexed by digit or letter offset
var oddValues = [26]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21, 2, 4, 18, 20, 11, 3, 6, 8, 12, 14, 16, 10, 22, 25, 24, 23}

// FiscalCode is the data encoded in an Italian codice fiscale.
type FiscalCode struct {
	Birthday time.Time
	Female   bool
	Place    string
}

// Age returns the holder's age in whole years at now.
func (c FiscalCode) Age(now time.Time) int {
	years := now.Year() - c.Birthday.Year()
	if now.Month() < c.Birthday.Month() || (now.Month() == c.Birthday.Month() && now.Day() < c.Birthday.Day()) {
		years--
	}
	return years
}

// ParseFiscalCode checks the layout and the check character of code and
// decodes the birth date. Two-digit years are placed in the current century
// unless that would be after now.
func ParseFiscalCode(code string, now time.Time) (FiscalCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != fiscalCodeLength {
		return FiscalCode{}, ErrInvalidFiscalCode
	}

	decoded := []byte(code)
	for _, i := range omocodePositions {
		c := decoded[i]
		if isDigit(c) {
			continue
		}
		j := strings.IndexByte(omocodeLetters, c)
		if j < 0 {
			return FiscalCode{}, ErrInvalidFiscalCode
		}
		decoded[i] = byte('0' + j)
	}
	for _, i := range [...]int{0, 1, 2, 3, 4, 5, 8, 11, 15} {
		if !isLetter(decoded[i]) {
			return FiscalCode{}, ErrInvalidFiscalCode
		}
	}
	if checkCharacter(code[:15]) != code[15] {
		return FiscalCode{}, ErrInvalidFiscalCode
	}

	month := strings.IndexByte(monthLetters, decoded[8])
	if month < 0 {
		return FiscalCode{}, ErrInvalidFiscalCode
	}
	day := twoDigits(decoded[9:11])
	female := day > femaleDayOffset
	if female {
		day -= femaleDayOffset
	}

	year := now.Year()/100*100 + twoDigits(decoded[6:8])
	if year > now.Year() {
		year -= 100
	}

	birthday := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || birthday.Day() != day || birthday.After(now) {
		return FiscalCode{}, ErrInvalidFiscalCode
	}

	return FiscalCode{
		Birthday: birthday,
		Female:   female,
		Place:    string(decoded[11:15]),
	}, nil
}

func checkCharacter(s string) byte {
	sum := 0
	for i := 0; i < len(s); i++ {
		v := charValue(s[i])
		if i%2 == 0 {
			v = oddValues[v]
		}
		sum += v
	}
	return byte('A' + sum%26)
}

func charValue(c byte) int {
	if isDigit(c) {
		return int(c - '0')
	}
	return int(c - 'A')
}

func twoDigits(b []byte) int {
	return int(b[0]-'0')*10 + int(b[1]-'0')
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

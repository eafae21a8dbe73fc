package reservation

import (
	"regexp"
	"time"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
	// deliberately loose: local@domain.tld with no '@' in any part
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

func IsValidName(s string) bool  { return nameRe.MatchString(s) }
func IsValidPhone(s string) bool { return phoneRe.MatchString(s) }
func IsValidEmail(s string) bool { return emailRe.MatchString(s) }

// IsValidDateOrder reports whether checkOut falls on a later calendar day
// than checkIn.
func IsValidDateOrder(checkIn, checkOut time.Time) bool {
	return day(checkOut).After(day(checkIn))
}

// ParseDate parses a YYYY-MM-DD date, ignoring anything after the first ten
// characters (a calendar widget may append a time component).
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	return time.Parse(DateLayout, s)
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate runs the submission checks in their fixed order and returns the
// parsed dates, or the first failure.
func (f Form) Validate() (checkIn, checkOut time.Time, err error) {
	if !f.Complete() {
		return time.Time{}, time.Time{}, ErrIncomplete
	}

	checkIn, err = ParseDate(f.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Check: CheckDateFormat, Message: "invalid date format", Err: err}
	}
	checkOut, err = ParseDate(f.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Check: CheckDateFormat, Message: "invalid date format", Err: err}
	}

	switch {
	case !IsValidDateOrder(checkIn, checkOut):
		return time.Time{}, time.Time{}, &ValidationError{Check: CheckDateOrder, Message: "check-out date must be after check-in date"}
	case !IsValidName(f.FirstName) || !IsValidName(f.LastName):
		return time.Time{}, time.Time{}, &ValidationError{Check: CheckName, Message: "invalid first or last name: only letters are allowed"}
	case !IsValidPhone(f.Phone):
		return time.Time{}, time.Time{}, &ValidationError{Check: CheckPhone, Message: "invalid phone number: only digits are allowed"}
	case !IsValidEmail(f.Email):
		return time.Time{}, time.Time{}, &ValidationError{Check: CheckEmail, Message: "invalid email address"}
	}
	return checkIn, checkOut, nil
}

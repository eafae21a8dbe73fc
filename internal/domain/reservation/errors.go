package reservation

import "errors"

// ErrIncomplete is the informational outcome for a form with empty fields.
var ErrIncomplete = errors.New("please fill in all fields")

type Check int

const (
	CheckDateFormat Check = iota + 1
	CheckDateOrder
	CheckName
	CheckPhone
	CheckEmail
)

// ValidationError reports the first failed check of a submission.
type ValidationError struct {
	Check   Check
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err is a user-correctable outcome of a
// submission rather than a store or catalog failure.
func IsRecoverable(err error) bool {
	var ve *ValidationError
	return errors.Is(err, ErrIncomplete) || errors.As(err, &ve)
}

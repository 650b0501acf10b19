package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLookup            = errors.New("lookup failed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrCoachNotFound     = errors.New("coach not found")
	ErrBiographyNotFound = errors.New("biography not found")
	ErrTemplate          = errors.New("prompt template error")
)

const (
	invalidCityMessage    = "Please enter a valid city with a team playing in the Bundesliga."
	pageNotFoundMessage   = "Wikipedia page not found. Please try again!"
	coachNotFoundTemplate = "No current coach is recorded for %s. Please try another city."
)

// LookupError reports that the knowledge source returned no usable data:
// the remote call failed, the payload was malformed, or a club URI did not
// carry an identifier.
type LookupError struct {
	Op  string
	Err error
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrLookup)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrLookup }

func NewLookupError(op string, err error) error {
	return &LookupError{Op: op, Err: err}
}

// InvalidInputError is returned when a question names no known city.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

type CoachNotFoundError struct {
	Club ClubRecord
}

func (e *CoachNotFoundError) Error() string {
	name := e.Club.Name
	if name == "" {
		name = string(e.Club.ID)
	}
	return fmt.Sprintf(coachNotFoundTemplate, name)
}

func (e *CoachNotFoundError) Is(target error) bool { return target == ErrCoachNotFound }

// BiographyNotFoundError is returned when the encyclopedia has no page titled
// after the coach.
type BiographyNotFoundError struct {
	Title string
}

func (e *BiographyNotFoundError) Error() string { return pageNotFoundMessage }

func (e *BiographyNotFoundError) Is(target error) bool { return target == ErrBiographyNotFound }

// IsRecoverable reports whether a chat turn that failed with err can be
// reported to the user and the session continued.
func IsRecoverable(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrCoachNotFound),
		errors.Is(err, ErrBiographyNotFound):
		return true
	default:
		return false
	}
}

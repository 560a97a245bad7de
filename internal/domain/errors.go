package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for schedule operations.
var (
	ErrEventsUnavailable     = errors.New("events unavailable")
	ErrPresentersUnavailable = errors.New("presenters unavailable")
	ErrUnexpected            = errors.New("unexpected load failure")

	ErrScheduleNotLoaded  = errors.New("schedule not loaded")
	ErrNoUpcomingEvent    = errors.New("no upcoming event")
	ErrNoRecipients       = errors.New("no announcement recipients configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LoadErrorKind classifies a failed schedule load.
type LoadErrorKind string

const (
	LoadErrorNone                  LoadErrorKind = ""
	LoadErrorEventsUnavailable     LoadErrorKind = "events_unavailable"
	LoadErrorPresentersUnavailable LoadErrorKind = "presenters_unavailable"
	LoadErrorUnexpected            LoadErrorKind = "unexpected"
)

func (k LoadErrorKind) sentinel() error {
	switch k {
	case LoadErrorEventsUnavailable:
		return ErrEventsUnavailable
	case LoadErrorPresentersUnavailable:
		return ErrPresentersUnavailable
	default:
		return ErrUnexpected
	}
}

// LoadError is returned by ScheduleLoader.Load. It matches the sentinel of its
// kind with errors.Is, and unwraps to the underlying cause when there is one.
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

// NewLoadError returns a LoadError of the given kind wrapping cause (may be nil).
func NewLoadError(kind LoadErrorKind, cause error) *LoadError {
	return &LoadError{Kind: kind, Err: cause}
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// LoadErrorKindOf returns the kind carried by err, or LoadErrorUnexpected when
// err is not a LoadError.
func LoadErrorKindOf(err error) LoadErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return LoadErrorUnexpected
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind int

const (
	Internal Kind = iota
	NotFound
	AccessDenied
	CapacityExceeded
	NoRoomsAvailable
	InsufficientRooms
	InvalidOccupancy
	ValidationError
	InvalidTransition
)

var kindNames = map[Kind]string{
	Internal:          "internal",
	NotFound:          "not found",
	AccessDenied:      "access denied",
	CapacityExceeded:  "capacity exceeded",
	NoRoomsAvailable:  "no rooms available",
	InsufficientRooms: "insufficient rooms",
	InvalidOccupancy:  "invalid occupancy",
	ValidationError:   "validation error",
	InvalidTransition: "invalid transition",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the failure type returned by every core operation.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels below, so errors.Is(err, ErrNotFound) holds
// for any NotFound error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrInternal          = &Error{Kind: Internal}
	ErrNotFound          = &Error{Kind: NotFound}
	ErrAccessDenied      = &Error{Kind: AccessDenied}
	ErrCapacityExceeded  = &Error{Kind: CapacityExceeded}
	ErrNoRoomsAvailable  = &Error{Kind: NoRoomsAvailable}
	ErrInsufficientRooms = &Error{Kind: InsufficientRooms}
	ErrInvalidOccupancy  = &Error{Kind: InvalidOccupancy}
	ErrValidation        = &Error{Kind: ValidationError}
	ErrInvalidTransition = &Error{Kind: InvalidTransition}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of err; errors not produced by this package are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// lookupError turns a store error into NotFound or Internal.
func lookupError(err error, format string, args ...any) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(NotFound, format+" not found", args...)
	}
	return wrapError(Internal, err, "load "+format, args...)
}

// Lookup is lookupError for callers outside the package that read the
// catalog directly.
func Lookup(err error, format string, args ...any) error {
	return lookupError(err, format, args...)
}

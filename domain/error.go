package domain

import (
	"errors"
	"fmt"
)

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is reports whether target is the error code carried by e, so callers can
// match on the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	// ErrCapacityExceeded will throw if the airport table is already full
	ErrCapacityExceeded = errors.New("airport capacity exceeded")
	// ErrUnknownEndpoint will throw if a route references an airport code that was never added
	ErrUnknownEndpoint = errors.New("unknown route endpoint")
	// ErrInvalidAirport will throw if the airport fields fail validation
	ErrInvalidAirport = errors.New("invalid airport")
	// ErrInvalidRoute will throw if a route carries a negative weight
	ErrInvalidRoute = errors.New("invalid route")
	// ErrNoPathExists is the code for a query whose destination was never reached
	ErrNoPathExists = errors.New("no path exists")
	// ErrUnreachable will throw if a path is reconstructed for an unreached destination
	ErrUnreachable = errors.New("destination is unreachable")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

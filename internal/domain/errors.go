package domain

import (
	"errors"
	"fmt"
)

// ValidationError is a user-correctable input defect. It never escapes the
// booking flow as a server failure.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// UnavailableError means the store could not be reached. The caller keeps its
// draft and may retry.
type UnavailableError struct {
	Msg string
	Err error
}

func (e UnavailableError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "store unavailable"
}

func (e UnavailableError) Unwrap() error { return e.Err }

// ReferentialError means a booking insert referenced a customer id that does
// not exist. The two-step confirm should make this impossible, but it is
// handled rather than swallowed.
type ReferentialError struct {
	Resource string
	Err      error
}

func (e ReferentialError) Error() string {
	if e.Resource == "" {
		return "referential violation"
	}
	return fmt.Sprintf("%s referential violation", e.Resource)
}

func (e ReferentialError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsReferential(err error) bool {
	var target ReferentialError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

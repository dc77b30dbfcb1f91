package domain

import (
	"errors"
	"fmt"
)

// Booking failure taxonomy. Wrapped by the typed errors below so callers
// can branch with errors.Is.
var (
	ErrMissingField        = errors.New("missing field")
	ErrUnsupportedCategory = errors.New("unsupported category")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidTicketCount  = errors.New("invalid ticket count")
	ErrInvalidTotalPrice   = errors.New("invalid total price")
	ErrPersistenceFailure  = errors.New("persistence failure")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRowReferenced      = errors.New("row is referenced")
)

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

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

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

// UnsupportedCategoryError keeps the booking type exactly as the client sent it.
type UnsupportedCategoryError struct {
	Input string
}

func (e UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("unsupported booking type %q", e.Input)
}

func (e UnsupportedCategoryError) Unwrap() error { return ErrUnsupportedCategory }

// PersistenceError wraps a failed write against the database. Detail is the
// engine's own message when one could be extracted.
type PersistenceError struct {
	Op     string
	Detail string
	Err    error
}

func (e PersistenceError) Error() string {
	switch {
	case e.Op != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Detail)
	case e.Detail != "":
		return e.Detail
	case e.Op != "":
		return e.Op + " failed"
	default:
		return ErrPersistenceFailure.Error()
	}
}

func (e PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistenceFailure}
	}
	return []error{ErrPersistenceFailure, e.Err}
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

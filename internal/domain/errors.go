package domain

import (
	"errors"
	"fmt"
)

// DomainError keeps backward compatibility for generic codes.
type DomainError struct {
	Code string
	Err  error
}

func (e DomainError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	if e.Code == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e DomainError) Unwrap() error {
	return e.Err
}

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

// DataUnavailableError signals the backing store could not be reached.
// Distinct from NotFoundError: callers may retry.
type DataUnavailableError struct {
	Resource string
	Err      error
}

func (e DataUnavailableError) Error() string {
	if e.Resource == "" {
		return "data unavailable"
	}
	return fmt.Sprintf("%s unavailable", e.Resource)
}

func (e DataUnavailableError) Unwrap() error { return e.Err }

// InvalidColorError reports a brand colour that does not parse as three
// hex byte channels. It is recovered locally by the theme default and is
// never surfaced through HTTP.
type InvalidColorError struct {
	Value string
}

func (e InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Value)
}

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

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsDataUnavailable(err error) bool {
	var target DataUnavailableError
	return errors.As(err, &target)
}

func IsInvalidColor(err error) bool {
	var target InvalidColorError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

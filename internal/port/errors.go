package port

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable means a model backend or its resources could not be loaded.
	ErrModelUnavailable = errors.New("model not available")

	// ErrEmptyResponse means a backend answered without any usable content.
	ErrEmptyResponse = errors.New("empty response from model backend")
)

// UnavailableError describes a model that could not be loaded and how to obtain it.
type UnavailableError struct {
	Model string
	Hint  string
	Err   error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model '%s' not available: %v", e.Model, e.Err)
	}
	return fmt.Sprintf("model '%s' not available", e.Model)
}

func (e *UnavailableError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrModelUnavailable, e.Err}
	}
	return []error{ErrModelUnavailable}
}

// Unavailable wraps err as an UnavailableError for model.
func Unavailable(model, hint string, err error) error {
	return &UnavailableError{Model: model, Hint: hint, Err: err}
}

// HintFor returns the remediation hint carried by err, if any.
func HintFor(err error) string {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue.Hint
	}
	return ""
}

// Package errs holds the error values shared by the client layers.
package errs

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidGuess = errors.New("guess must be a single letter from A to Z")
	ErrTransport    = errors.New("hangman service unavailable")
	ErrBadResponse  = errors.New("unexpected response")
	ErrNoAPIURL     = errors.New("api url is empty")
)

// TransportError wraps any failure of a call to the service: network,
// status, or body.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes every TransportError match ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Shown reports whether err has already been presented to the user as a
// notice, so callers need not surface it again.
func Shown(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrInvalidGuess) || errors.Is(err, ErrTransport)
}

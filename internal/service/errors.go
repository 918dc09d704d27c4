package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidID means the path id is not a well-formed ObjectID. It is
	// raised before any store access.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound means a well-formed id matched no document.
	ErrNotFound = errors.New("not found")

	// ErrUnknownRestaurant means a restaurantId reference did not resolve.
	ErrUnknownRestaurant = errors.New("restaurantId does not match an existing restaurant")
)

// ValidationError carries every field violation of a payload so clients see
// all of them at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// AsValidation unwraps a ValidationError if err is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// OAuthError tags a login failure with the stage it happened in, so the
// failure page can show where the handshake broke.
type OAuthError struct {
	Stage string
	Err   error
}

func (e *OAuthError) Error() string {
	return "oauth " + e.Stage + ": " + e.Err.Error()
}

func (e *OAuthError) Unwrap() error { return e.Err }

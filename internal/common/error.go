// Package common defines sentinel errors and small byte helpers shared by the
// account store and the interactive shell. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrAlreadyExists  = errors.New("username or email already exists")
	ErrIncompleteLoad = errors.New("accounts file was not fully read")

	// Input validation errors raised before the store is reached.
	ErrValidation = errors.New("validation error")
)

package types

import "errors"

// Lookup errors. Lookups return these instead of zero values so callers
// can tell "no such book" apart from "empty catalog".
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
)

// Validation errors. A service that returns one of these has left the
// collection untouched; the presentation layer decides whether to
// re-drive the operation with corrected input.
var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrSelfShare          = errors.New("cannot recommend a book to yourself")
	ErrEmptyField         = errors.New("required field is empty")
	ErrNameTaken          = errors.New("user name is already taken")
	ErrInvalidCredentials = errors.New("invalid name or password")
)

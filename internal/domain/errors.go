package domain

import "errors"

// ErrNotFound is returned by update and delete operations when the target
// reservation does not exist. Lookups report absence with an empty result
// instead. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input is structurally unusable (e.g. a
// missing request body). Handlers should map this to HTTP 422.
var ErrValidation = errors.New("validation error")

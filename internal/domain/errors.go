package domain

import "errors"

// ErrNotFound is returned when an entity with the requested id does not
// exist in its collection. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (missing
// required field, non-positive amount, unknown category). Handlers map
// this to HTTP 422.
var ErrValidation = errors.New("validation error")

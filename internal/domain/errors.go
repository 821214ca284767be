package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// trip does not exist for the user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty trip name, reserved name, POI without a label).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned by the auth layer for bad credentials or a
// missing/invalid session token.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow the handler layer
// to distinguish between different failure scenarios, for example
// translating ErrVenueNotFound into an HTTP 404 instead of a generic
// database error.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue lookup matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrEventNotFound is returned when an event lookup matches no row.
var ErrEventNotFound = errors.New("event not found")

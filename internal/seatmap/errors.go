// Package seatmap models a venue as sections of numbered seats or
// general-admission capacity and resolves seat identity, pricing and
// availability for a single selection session. These sentinel values
// let the HTTP layer distinguish rejection reasons without inspecting
// error strings. The engine itself performs no I/O and no logging;
// every failure is returned synchronously to the caller.
package seatmap

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a venue descriptor or a request is
// structurally invalid (duplicate section ids, zero grid dimensions,
// coordinates outside the section grid). Handlers should translate
// this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrUnknownSection is returned when a section id does not exist in
// the venue. Handlers should translate this into an HTTP 404 response.
var ErrUnknownSection = errors.New("unknown section")

// ErrUnavailable is returned when an add is attempted on a unit that
// is occupied or blocked. Removal of an already selected unit never
// fails with this error.
var ErrUnavailable = errors.New("unit unavailable")

// ErrLimitReached is returned when an add would push the selection
// past the per-session seat limit.
var ErrLimitReached = errors.New("selection limit reached")

// ErrCapacityExceeded is returned when a general-admission section has
// no remaining capacity for a further addition.
var ErrCapacityExceeded = errors.New("section capacity exceeded")

func errUnknownSection(sectionID string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSection, sectionID)
}

func errNotGeneralAdmission(sectionID string) error {
	return fmt.Errorf("%w: section %q has numbered seats", ErrValidation, sectionID)
}

func errNotNumbered(sectionID string) error {
	return fmt.Errorf("%w: section %q has no numbered seats", ErrValidation, sectionID)
}

func errOutOfGrid(s *Section, renderRow, renderSeat int) error {
	return fmt.Errorf("%w: cell (%d,%d) is outside the %dx%d grid of section %q",
		ErrValidation, renderRow, renderSeat, s.DisplayRows(), s.DisplaySeatsPerRow(), s.ID)
}

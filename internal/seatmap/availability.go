package seatmap

import (
	"fmt"
	"strings"
)

// SeatState is the discrete availability of one addressable unit.
type SeatState string

const (
	StateOccupied  SeatState = "occupied"
	StateBlocked   SeatState = "blocked"
	StateSelected  SeatState = "selected"
	StateAvailable SeatState = "available"
)

// Snapshot is an immutable view of the occupancy and blocking sets for
// one engine call. The caller refreshes these between calls; the
// engine never mutates them.
type Snapshot struct {
	occupied        map[string]struct{}
	blockedSeats    map[string]struct{}
	blockedSections map[string]struct{}
}

// NewSnapshot builds a Snapshot from the canonical-id lists supplied
// by the occupancy poller and the admin blocking workflow.
func NewSnapshot(occupiedSeatIDs, blockedSeatIDs, blockedSectionIDs []string) Snapshot {
	return Snapshot{
		occupied:        toSet(occupiedSeatIDs),
		blockedSeats:    toSet(blockedSeatIDs),
		blockedSections: toSet(blockedSectionIDs),
	}
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// Occupied reports whether a canonical seat id is sold.
func (sn Snapshot) Occupied(canonicalID string) bool {
	_, ok := sn.occupied[canonicalID]
	return ok
}

// SeatBlocked reports whether a canonical seat id is blocked by an
// administrator.
func (sn Snapshot) SeatBlocked(canonicalID string) bool {
	_, ok := sn.blockedSeats[canonicalID]
	return ok
}

// SectionBlocked reports whether a whole section is blocked.
func (sn Snapshot) SectionBlocked(sectionID string) bool {
	_, ok := sn.blockedSections[sectionID]
	return ok
}

// occupiedInSection counts occupied entries belonging to a section.
// Canonical ids are "{sectionID}-...", so the separator keeps a
// section id from absorbing entries of sections it is a prefix of.
func (sn Snapshot) occupiedInSection(sectionID string) int {
	prefix := sectionID + "-"
	n := 0
	for id := range sn.occupied {
		if strings.HasPrefix(id, prefix) {
			n++
		}
	}
	return n
}

// seatState classifies a numbered seat. Priority is strict: occupied
// beats blocked beats selected; a unit listed in both the occupied and
// blocked sets therefore reports occupied.
func seatState(ref SeatRef, snap Snapshot, sel Selection) SeatState {
	id := ref.CanonicalID()
	switch {
	case snap.Occupied(id):
		return StateOccupied
	case snap.SectionBlocked(ref.SectionID) || snap.SeatBlocked(id):
		return StateBlocked
	case sel.Contains(id):
		return StateSelected
	default:
		return StateAvailable
	}
}

// StateOf classifies one addressable unit. Numbered units are given in
// physical coordinates; general-admission units use their InstanceID
// (empty for the section as a whole). Render-space callers use
// Classify instead.
func (e *Engine) StateOf(unit SeatUnit, snap Snapshot, sel Selection) (SeatState, error) {
	s, ok := e.venue.Section(unit.SectionID)
	if !ok {
		return "", errUnknownSection(unit.SectionID)
	}
	if unit.GeneralAdmission {
		return e.GeneralAdmissionState(s.ID, unit.InstanceID, snap, sel)
	}
	if s.HasNumberedSeats {
		ref := SeatRef{SectionID: s.ID, Row: unit.Row, Seat: unit.Seat}
		if !s.inGrid(ref) {
			return "", fmt.Errorf("%w: seat %d-%d is outside section %q (%dx%d)",
				ErrValidation, unit.Row, unit.Seat, s.ID, s.Rows, s.SeatsPerRow)
		}
		return seatState(ref, snap, sel), nil
	}
	return "", errNotNumbered(s.ID)
}

// RemainingCapacity returns how many general-admission units of a
// section are still sellable under the current snapshot: the effective
// capacity (event override when present, else the static section
// capacity) minus the occupied count, floored at zero. A section with
// no remaining capacity is effectively blocked for new selections even
// when not listed in the blocked-section set.
func (e *Engine) RemainingCapacity(sectionID string, snap Snapshot) (int, error) {
	s, ok := e.venue.Section(sectionID)
	if !ok {
		return 0, errUnknownSection(sectionID)
	}
	if s.HasNumberedSeats {
		return 0, errNotGeneralAdmission(s.ID)
	}
	cap := s.TotalCapacity
	if entry := e.pricing.sectionEntry(s.ID); entry != nil && entry.Capacity > 0 {
		cap = entry.Capacity
	}
	remaining := cap - snap.occupiedInSection(s.ID)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// GeneralAdmissionState classifies a general-admission unit of a
// section. instanceID may be empty when classifying the section as a
// whole rather than a held ticket. A sold-out section reports blocked
// even when absent from the blocked-section set; that state is derived
// per call, never stored.
func (e *Engine) GeneralAdmissionState(sectionID, instanceID string, snap Snapshot, sel Selection) (SeatState, error) {
	s, ok := e.venue.Section(sectionID)
	if !ok {
		return "", errUnknownSection(sectionID)
	}
	if s.HasNumberedSeats {
		return "", errNotGeneralAdmission(s.ID)
	}
	if snap.SectionBlocked(s.ID) {
		return StateBlocked, nil
	}
	if instanceID != "" && sel.Contains(instanceID) {
		return StateSelected, nil
	}
	if remaining, _ := e.RemainingCapacity(s.ID, snap); remaining <= 0 {
		return StateBlocked, nil
	}
	return StateAvailable, nil
}

package seatmap

import "fmt"

// SeatUnit addresses one selectable entity: a numbered seat by its
// physical coordinates, or a general-admission ticket by section.
// InstanceID identifies an already-selected general-admission entry so
// it can be toggled off; it is ignored for numbered seats and left
// empty when adding a fresh general-admission unit.
type SeatUnit struct {
	SectionID        string `json:"section_id"`
	Row              int    `json:"row,omitempty"`
	Seat             int    `json:"seat,omitempty"`
	GeneralAdmission bool   `json:"general_admission,omitempty"`
	InstanceID       string `json:"instance_id,omitempty"`
}

// NumberedSeat builds the unit for a physical seat.
func NumberedSeat(sectionID string, row, seat int) SeatUnit {
	return SeatUnit{SectionID: sectionID, Row: row, Seat: seat}
}

// GeneralAdmissionUnit builds the unit for one general-admission
// ticket in a section.
func GeneralAdmissionUnit(sectionID string) SeatUnit {
	return SeatUnit{SectionID: sectionID, GeneralAdmission: true}
}

// SelectionEntry is one unit held in the caller's selection. The price
// is resolved at the moment of addition and never recomputed, so a
// pricing refresh mid-session does not silently reprice held seats.
type SelectionEntry struct {
	ID               string `json:"id"`
	SectionID        string `json:"section_id"`
	SectionName      string `json:"section_name"`
	Row              int    `json:"row,omitempty"`
	Seat             int    `json:"seat,omitempty"`
	PriceCents       uint32 `json:"price_cents"`
	GeneralAdmission bool   `json:"general_admission,omitempty"`
}

// Selection is the ordered collection of entries owned by one session.
// The engine treats it as an immutable snapshot and returns new slices
// instead of mutating in place.
type Selection []SelectionEntry

// Contains reports whether an entry with the given id (canonical seat
// id or general-admission instance id) is selected.
func (sel Selection) Contains(id string) bool {
	return sel.indexOf(id) >= 0
}

func (sel Selection) indexOf(id string) int {
	for i := range sel {
		if sel[i].ID == id {
			return i
		}
	}
	return -1
}

// CountInSection returns how many selected entries belong to a section.
func (sel Selection) CountInSection(sectionID string) int {
	n := 0
	for i := range sel {
		if sel[i].SectionID == sectionID {
			n++
		}
	}
	return n
}

// TotalCents sums the held prices of the selection.
func (sel Selection) TotalCents() uint64 {
	var total uint64
	for i := range sel {
		total += uint64(sel[i].PriceCents)
	}
	return total
}

// without returns a copy of the selection with the entry at index i
// removed.
func (sel Selection) without(i int) Selection {
	out := make(Selection, 0, len(sel)-1)
	out = append(out, sel[:i]...)
	return append(out, sel[i+1:]...)
}

// Toggle adds the unit to the selection or removes it when already
// present, returning the updated selection. Removal is always
// permitted. Adds are validated in order: the unit must not be
// occupied or blocked (ErrUnavailable), the selection must be under
// maxSeats (ErrLimitReached), and for general admission the section
// must have capacity left beyond what this selection already holds
// (ErrCapacityExceeded). The input selection is never mutated.
func (e *Engine) Toggle(unit SeatUnit, sel Selection, snap Snapshot, maxSeats int) (Selection, error) {
	s, ok := e.venue.Section(unit.SectionID)
	if !ok {
		return nil, errUnknownSection(unit.SectionID)
	}
	if unit.GeneralAdmission != !s.HasNumberedSeats {
		if unit.GeneralAdmission {
			return nil, errNotGeneralAdmission(s.ID)
		}
		return nil, errNotNumbered(s.ID)
	}
	if unit.GeneralAdmission {
		return e.toggleGeneralAdmission(s, unit, sel, snap, maxSeats)
	}
	return e.toggleNumbered(s, unit, sel, snap, maxSeats)
}

func (e *Engine) toggleNumbered(s *Section, unit SeatUnit, sel Selection, snap Snapshot, maxSeats int) (Selection, error) {
	ref := SeatRef{SectionID: s.ID, Row: unit.Row, Seat: unit.Seat}
	if !s.inGrid(ref) {
		return nil, fmt.Errorf("%w: seat %d-%d is outside section %q (%dx%d)",
			ErrValidation, unit.Row, unit.Seat, s.ID, s.Rows, s.SeatsPerRow)
	}
	id := ref.CanonicalID()
	if i := sel.indexOf(id); i >= 0 {
		return sel.without(i), nil
	}

	switch seatState(ref, snap, sel) {
	case StateOccupied, StateBlocked:
		return nil, fmt.Errorf("%w: seat %s", ErrUnavailable, id)
	}
	if len(sel) >= maxSeats {
		return nil, fmt.Errorf("%w: selection already holds %d of %d seats", ErrLimitReached, len(sel), maxSeats)
	}

	entry := SelectionEntry{
		ID:          id,
		SectionID:   s.ID,
		SectionName: s.Name,
		Row:         ref.Row,
		Seat:        ref.Seat,
		PriceCents:  PriceOf(s, ref.Row, e.pricing),
	}
	return appendEntry(sel, entry), nil
}

func (e *Engine) toggleGeneralAdmission(s *Section, unit SeatUnit, sel Selection, snap Snapshot, maxSeats int) (Selection, error) {
	if unit.InstanceID != "" {
		if i := sel.indexOf(unit.InstanceID); i >= 0 {
			return sel.without(i), nil
		}
	}

	if snap.SectionBlocked(s.ID) {
		return nil, fmt.Errorf("%w: section %s is blocked", ErrUnavailable, s.ID)
	}
	if len(sel) >= maxSeats {
		return nil, fmt.Errorf("%w: selection already holds %d of %d seats", ErrLimitReached, len(sel), maxSeats)
	}
	remaining, err := e.RemainingCapacity(s.ID, snap)
	if err != nil {
		return nil, err
	}
	if sel.CountInSection(s.ID) >= remaining {
		return nil, fmt.Errorf("%w: section %s has %d tickets left, selection already holds %d",
			ErrCapacityExceeded, s.ID, remaining, sel.CountInSection(s.ID))
	}

	entry := SelectionEntry{
		ID:               e.newInstanceID(),
		SectionID:        s.ID,
		SectionName:      s.Name,
		PriceCents:       PriceOf(s, 0, e.pricing),
		GeneralAdmission: true,
	}
	return appendEntry(sel, entry), nil
}

// appendEntry copies before appending so the caller's slice is never
// aliased by the result.
func appendEntry(sel Selection, entry SelectionEntry) Selection {
	out := make(Selection, 0, len(sel)+1)
	out = append(out, sel...)
	return append(out, entry)
}

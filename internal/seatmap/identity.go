package seatmap

import "fmt"

// SeatRef is the canonical physical identity of a numbered seat:
// section plus 1-based physical row and seat number. Backend-reported
// occupancy and admin blocks use physical coordinates only, so every
// membership test goes through this identity regardless of how the
// seat was rendered.
type SeatRef struct {
	SectionID string
	Row       int
	Seat      int
}

// CanonicalID returns the stable "{sectionID}-{row}-{seat}" key used
// for occupied, blocked and selected membership tests.
func (r SeatRef) CanonicalID() string {
	return CanonicalID(r.SectionID, r.Row, r.Seat)
}

// CanonicalID builds the canonical seat key from its parts.
func CanonicalID(sectionID string, row, seat int) string {
	return fmt.Sprintf("%s-%d-%d", sectionID, row, seat)
}

// ToPhysical maps zero-based render coordinates, as the grid iterates
// them, onto the physical seat identity. For lateral stands the axes
// are swapped: the physical row derives from the render seat (with the
// section's row order applied on the swapped axis) and the physical
// seat number is the render row plus one.
func (s *Section) ToPhysical(renderRow, renderSeat int) SeatRef {
	if s.Lateral {
		return SeatRef{
			SectionID: s.ID,
			Row:       physicalRow(s.RowOrder, s.Rows, renderSeat),
			Seat:      renderRow + 1,
		}
	}
	return SeatRef{
		SectionID: s.ID,
		Row:       physicalRow(s.RowOrder, s.Rows, renderRow),
		Seat:      renderSeat + 1,
	}
}

// ToRender is the inverse of ToPhysical. Round-tripping through the
// two transforms always yields the same canonical id, which keeps a
// seat selected in lateral orientation matchable against occupancy
// produced by any orientation-agnostic caller.
func (s *Section) ToRender(ref SeatRef) (renderRow, renderSeat int) {
	if s.Lateral {
		return ref.Seat - 1, renderIndex(s.RowOrder, s.Rows, ref.Row)
	}
	return renderIndex(s.RowOrder, s.Rows, ref.Row), ref.Seat - 1
}

// inGrid reports whether a physical reference addresses a real seat of
// this section.
func (s *Section) inGrid(ref SeatRef) bool {
	return ref.Row >= 1 && ref.Row <= s.Rows && ref.Seat >= 1 && ref.Seat <= s.SeatsPerRow
}

package seatmap

import (
	"fmt"
	"strings"
)

// VenueType enumerates the venue archetypes the storefront sells for.
// The engine treats all types identically; the value is validated at
// parse time and echoed back to clients for layout hints.
type VenueType string

const (
	VenueStadium VenueType = "stadium"
	VenueTheater VenueType = "theater"
	VenueCinema  VenueType = "cinema"
	VenueArena   VenueType = "arena"
	VenueConcert VenueType = "concert"
)

// RawSection is the wire shape of a section as stored or received.
// A section either has a numbered grid (Rows x SeatsPerRow) or an
// unnumbered TotalCapacity, never both.
type RawSection struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Position          string `json:"position"`
	HasNumberedSeats  bool   `json:"has_numbered_seats"`
	Rows              int    `json:"rows,omitempty"`
	SeatsPerRow       int    `json:"seats_per_row,omitempty"`
	TotalCapacity     int    `json:"total_capacity,omitempty"`
	DefaultPriceCents uint32 `json:"default_price_cents"`
	Color             string `json:"color,omitempty"`
}

// RawVenue is the wire shape of a venue descriptor.
type RawVenue struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"venue_type"`
	Sections []RawSection `json:"sections"`
}

// Section is an immutable, validated subdivision of a venue. Role,
// RowOrder and Lateral are classified once at parse time so the hot
// per-cell paths never repeat substring matching.
type Section struct {
	ID                string
	Name              string
	Position          string
	HasNumberedSeats  bool
	Rows              int
	SeatsPerRow       int
	TotalCapacity     int
	DefaultPriceCents uint32
	Color             string // display-only, never inspected by the engine

	Role     SectionRole
	RowOrder RowOrder
	Lateral  bool
}

// DisplayRows returns the number of rows a rendering grid should
// iterate for this section. Lateral stands swap axes so their physical
// rows run along the render columns.
func (s *Section) DisplayRows() int {
	if s.Lateral {
		return s.SeatsPerRow
	}
	return s.Rows
}

// DisplaySeatsPerRow returns the number of seats per rendered row,
// axis-swapped for lateral stands.
func (s *Section) DisplaySeatsPerRow() int {
	if s.Lateral {
		return s.Rows
	}
	return s.SeatsPerRow
}

// Venue is a validated, immutable venue descriptor. It is loaded once
// per event and shared read-only for the whole selection session.
type Venue struct {
	ID       string
	Name     string
	Type     VenueType
	Sections []Section

	byID map[string]*Section
}

// Section returns the section with the given id, or false when the id
// is not part of this venue.
func (v *Venue) Section(id string) (*Section, bool) {
	s, ok := v.byID[id]
	return s, ok
}

// ParseVenue validates a raw descriptor and builds the immutable Venue
// used by the engine. Malformed input is a fatal validation error for
// the session; the engine never attempts repair.
func ParseVenue(raw RawVenue) (*Venue, error) {
	if strings.TrimSpace(raw.ID) == "" {
		return nil, fmt.Errorf("%w: venue id is empty", ErrValidation)
	}
	vt := VenueType(strings.ToLower(strings.TrimSpace(raw.Type)))
	switch vt {
	case VenueStadium, VenueTheater, VenueCinema, VenueArena, VenueConcert:
	default:
		return nil, fmt.Errorf("%w: unknown venue type %q", ErrValidation, raw.Type)
	}
	if len(raw.Sections) == 0 {
		return nil, fmt.Errorf("%w: venue %s has no sections", ErrValidation, raw.ID)
	}

	v := &Venue{
		ID:       raw.ID,
		Name:     raw.Name,
		Type:     vt,
		Sections: make([]Section, 0, len(raw.Sections)),
		byID:     make(map[string]*Section, len(raw.Sections)),
	}
	seen := make(map[string]struct{}, len(raw.Sections))
	for _, rs := range raw.Sections {
		if strings.TrimSpace(rs.ID) == "" {
			return nil, fmt.Errorf("%w: venue %s has a section with an empty id", ErrValidation, raw.ID)
		}
		if _, dup := seen[rs.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate section id %q in venue %s", ErrValidation, rs.ID, raw.ID)
		}
		seen[rs.ID] = struct{}{}
		if rs.HasNumberedSeats {
			if rs.Rows <= 0 || rs.SeatsPerRow <= 0 {
				return nil, fmt.Errorf("%w: numbered section %q needs rows and seats_per_row greater than zero", ErrValidation, rs.ID)
			}
		} else if rs.TotalCapacity <= 0 {
			return nil, fmt.Errorf("%w: general-admission section %q needs total_capacity greater than zero", ErrValidation, rs.ID)
		}

		s := Section{
			ID:                rs.ID,
			Name:              rs.Name,
			Position:          rs.Position,
			HasNumberedSeats:  rs.HasNumberedSeats,
			Rows:              rs.Rows,
			SeatsPerRow:       rs.SeatsPerRow,
			TotalCapacity:     rs.TotalCapacity,
			DefaultPriceCents: rs.DefaultPriceCents,
			Color:             rs.Color,
		}
		s.Role = classifyRole(&s)
		s.RowOrder = rowOrderOf(&s)
		s.Lateral = isLateral(&s)

		v.Sections = append(v.Sections, s)
	}
	// The byID map must point into the final slice, not at loop copies.
	for i := range v.Sections {
		v.byID[v.Sections[i].ID] = &v.Sections[i]
	}
	return v, nil
}

package seatmap

import "github.com/google/uuid"

// Engine answers per-unit queries and selection toggles for one event
// on one venue. It holds only immutable session data (the parsed venue
// and the event pricing); occupancy snapshots and the selection belong
// to the caller and are passed into every call, so the engine is a
// pure function of its inputs and safe to share across goroutines.
type Engine struct {
	venue         *Venue
	pricing       *EventPricing
	newInstanceID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithInstanceIDs replaces the generator used for general-admission
// instance ids. Tests inject a counter here to stay deterministic.
func WithInstanceIDs(fn func() string) Option {
	return func(e *Engine) { e.newInstanceID = fn }
}

// New builds an engine for a venue and its optional event pricing.
// pricing may be nil when the event carries no overrides.
func New(venue *Venue, pricing *EventPricing, opts ...Option) *Engine {
	e := &Engine{
		venue:         venue,
		pricing:       pricing,
		newInstanceID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Venue returns the immutable venue this engine serves.
func (e *Engine) Venue() *Venue { return e.venue }

// Price resolves the price of a unit in a section through the event
// override hierarchy. Pass physRow 0 for general-admission units.
func (e *Engine) Price(sectionID string, physRow int) (uint32, error) {
	s, ok := e.venue.Section(sectionID)
	if !ok {
		return 0, errUnknownSection(sectionID)
	}
	return PriceOf(s, physRow, e.pricing), nil
}

// Classified is the engine's answer for one rendered grid cell.
type Classified struct {
	CanonicalID  string    `json:"id"`
	PhysicalRow  int       `json:"row"`
	PhysicalSeat int       `json:"seat"`
	PriceCents   uint32    `json:"price_cents"`
	State        SeatState `json:"state"`
}

// Classify resolves the identity, price and state of the numbered seat
// at the given zero-based render coordinates. It is the per-cell query
// the rendering layer drives its grid with. General-admission sections
// are not coordinate addressable and yield a validation error.
func (e *Engine) Classify(sectionID string, renderRow, renderSeat int, snap Snapshot, sel Selection) (Classified, error) {
	s, ok := e.venue.Section(sectionID)
	if !ok {
		return Classified{}, errUnknownSection(sectionID)
	}
	if !s.HasNumberedSeats {
		return Classified{}, errNotNumbered(s.ID)
	}
	ref := s.ToPhysical(renderRow, renderSeat)
	if !s.inGrid(ref) {
		return Classified{}, errOutOfGrid(s, renderRow, renderSeat)
	}
	return Classified{
		CanonicalID:  ref.CanonicalID(),
		PhysicalRow:  ref.Row,
		PhysicalSeat: ref.Seat,
		PriceCents:   PriceOf(s, ref.Row, e.pricing),
		State:        seatState(ref, snap, sel),
	}, nil
}

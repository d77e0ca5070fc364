package repository

import (
	"context"
	"database/sql"

	"github.com/entradas/seatmap/internal/seatmap"
)

// Event links a sellable date to its venue and carries the per-event
// selection limit. Pricing overrides live in their own tables and are
// loaded separately.
type Event struct {
	ID                 string
	VenueID            string
	Name               string
	MaxSeats           int
	UsesSectionPricing bool
}

// EventRepo reads events and their pricing override hierarchy.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// GetByID returns the event row, or ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, eventID string) (*Event, error) {
	const q = `SELECT id, venue_id, name, max_seats, uses_section_pricing
	           FROM events WHERE id = ?`

	var e Event
	err := r.db.QueryRowContext(ctx, q, eventID).
		Scan(&e.ID, &e.VenueID, &e.Name, &e.MaxSeats, &e.UsesSectionPricing)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetPricing assembles the event's pricing override hierarchy: the
// event-level flag, one row per overridden section, and the per-row
// price table for sections that use it. Returns nil when the event
// does not use section pricing so the engine falls back to static
// section defaults.
func (r *EventRepo) GetPricing(ctx context.Context, event *Event) (*seatmap.EventPricing, error) {
	if !event.UsesSectionPricing {
		return nil, nil
	}

	const qSections = `SELECT section_id, default_price_cents, capacity, uses_row_pricing
	                   FROM event_section_pricing WHERE event_id = ?`
	rows, err := r.db.QueryContext(ctx, qSections, event.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pricing := &seatmap.EventPricing{UsesSectionPricing: true}
	for rows.Next() {
		var (
			sp       seatmap.SectionPricing
			capacity sql.NullInt32
		)
		if err := rows.Scan(&sp.SectionID, &sp.DefaultPriceCents, &capacity, &sp.UsesRowPricing); err != nil {
			return nil, err
		}
		sp.Capacity = int(capacity.Int32)
		pricing.Sections = append(pricing.Sections, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pricing.Sections {
		sp := &pricing.Sections[i]
		if !sp.UsesRowPricing {
			continue
		}
		const qRows = `SELECT row_number, price_cents FROM event_row_pricing
		               WHERE event_id = ? AND section_id = ? ORDER BY id`
		rr, err := r.db.QueryContext(ctx, qRows, event.ID, sp.SectionID)
		if err != nil {
			return nil, err
		}
		for rr.Next() {
			var rp seatmap.RowPrice
			if err := rr.Scan(&rp.Row, &rp.PriceCents); err != nil {
				rr.Close()
				return nil, err
			}
			sp.RowPricing = append(sp.RowPricing, rp)
		}
		if err := rr.Err(); err != nil {
			rr.Close()
			return nil, err
		}
		rr.Close()
	}
	return pricing, nil
}

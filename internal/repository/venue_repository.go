package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"

	"github.com/entradas/seatmap/internal/seatmap"
)

// VenueRepo loads venue descriptors. Venues and their sections are
// authored in the back office and treated as immutable here; the repo
// only reads, and the parsed result is cached per session by callers.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// GetByID reads a venue and all of its sections and returns the
// validated seat-map model. ErrVenueNotFound is returned when no venue
// row matches; structural problems in the stored descriptor surface as
// a seatmap validation error.
func (r *VenueRepo) GetByID(ctx context.Context, venueID string) (*seatmap.Venue, error) {
	const qVenue = `SELECT id, name, venue_type FROM venues WHERE id = ?`

	var raw seatmap.RawVenue
	err := r.db.QueryRowContext(ctx, qVenue, venueID).Scan(&raw.ID, &raw.Name, &raw.Type)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, err
	}

	const qSections = `SELECT id, name, position, has_numbered_seats,
	                          seat_rows, seat_cols, total_capacity,
	                          default_price_cents, color
	                   FROM sections WHERE venue_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, qSections, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rs       seatmap.RawSection
			position sql.NullString
			seatRows sql.NullInt32
			seatCols sql.NullInt32
			capacity sql.NullInt32
			color    sql.NullString
		)
		if err := rows.Scan(&rs.ID, &rs.Name, &position, &rs.HasNumberedSeats,
			&seatRows, &seatCols, &capacity, &rs.DefaultPriceCents, &color); err != nil {
			return nil, err
		}
		rs.Position = position.String
		rs.Rows = int(seatRows.Int32)
		rs.SeatsPerRow = int(seatCols.Int32)
		rs.TotalCapacity = int(capacity.Int32)
		rs.Color = color.String
		raw.Sections = append(raw.Sections, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seatmap.ParseVenue(raw)
}

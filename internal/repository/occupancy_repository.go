package repository

import (
	"context"
	"database/sql"
)

// OccupancyRepo reads the occupied-seat set for an event. The sales
// backend writes these rows when tickets are sold; this service never
// inserts or deletes them.
type OccupancyRepo struct {
	db *sql.DB
}

// NewOccupancyRepo constructs an OccupancyRepo with the given DB handle.
func NewOccupancyRepo(db *sql.DB) *OccupancyRepo {
	return &OccupancyRepo{db: db}
}

// OccupiedSeatIDs returns the canonical ids of every sold unit of the
// event. The result is a point-in-time snapshot; callers cache it and
// refresh on occupancy events.
func (r *OccupancyRepo) OccupiedSeatIDs(ctx context.Context, eventID string) ([]string, error) {
	const q = `SELECT seat_id FROM occupied_seats WHERE event_id = ?`

	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0, 64)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

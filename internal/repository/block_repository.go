package repository

import (
	"context"
	"database/sql"
	"strings"
)

// BlockRepo persists the administrative blocking workflow: individual
// seats and whole sections withheld from sale for an event. These are
// the only tables this service writes.
type BlockRepo struct {
	db *sql.DB
}

// NewBlockRepo constructs a BlockRepo with the given DB handle.
func NewBlockRepo(db *sql.DB) *BlockRepo {
	return &BlockRepo{db: db}
}

// BlockedSeatIDs returns the canonical ids of seats blocked for the
// event.
func (r *BlockRepo) BlockedSeatIDs(ctx context.Context, eventID string) ([]string, error) {
	return r.queryIDs(ctx, `SELECT seat_id FROM blocked_seats WHERE event_id = ?`, eventID)
}

// BlockedSectionIDs returns the ids of sections blocked for the event.
func (r *BlockRepo) BlockedSectionIDs(ctx context.Context, eventID string) ([]string, error) {
	return r.queryIDs(ctx, `SELECT section_id FROM blocked_sections WHERE event_id = ?`, eventID)
}

func (r *BlockRepo) queryIDs(ctx context.Context, q, eventID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// BlockSeats inserts block entries for a batch of canonical seat ids.
// Re-blocking an already blocked seat is a no-op rather than an error.
func (r *BlockRepo) BlockSeats(ctx context.Context, eventID string, seatIDs []string) error {
	if len(seatIDs) == 0 {
		return nil
	}
	q := `INSERT IGNORE INTO blocked_seats (event_id, seat_id) VALUES ` +
		strings.TrimSuffix(strings.Repeat("(?, ?),", len(seatIDs)), ",")
	args := make([]any, 0, len(seatIDs)*2)
	for _, id := range seatIDs {
		args = append(args, eventID, id)
	}
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

// UnblockSeats removes block entries for a batch of canonical seat ids.
func (r *BlockRepo) UnblockSeats(ctx context.Context, eventID string, seatIDs []string) error {
	if len(seatIDs) == 0 {
		return nil
	}
	q := `DELETE FROM blocked_seats WHERE event_id = ? AND seat_id IN (?` +
		strings.Repeat(",?", len(seatIDs)-1) + `)`
	args := make([]any, 0, len(seatIDs)+1)
	args = append(args, eventID)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

// BlockSection withholds a whole section from sale.
func (r *BlockRepo) BlockSection(ctx context.Context, eventID, sectionID string) error {
	const q = `INSERT IGNORE INTO blocked_sections (event_id, section_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, q, eventID, sectionID)
	return err
}

// UnblockSection releases a section block.
func (r *BlockRepo) UnblockSection(ctx context.Context, eventID, sectionID string) error {
	const q = `DELETE FROM blocked_sections WHERE event_id = ? AND section_id = ?`
	_, err := r.db.ExecContext(ctx, q, eventID, sectionID)
	return err
}

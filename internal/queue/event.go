// Package queue defines message payloads exchanged over the message
// broker and the background consumer that keeps the occupancy cache
// fresh.
package queue

// OccupancyUpdatedEvent is published by the sales backend whenever the
// occupied-seat set of an event changes. It carries only the event id;
// consumers re-read the authoritative set from the database.
type OccupancyUpdatedEvent struct {
	EventID   string `json:"event_id"`
	UpdatedAt string `json:"updated_at"`
}

// BlocksUpdatedEvent is published after an administrator changes the
// blocked seats or sections of an event, so storefront instances and
// any auditing consumer can react without polling.
type BlocksUpdatedEvent struct {
	EventID    string   `json:"event_id"`
	Action     string   `json:"action"` // "block" or "unblock"
	SeatIDs    []string `json:"seat_ids,omitempty"`
	SectionIDs []string `json:"section_ids,omitempty"`
	UpdatedAt  string   `json:"updated_at"`
}

package handler // handler defines the HTTP surface of the seat-map service

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/entradas/seatmap/internal/cache"
	"github.com/entradas/seatmap/internal/repository"
	"github.com/entradas/seatmap/internal/seatmap"
)

// VenueStore loads immutable venue descriptors.
type VenueStore interface {
	GetByID(ctx context.Context, venueID string) (*seatmap.Venue, error)
}

// EventStore loads events and their pricing overrides.
type EventStore interface {
	GetByID(ctx context.Context, eventID string) (*repository.Event, error)
	GetPricing(ctx context.Context, event *repository.Event) (*seatmap.EventPricing, error)
}

// OccupancyStore reads the sold-seat set written by the sales backend.
type OccupancyStore interface {
	OccupiedSeatIDs(ctx context.Context, eventID string) ([]string, error)
}

// BlockStore reads and writes the administrative blocking state.
type BlockStore interface {
	BlockedSeatIDs(ctx context.Context, eventID string) ([]string, error)
	BlockedSectionIDs(ctx context.Context, eventID string) ([]string, error)
	BlockSeats(ctx context.Context, eventID string, seatIDs []string) error
	UnblockSeats(ctx context.Context, eventID string, seatIDs []string) error
	BlockSection(ctx context.Context, eventID, sectionID string) error
	UnblockSection(ctx context.Context, eventID, sectionID string) error
}

// SeatMapHandler serves the public seat-map and selection endpoints.
type SeatMapHandler struct {
	Venues    VenueStore
	Events    EventStore
	Occupancy OccupancyStore
	Blocks    BlockStore
	Cache     *cache.OccupancyCache
	MaxSeats  int // hard ceiling on the per-session selection limit
}

// NewSeatMapHandler constructs a SeatMapHandler and panics if any
// dependency is nil.
func NewSeatMapHandler(venues VenueStore, events EventStore, occupancy OccupancyStore, blocks BlockStore, occ *cache.OccupancyCache, maxSeats int) *SeatMapHandler {
	if venues == nil || events == nil || occupancy == nil || blocks == nil || occ == nil {
		panic("nil dependency passed to NewSeatMapHandler")
	}
	if maxSeats < 1 {
		maxSeats = 1
	}
	return &SeatMapHandler{
		Venues:    venues,
		Events:    events,
		Occupancy: occupancy,
		Blocks:    blocks,
		Cache:     occ,
		MaxSeats:  maxSeats,
	}
}

// loadSession assembles everything one engine call needs: the event,
// its venue parsed into an engine, and a fresh occupancy/blocking
// snapshot. Occupancy goes through the Redis cache; blocks are small
// admin-curated sets and always read from the database.
func (h *SeatMapHandler) loadSession(ctx context.Context, eventID string) (*seatmap.Engine, *repository.Event, seatmap.Snapshot, error) {
	event, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, seatmap.Snapshot{}, err
	}
	venue, err := h.Venues.GetByID(ctx, event.VenueID)
	if err != nil {
		return nil, nil, seatmap.Snapshot{}, err
	}
	pricing, err := h.Events.GetPricing(ctx, event)
	if err != nil {
		return nil, nil, seatmap.Snapshot{}, err
	}

	occupied, ok := h.Cache.Get(ctx, eventID)
	if !ok {
		occupied, err = h.Occupancy.OccupiedSeatIDs(ctx, eventID)
		if err != nil {
			return nil, nil, seatmap.Snapshot{}, err
		}
		h.Cache.Set(ctx, eventID, occupied)
	}
	blockedSeats, err := h.Blocks.BlockedSeatIDs(ctx, eventID)
	if err != nil {
		return nil, nil, seatmap.Snapshot{}, err
	}
	blockedSections, err := h.Blocks.BlockedSectionIDs(ctx, eventID)
	if err != nil {
		return nil, nil, seatmap.Snapshot{}, err
	}

	engine := seatmap.New(venue, pricing)
	snap := seatmap.NewSnapshot(occupied, blockedSeats, blockedSections)
	return engine, event, snap, nil
}

// maxSeatsFor clamps a client-requested limit to the configured
// ceiling; zero or negative means "use the event's limit".
func (h *SeatMapHandler) maxSeatsFor(event *repository.Event, requested int) int {
	limit := event.MaxSeats
	if limit <= 0 || limit > h.MaxSeats {
		limit = h.MaxSeats
	}
	if requested > 0 && requested < limit {
		return requested
	}
	return limit
}

// writeError maps domain errors onto HTTP responses. Selection
// rejections carry a machine-readable kind so the storefront can show
// a specific message.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrVenueNotFound),
		errors.Is(err, seatmap.ErrUnknownSection):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, seatmap.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, seatmap.ErrUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "unavailable", "detail": err.Error()})
	case errors.Is(err, seatmap.ErrLimitReached):
		return c.JSON(http.StatusConflict, echo.Map{"error": "limit_reached", "detail": err.Error()})
	case errors.Is(err, seatmap.ErrCapacityExceeded):
		return c.JSON(http.StatusConflict, echo.Map{"error": "capacity_exceeded", "detail": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

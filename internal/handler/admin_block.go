package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/entradas/seatmap/internal/queue"
	queue_publisher "github.com/entradas/seatmap/internal/service"
)

// AdminHandler implements the seat-blocking workflow: operators
// withhold individual seats or whole sections from sale while holding
// them for sponsors, repairs or camera platforms.
type AdminHandler struct {
	Events EventStore
	Venues VenueStore
	Blocks BlockStore

	// Publish emits a BlocksUpdatedEvent after a successful change.
	// Overridable so tests run without a broker.
	Publish func(ctx context.Context, ev queue.BlocksUpdatedEvent) error
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil. Block state is always read fresh from the
// database, so changing it needs no cache invalidation; only the
// occupancy snapshots are cached, and those belong to the sales
// backend.
func NewAdminHandler(events EventStore, venues VenueStore, blocks BlockStore) *AdminHandler {
	if events == nil || venues == nil || blocks == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{
		Events:  events,
		Venues:  venues,
		Blocks:  blocks,
		Publish: queue_publisher.PublishBlocksUpdated,
	}
}

type blockSeatsRequest struct {
	SeatIDs []string `json:"seat_ids"`
}

type blockSectionRequest struct {
	SectionID string `json:"section_id"`
}

// BlockSeats handles POST /v1/admin/events/:id/blocked-seats and
// withholds a batch of seats, identified by canonical id, from sale.
func (h *AdminHandler) BlockSeats(c echo.Context) error {
	return h.changeSeats(c, "block")
}

// UnblockSeats handles POST /v1/admin/events/:id/blocked-seats/delete
// and releases a batch of previously blocked seats.
func (h *AdminHandler) UnblockSeats(c echo.Context) error {
	return h.changeSeats(c, "unblock")
}

func (h *AdminHandler) changeSeats(c echo.Context, action string) error {
	eventID := c.Param("id")
	var body blockSeatsRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}

	ctx := c.Request().Context()
	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		return writeError(c, err)
	}

	var err error
	if action == "block" {
		err = h.Blocks.BlockSeats(ctx, eventID, body.SeatIDs)
	} else {
		err = h.Blocks.UnblockSeats(ctx, eventID, body.SeatIDs)
	}
	if err != nil {
		return writeError(c, err)
	}

	h.notify(ctx, queue.BlocksUpdatedEvent{
		EventID: eventID,
		Action:  action,
		SeatIDs: body.SeatIDs,
	})
	return c.JSON(http.StatusOK, echo.Map{"event_id": eventID, "action": action, "seats": len(body.SeatIDs)})
}

// BlockSection handles POST /v1/admin/events/:id/blocked-sections and
// withholds a whole section. The section must exist in the event's
// venue; blocking a typo'd id would silently do nothing for sales
// while looking successful to the operator.
func (h *AdminHandler) BlockSection(c echo.Context) error {
	eventID := c.Param("id")
	var body blockSectionRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.SectionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "section_id is required"})
	}

	ctx := c.Request().Context()
	event, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		return writeError(c, err)
	}
	venue, err := h.Venues.GetByID(ctx, event.VenueID)
	if err != nil {
		return writeError(c, err)
	}
	if _, ok := venue.Section(body.SectionID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown section", "section_id": body.SectionID})
	}

	if err := h.Blocks.BlockSection(ctx, eventID, body.SectionID); err != nil {
		return writeError(c, err)
	}
	h.notify(ctx, queue.BlocksUpdatedEvent{
		EventID:    eventID,
		Action:     "block",
		SectionIDs: []string{body.SectionID},
	})
	return c.JSON(http.StatusOK, echo.Map{"event_id": eventID, "action": "block", "section_id": body.SectionID})
}

// UnblockSection handles DELETE /v1/admin/events/:id/blocked-sections/:sectionID.
func (h *AdminHandler) UnblockSection(c echo.Context) error {
	eventID := c.Param("id")
	sectionID := c.Param("sectionID")

	ctx := c.Request().Context()
	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		return writeError(c, err)
	}
	if err := h.Blocks.UnblockSection(ctx, eventID, sectionID); err != nil {
		return writeError(c, err)
	}
	h.notify(ctx, queue.BlocksUpdatedEvent{
		EventID:    eventID,
		Action:     "unblock",
		SectionIDs: []string{sectionID},
	})
	return c.JSON(http.StatusOK, echo.Map{"event_id": eventID, "action": "unblock", "section_id": sectionID})
}

// notify publishes the change event. Publish failures are already
// logged by the publisher and never fail the admin request.
func (h *AdminHandler) notify(ctx context.Context, ev queue.BlocksUpdatedEvent) {
	ev.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	_ = h.Publish(ctx, ev)
}

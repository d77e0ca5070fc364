package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/entradas/seatmap/internal/seatmap"
)

// toggleRequest is the stateless toggle payload: the caller owns its
// selection and sends it with every request, so the server keeps no
// per-session state and independent tabs never interfere.
type toggleRequest struct {
	Unit      seatmap.SeatUnit  `json:"unit"`
	Selection seatmap.Selection `json:"selection"`
	MaxSeats  int               `json:"max_seats,omitempty"`
}

type toggleResponse struct {
	Selection  seatmap.Selection `json:"selection"`
	Count      int               `json:"count"`
	TotalCents uint64            `json:"total_cents"`
}

// ToggleSelection handles POST /v1/events/:id/selection. It adds the
// unit to the submitted selection or removes it when already held,
// validating against a fresh occupancy snapshot, and returns the new
// selection. Rejections come back as 409 with a machine-readable kind.
func (h *SeatMapHandler) ToggleSelection(c echo.Context) error {
	eventID := c.Param("id")

	var body toggleRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Unit.SectionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unit.section_id is required"})
	}

	ctx := c.Request().Context()
	engine, event, snap, err := h.loadSession(ctx, eventID)
	if err != nil {
		return writeError(c, err)
	}

	maxSeats := h.maxSeatsFor(event, body.MaxSeats)
	sel, err := engine.Toggle(body.Unit, body.Selection, snap, maxSeats)
	if err != nil {
		return writeError(c, err)
	}
	if sel == nil {
		sel = seatmap.Selection{} // serialize as [] rather than null
	}

	return c.JSON(http.StatusOK, toggleResponse{
		Selection:  sel,
		Count:      len(sel),
		TotalCents: sel.TotalCents(),
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/entradas/seatmap/internal/seatmap"
)

// sectionView is one section of the seat-map response. Numbered
// sections carry a grid of classified cells in render order; general
// admission sections carry their unit price, state and remaining
// capacity instead. Display dimensions are already axis-swapped for
// lateral stands, so the renderer iterates rows x seats verbatim.
type sectionView struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Role               seatmap.SectionRole    `json:"role"`
	Color              string                 `json:"color,omitempty"`
	GeneralAdmission   bool                   `json:"general_admission,omitempty"`
	DisplayRows        int                    `json:"display_rows,omitempty"`
	DisplaySeatsPerRow int                    `json:"display_seats_per_row,omitempty"`
	Grid               [][]seatmap.Classified `json:"grid,omitempty"`
	PriceCents         uint32                 `json:"price_cents,omitempty"`
	State              seatmap.SeatState      `json:"state,omitempty"`
	RemainingCapacity  int                    `json:"remaining_capacity,omitempty"`
}

type seatMapResponse struct {
	EventID   string            `json:"event_id"`
	EventName string            `json:"event_name"`
	VenueID   string            `json:"venue_id"`
	VenueName string            `json:"venue_name"`
	VenueType seatmap.VenueType `json:"venue_type"`
	MaxSeats  int               `json:"max_seats"`
	Sections  []sectionView     `json:"sections"`
}

// GetSeatMap handles GET /v1/events/:id/seatmap and returns the fully
// classified seat map for an event. Selection state is client-owned,
// so every cell here classifies against an empty selection; the
// storefront overlays its own held seats.
func (h *SeatMapHandler) GetSeatMap(c echo.Context) error {
	eventID := c.Param("id")
	ctx := c.Request().Context()

	engine, event, snap, err := h.loadSession(ctx, eventID)
	if err != nil {
		return writeError(c, err)
	}

	venue := engine.Venue()
	resp := seatMapResponse{
		EventID:   event.ID,
		EventName: event.Name,
		VenueID:   venue.ID,
		VenueName: venue.Name,
		VenueType: venue.Type,
		MaxSeats:  h.maxSeatsFor(event, 0),
		Sections:  make([]sectionView, 0, len(venue.Sections)),
	}

	for i := range venue.Sections {
		s := &venue.Sections[i]
		view := sectionView{
			ID:    s.ID,
			Name:  s.Name,
			Role:  s.Role,
			Color: s.Color,
		}
		if !s.HasNumberedSeats {
			view.GeneralAdmission = true
			price, err := engine.Price(s.ID, 0)
			if err != nil {
				return writeError(c, err)
			}
			view.PriceCents = price
			state, err := engine.GeneralAdmissionState(s.ID, "", snap, nil)
			if err != nil {
				return writeError(c, err)
			}
			remaining, err := engine.RemainingCapacity(s.ID, snap)
			if err != nil {
				return writeError(c, err)
			}
			view.State = state
			view.RemainingCapacity = remaining
			resp.Sections = append(resp.Sections, view)
			continue
		}

		view.DisplayRows = s.DisplayRows()
		view.DisplaySeatsPerRow = s.DisplaySeatsPerRow()
		view.Grid = make([][]seatmap.Classified, 0, view.DisplayRows)
		for rr := 0; rr < view.DisplayRows; rr++ {
			row := make([]seatmap.Classified, 0, view.DisplaySeatsPerRow)
			for rs := 0; rs < view.DisplaySeatsPerRow; rs++ {
				cell, err := engine.Classify(s.ID, rr, rs, snap, nil)
				if err != nil {
					return writeError(c, err)
				}
				row = append(row, cell)
			}
			view.Grid = append(view.Grid, row)
		}
		resp.Sections = append(resp.Sections, view)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetRemainingCapacity handles GET /v1/events/:id/sections/:sectionID/capacity
// and returns the live remaining capacity of one general-admission
// section, for storefronts that poll it between full map loads.
func (h *SeatMapHandler) GetRemainingCapacity(c echo.Context) error {
	eventID := c.Param("id")
	sectionID := c.Param("sectionID")
	ctx := c.Request().Context()

	engine, _, snap, err := h.loadSession(ctx, eventID)
	if err != nil {
		return writeError(c, err)
	}
	remaining, err := engine.RemainingCapacity(sectionID, snap)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"event_id":           eventID,
		"section_id":         sectionID,
		"remaining_capacity": remaining,
	})
}

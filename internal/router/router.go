package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/entradas/seatmap/internal/handler"    // import the handlers that implement business logic
	"github.com/entradas/seatmap/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler. This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the storefront seat-map endpoints. These routes
// serve anonymous visitors and carry the rate-limit middleware so a single
// client cannot hammer the snapshot or toggle endpoints.
func RegisterPublic(e *echo.Echo, h *handler.SeatMapHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/events", limit)
	// Full render-ready seat map for an event.
	g.GET("/:id/seatmap", h.GetSeatMap)
	// Remaining capacity for a single general-admission section.
	g.GET("/:id/sections/:sectionID/capacity", h.GetRemainingCapacity)
	// Stateless selection toggle: the client sends its current selection
	// and receives the updated one back.
	g.POST("/:id/selection", h.ToggleSelection)
}

// RegisterAuth registers the admin login endpoint. There is no visitor
// registration; the only credential is the operator account from the
// environment.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/v1/auth/login", a.Login)
}

// RegisterAdmin registers the seat/section blocking endpoints. All routes in
// the group require a valid access token carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	g.Use(middleware.JWTAuth(jwtSecret))
	// Only the operator role may manage blocks.
	g.Use(middleware.RequireRole("ADMIN"))

	g.POST("/events/:id/blocked-seats", a.BlockSeats)
	g.POST("/events/:id/blocked-seats/delete", a.UnblockSeats)
	g.POST("/events/:id/blocked-sections", a.BlockSection)
	g.DELETE("/events/:id/blocked-sections/:sectionID", a.UnblockSection)
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wedding-venue-booking/internal/handler"
	"github.com/iliyamo/wedding-venue-booking/internal/middleware"
)

// RegisterHealth registers the unauthenticated health check used by
// load balancers and monitoring.
func RegisterHealth(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", h.Check)
}

// RegisterAuth wires the staff session endpoints.  Login, refresh and
// logout are open; register is ADMIN-only because staff accounts are
// provisioned, never self-served; /v1/me requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	admin := e.Group("/v1/auth")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("/register", a.Register)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterCatalog wires hall and menu management.  Reads are open to
// any authenticated staff; mutations require ADMIN.
func RegisterCatalog(e *echo.Echo, hh *handler.HallHandler, mh *handler.MenuHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	read := e.Group("/v1")
	read.Use(middleware.JWTAuth(jwtSecret))
	read.GET("/halls", hh.List, cache)
	read.GET("/halls/:id", hh.Get)
	read.GET("/menu", mh.List, cache)
	read.GET("/menu/:id", mh.Get)
	read.GET("/menu/:id/components", mh.Components)

	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("/halls", hh.Create)
	admin.PUT("/halls/:id", hh.Update)
	admin.DELETE("/halls/:id", hh.Delete)
	admin.POST("/menu", mh.Create)
	admin.PUT("/menu/:id", mh.Update)
	admin.DELETE("/menu/:id", mh.Delete)
	admin.PUT("/menu/:id/components", mh.ReplaceComponents)
}

// RegisterBookings wires customers, availability, quotes and the
// booking commit path.  All endpoints require an authenticated staff
// session; the availability lookup additionally goes through the
// response cache and the token bucket limiter because the booking
// form polls it on every date change.
func RegisterBookings(
	e *echo.Echo,
	ch *handler.CustomerHandler,
	bh *handler.BookingHandler,
	jwtSecret string,
	cache echo.MiddlewareFunc,
	limit echo.MiddlewareFunc,
) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN", "STAFF"))

	g.GET("/customers", ch.List)
	g.GET("/customers/:id", ch.Get)
	g.POST("/customers", ch.Create)

	g.GET("/availability", bh.Availability, limit, cache)
	g.POST("/bookings/quote", bh.Quote)
	g.POST("/bookings", bh.Create)
	g.GET("/bookings", bh.List)
}

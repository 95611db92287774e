package router // HTTP route registration

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/okalan/surprise-trip-booking/internal/config"
	"github.com/okalan/surprise-trip-booking/internal/handler"
	"github.com/okalan/surprise-trip-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently only the health check used by load balancers lives here.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterBookingFlow registers everything behind the booking wizard: the
// profile endpoints, flight search, the wizard transitions and the booking
// history. All routes require a valid access token; flight search
// additionally goes through the Redis response cache since the catalog is
// static.
func RegisterBookingFlow(e *echo.Echo, p *handler.ProfileHandler, w *handler.WizardHandler, b *handler.BookingHandler, jwtSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.GET("/profile", p.Get)
	g.POST("/profile", p.Create)
	g.PUT("/profile", p.Update)
	g.GET("/profile/options", p.Options)

	g.GET("/flights/search", handler.SearchFlights, middleware.NewRedisCache(cacheCfg, rdb))

	g.GET("/wizard", w.State)
	g.POST("/wizard/flight", w.SelectFlight)
	g.POST("/wizard/accept", w.Accept)
	g.POST("/wizard/decline", w.Decline)
	g.GET("/wizard/summary", w.Summary)

	g.GET("/bookings", b.List)
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/contactanuptop/movie-booking/internal/config"
	"github.com/contactanuptop/movie-booking/internal/handler"
	"github.com/contactanuptop/movie-booking/internal/middleware"
)

// RegisterRoutes registers routes that carry no authentication or
// Redis-backed middleware. Currently that is only the health check used
// by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the token-issuing endpoints under /v1/auth.
// Neither requires an existing session: login authenticates the
// configured owner account and guest hands out customer tokens.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/guest", a.Guest)
}

// RegisterPublic registers the unauthenticated browse endpoints. When a
// Redis client is available the listing responses are served through
// the response cache; the per-show seat listing is deliberately left
// uncached so callers always see live availability.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.ResponseCache(cacheCfg, rdb)
	e.GET("/v1/movies", p.GetMovies, cached)
	e.GET("/v1/movies/active", p.GetActiveMovies, cached)
	e.GET("/v1/theaters", p.GetTheaters, cached)
	e.GET("/v1/movies/:id/theaters", p.GetTheatersForMovie, cached)
	e.GET("/v1/shows", p.GetShows)
	e.GET("/v1/shows/:id/seats", p.GetShowSeats)
}

// RegisterOwner registers the catalog mutations under JWT + OWNER role
// enforcement.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("OWNER"))
	g.POST("/movies", o.CreateMovie)
	g.POST("/theaters", o.CreateTheater)
	g.POST("/shows", o.CreateShow)
}

// RegisterCustomer registers the booking endpoint. Any authenticated
// role may book; the rate limiter sits behind JWTAuth so buckets are
// keyed by the authenticated user rather than "guest".
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
	g.Use(middleware.RateLimit(rlCfg, rdb))
	g.POST("/shows/:id/book", h.BookSeats)
}

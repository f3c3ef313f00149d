package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/stayfinder/internal/pkg/metrics"
)

const requestTimeout = 15 * time.Second

// RouteOptions tunes SetupRoutes. The zero value is usable.
type RouteOptions struct {
	RateLimit   int    // requests per minute per IP; 0 disables
	OpenAPIPath string // default api/openapi.yaml
}

// SetupRoutes registers all REST, GraphQL, and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies, opts RouteOptions) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(requestid.New())
	app.Use(RequestIDLogMiddleware())
	app.Use(AccessLogMiddleware())

	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/metrics"
			},
			LimitReached: func(c *fiber.Ctx) error {
				return newError(c, fiber.StatusTooManyRequests, "rate_limited", "too many requests, please try again later")
			},
		}))
	}

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	app.Use(ETagMiddleware())
	app.Use(CachingMiddleware())

	// Health & readiness (no timeout, fast internal checks)
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	v1 := app.Group("/v1")
	v1.Get("/listings", timeout.NewWithContext(ListListingsHandler(deps), requestTimeout))
	v1.Get("/listings/:id", timeout.NewWithContext(GetListingHandler(deps), requestTimeout))
	v1.Post("/listings/:id/select", timeout.NewWithContext(SelectListingHandler(deps), requestTimeout))
	v1.Get("/search", timeout.NewWithContext(SearchHandler(deps), requestTimeout))
	v1.Get("/locations/resolve", ResolveHandler(deps))
	v1.Get("/viewport", ViewportHandler(deps))
	v1.Get("/regions", RegionsHandler(deps))
	v1.Get("/price-range", timeout.NewWithContext(PriceRangeHandler(deps), requestTimeout))

	app.Post("/graphql", GraphQLHandler(deps))

	specPath := opts.OpenAPIPath
	if specPath == "" {
		specPath = "api/openapi.yaml"
	}
	SetupDocs(app, specPath)

	// WebSocket live search
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(LiveSearchHandler(deps)))
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/samirrijal/stayfinder/internal/adapters/fixture"
	"github.com/samirrijal/stayfinder/internal/adapters/http"
	natsadapter "github.com/samirrijal/stayfinder/internal/adapters/nats"
	"github.com/samirrijal/stayfinder/internal/adapters/postgres"
	"github.com/samirrijal/stayfinder/internal/adapters/valkey"
	"github.com/samirrijal/stayfinder/internal/core/ports"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/config"
	"github.com/samirrijal/stayfinder/internal/pkg/geodata"
	"github.com/samirrijal/stayfinder/internal/pkg/logging"
	"github.com/samirrijal/stayfinder/internal/pkg/metrics"
	"github.com/samirrijal/stayfinder/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("stayfinder-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Geo tables
	tables := geodata.Defaults()
	if cfg.Geo.TablesFile != "" {
		if tables, err = geodata.Load(cfg.Geo.TablesFile); err != nil {
			log.Fatalf("geo tables: %v", err)
		}
	}

	// Catalog
	var (
		repo ports.ListingRepository
		db   *postgres.DB
	)
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		db, err = postgres.New(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		repo = postgres.NewListingRepo(db)
		go reportPoolStats(ctx, db)
	default:
		listings, err := fixture.Load(cfg.Catalog.FixturePath)
		if err != nil {
			log.Fatalf("fixture catalog: %v", err)
		}
		repo = fixture.NewRepo(listings)
		metrics.CatalogSize.Set(float64(len(listings)))
	}
	slog.Info("catalog source selected", "source", cfg.Catalog.Source)

	// Cache
	var (
		cache     *valkey.Cache
		cachePort ports.CacheService
	)
	if cfg.Valkey.Addr != "" {
		if cache, err = valkey.New(cfg.Valkey.Addr); err != nil {
			slog.Warn("valkey unavailable", "error", err)
		} else {
			defer cache.Close()
			cachePort = cache
		}
	}

	// NATS
	var (
		publisher  ports.EventPublisher
		navigator  ports.Navigator
		subscriber *natsadapter.Subscriber
	)
	if cfg.NATS.URL != "" {
		if nc, err := natsadapter.NewPublisher(cfg.NATS.URL); err != nil {
			slog.Warn("nats unavailable", "error", err)
		} else {
			defer nc.Close()
			publisher, navigator = nc, nc
		}
		if subscriber, err = natsadapter.NewSubscriber(cfg.NATS.URL); err != nil {
			slog.Warn("nats subscriber unavailable", "error", err)
		} else {
			defer subscriber.Close()
		}
	}

	// Use cases
	assembler := usecases.NewAssembler(
		usecases.NewLocationResolver(tables.Locations, cfg.Geo.Jitter),
		usecases.NewViewportLocator(tables.Regions, tables.Default),
	)
	listingSvc := usecases.NewListingService(repo, cachePort)
	searchSvc := usecases.NewSearchService(listingSvc, assembler, publisher, navigator)
	watcher := usecases.NewCatalogWatcher(listingSvc)

	deps := &http.Dependencies{
		Listings: listingSvc,
		Search:   searchSvc,
		Catalog:  watcher,
		DB:       db,
		Cache:    cache,
	}
	if subscriber != nil {
		if err := watcher.Watch(ctx, subscriber); err != nil {
			slog.Warn("catalog updates unavailable", "error", err)
		}
		deps.NATS = subscriber.Conn()
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    64 * 1024,
		AppName:      "Stayfinder API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps, http.RouteOptions{RateLimit: 120})

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

func reportPoolStats(ctx context.Context, db *postgres.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateDBPoolMetrics(db.Pool.Stat())
		}
	}
}

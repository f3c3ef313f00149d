package main

import (
	"context"
	"log"
	"log/slog"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/samirrijal/stayfinder/internal/adapters/fixture"
	natsadapter "github.com/samirrijal/stayfinder/internal/adapters/nats"
	"github.com/samirrijal/stayfinder/internal/adapters/postgres"
	"github.com/samirrijal/stayfinder/internal/adapters/valkey"
	"github.com/samirrijal/stayfinder/internal/core/ports"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/config"
	"github.com/samirrijal/stayfinder/internal/pkg/logging"
	"github.com/samirrijal/stayfinder/internal/workflows"
)

// syncer runs the catalog sync worker. It always writes to Postgres,
// whatever catalog source the API is configured with.
func main() {
	cfg, err := config.Load("stayfinder-syncer")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()

	db, err := postgres.New(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	repo := postgres.NewListingRepo(db)

	var cachePort ports.CacheService
	if cfg.Valkey.Addr != "" {
		if cache, err := valkey.New(cfg.Valkey.Addr); err != nil {
			slog.Warn("valkey unavailable", "error", err)
		} else {
			defer cache.Close()
			cachePort = cache
		}
	}

	acts := &workflows.SyncActivities{
		Load:     fixture.Load,
		Writer:   repo,
		Listings: usecases.NewListingService(repo, cachePort),
	}
	if cfg.NATS.URL != "" {
		if nc, err := natsadapter.NewPublisher(cfg.NATS.URL); err != nil {
			slog.Warn("nats unavailable, catalog updates will not be announced", "error", err)
		} else {
			defer nc.Close()
			acts.Events = nc
		}
	}

	// Connect to Temporal
	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		log.Fatalf("temporal client: %v", err)
	}
	defer c.Close()

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflows.CatalogSyncWorkflow)
	w.RegisterActivity(acts)

	slog.Info("catalog sync worker started", "task_queue", cfg.Temporal.TaskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("worker: %v", err)
	}
}

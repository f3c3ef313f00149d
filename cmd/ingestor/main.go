package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/samirrijal/stayfinder/internal/pkg/config"
	"github.com/samirrijal/stayfinder/internal/pkg/logging"
	"github.com/samirrijal/stayfinder/internal/workflows"
)

// ingestor asks the sync worker to load a listing file into the catalog and
// waits for the run to finish.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: ingestor <listings.json>")
	}

	cfg, err := config.Load("stayfinder-ingestor")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	path, err := filepath.Abs(os.Args[1])
	if err != nil {
		log.Fatalf("path: %v", err)
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		log.Fatalf("temporal client: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "catalog-sync-" + uuid.NewString(),
		TaskQueue: cfg.Temporal.TaskQueue,
	}, workflows.CatalogSyncWorkflow, workflows.CatalogSyncInput{Path: path})
	if err != nil {
		log.Fatalf("start workflow: %v", err)
	}
	slog.Info("catalog sync started", "workflow_id", run.GetID(), "run_id", run.GetRunID(), "path", path)

	var res workflows.CatalogSyncResult
	if err := run.Get(ctx, &res); err != nil {
		log.Fatalf("catalog sync failed: %v", err)
	}
	slog.Info("catalog sync complete",
		"upserted", res.Upserted,
		"catalog_size", res.CatalogSize,
		"published", res.Published,
	)
}

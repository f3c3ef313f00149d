package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// CatalogSyncInput is the input for the catalog sync workflow.
type CatalogSyncInput struct {
	Path string
}

// CatalogSyncResult reports what a sync run did.
type CatalogSyncResult struct {
	Upserted    int
	CatalogSize int
	Published   bool
}

// CatalogSyncWorkflow loads a listing file into the catalog store, refreshes
// the catalog cache and announces the update. A failed announcement does not
// fail the run; other instances pick the change up when their cache expires.
func CatalogSyncWorkflow(ctx workflow.Context, input CatalogSyncInput) (*CatalogSyncResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting catalog sync", "path", input.Path)

	actOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, actOpts)

	// Step 1: Read and validate the file (not retried)
	readCtx := workflow.WithRetryPolicy(ctx, temporal.RetryPolicy{MaximumAttempts: 1})
	var listings []domain.Listing
	if err := workflow.ExecuteActivity(readCtx, "ReadCatalogFile", input.Path).Get(ctx, &listings); err != nil {
		return nil, err
	}

	res := &CatalogSyncResult{}

	// Step 2: Upsert
	if err := workflow.ExecuteActivity(ctx, "UpsertListings", listings).Get(ctx, &res.Upserted); err != nil {
		return nil, err
	}

	// Step 3: Refresh the cache
	if err := workflow.ExecuteActivity(ctx, "InvalidateCatalogCache").Get(ctx, &res.CatalogSize); err != nil {
		return nil, err
	}

	// Step 4: Announce
	if err := workflow.ExecuteActivity(ctx, "PublishCatalogUpdated", res.CatalogSize).Get(ctx, nil); err != nil {
		logger.Warn("catalog update announcement failed", "error", err)
		return res, nil
	}
	res.Published = true

	logger.Info("Catalog sync complete", "upserted", res.Upserted, "size", res.CatalogSize)
	return res, nil
}

package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"github.com/samirrijal/stayfinder/internal/adapters/fixture"
	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/workflows"
)

type fakePublisher struct {
	counts []int
	err    error
}

func (p *fakePublisher) PublishSearch(ctx context.Context, e *domain.SearchEvent) error { return nil }

func (p *fakePublisher) PublishCatalogUpdated(ctx context.Context, count int) error {
	if p.err != nil {
		return p.err
	}
	p.counts = append(p.counts, count)
	return nil
}

func incoming() []domain.Listing {
	return []domain.Listing{
		{ID: "a", Title: "Beach House", LocationName: "Malibu, California", Price: 300},
		{ID: "b", Title: "Loft", LocationName: "New York, New York", Price: 180},
	}
}

func newEnv(t *testing.T, acts *workflows.SyncActivities) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(workflows.CatalogSyncWorkflow)
	env.RegisterActivity(acts)
	return env
}

func TestCatalogSyncWorkflow(t *testing.T) {
	repo := fixture.NewRepo([]domain.Listing{
		{ID: "a", Title: "Old Title", LocationName: "Malibu, California", Price: 250},
		{ID: "z", Title: "Cabin", LocationName: "Aspen, Colorado", Price: 400},
	})
	pub := &fakePublisher{}
	var loaded string

	env := newEnv(t, &workflows.SyncActivities{
		Load: func(path string) ([]domain.Listing, error) {
			loaded = path
			return incoming(), nil
		},
		Writer:   repo,
		Listings: usecases.NewListingService(repo, nil),
		Events:   pub,
	})
	env.ExecuteWorkflow(workflows.CatalogSyncWorkflow, workflows.CatalogSyncInput{Path: "listings.json"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var res workflows.CatalogSyncResult
	require.NoError(t, env.GetWorkflowResult(&res))
	assert.Equal(t, "listings.json", loaded)
	assert.Equal(t, 2, res.Upserted)
	assert.Equal(t, 3, res.CatalogSize)
	assert.True(t, res.Published)
	assert.Equal(t, []int{3}, pub.counts)

	l, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Beach House", l.Title)
}

func TestCatalogSyncWorkflow_ReadFailure(t *testing.T) {
	repo := fixture.NewRepo(nil)
	pub := &fakePublisher{}

	env := newEnv(t, &workflows.SyncActivities{
		Load: func(string) ([]domain.Listing, error) {
			return nil, errors.New("listing 3: missing id")
		},
		Writer:   repo,
		Listings: usecases.NewListingService(repo, nil),
		Events:   pub,
	})
	env.ExecuteWorkflow(workflows.CatalogSyncWorkflow, workflows.CatalogSyncInput{Path: "bad.json"})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	assert.Empty(t, pub.counts)

	catalog, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestCatalogSyncWorkflow_PublishFailureStillSucceeds(t *testing.T) {
	repo := fixture.NewRepo(nil)

	env := newEnv(t, &workflows.SyncActivities{
		Load:     func(string) ([]domain.Listing, error) { return incoming(), nil },
		Writer:   repo,
		Listings: usecases.NewListingService(repo, nil),
		Events:   &fakePublisher{err: errors.New("nats: no responders")},
	})
	env.ExecuteWorkflow(workflows.CatalogSyncWorkflow, workflows.CatalogSyncInput{Path: "listings.json"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var res workflows.CatalogSyncResult
	require.NoError(t, env.GetWorkflowResult(&res))
	assert.Equal(t, 2, res.CatalogSize)
	assert.False(t, res.Published)
}

func TestCatalogSyncWorkflow_NoPublisher(t *testing.T) {
	repo := fixture.NewRepo(nil)

	env := newEnv(t, &workflows.SyncActivities{
		Load:     func(string) ([]domain.Listing, error) { return incoming(), nil },
		Writer:   repo,
		Listings: usecases.NewListingService(repo, nil),
	})
	env.ExecuteWorkflow(workflows.CatalogSyncWorkflow, workflows.CatalogSyncInput{})

	require.NoError(t, env.GetWorkflowError())
	var res workflows.CatalogSyncResult
	require.NoError(t, env.GetWorkflowResult(&res))
	assert.True(t, res.Published)
}

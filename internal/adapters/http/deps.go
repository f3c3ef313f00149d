package http

import (
	"github.com/nats-io/nats.go"

	"github.com/samirrijal/stayfinder/internal/adapters/postgres"
	"github.com/samirrijal/stayfinder/internal/adapters/valkey"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
// Everything except Listings and Search may be nil.
type Dependencies struct {
	Listings *usecases.ListingService
	Search   *usecases.SearchService
	Catalog  *usecases.CatalogWatcher
	NATS     *nats.Conn
	DB       *postgres.DB
	Cache    *valkey.Cache
}

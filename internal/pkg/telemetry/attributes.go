package telemetry

import "go.opentelemetry.io/otel/attribute"

// Span attribute keys for search instrumentation.
const (
	AttrSearchTerm     = attribute.Key("search.term")
	AttrCatalogSize    = attribute.Key("search.catalog_size")
	AttrResultCount    = attribute.Key("search.results")
	AttrUnresolved     = attribute.Key("search.unresolved")
	AttrViewportRegion = attribute.Key("search.viewport_region")
	AttrListingID      = attribute.Key("listing.id")
)

// TracerName is the instrumentation scope of the service's own spans.
const TracerName = "github.com/samirrijal/stayfinder"

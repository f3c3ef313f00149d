package http

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/metrics"
)

const maxTermLength = 200

// ListListingsHandler returns the catalog in catalog order, paginated.
func ListListingsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		catalog, err := deps.Listings.Catalog(c.UserContext())
		if err != nil {
			return errInternal(c, err)
		}

		pg := pageParams(c, len(catalog))
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: page(catalog, pg), Pagination: pg})
	}
}

// GetListingHandler returns a single listing by id.
func GetListingHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l, err := deps.Listings.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(l)
	}
}

// SelectListingHandler records that a listing was opened from a result and
// returns the path of its detail page.
func SelectListingHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := deps.Search.Select(c.UserContext(), c.Params("id"))
		if err != nil {
			return errFromDomain(c, err)
		}
		metrics.SelectionsTotal.Inc()
		return c.JSON(fiber.Map{"path": path})
	}
}

// SearchHandler filters the catalog and places the matches on the map.
func SearchHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseSearchRequest(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		res, err := deps.Search.Search(c.UserContext(), req)
		if err != nil {
			return errFromDomain(c, err)
		}

		observeSearch(res, "rest")
		c.Set("Cache-Control", "no-store")
		return c.JSON(res)
	}
}

// ResolveHandler places a single location name on the map.
func ResolveHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return errBadRequest(c, "name query parameter is required")
		}

		index := 0
		if raw := c.Query("index"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return errBadRequest(c, "index must be a non-negative integer")
			}
			index = n
		}

		fallback, err := parseFallback(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		known := deps.Search.Known(name)
		return c.JSON(fiber.Map{
			"name":       name,
			"index":      index,
			"known":      known,
			"coordinate": deps.Search.Resolve(name, index, fallback),
		})
	}
}

// ViewportHandler returns the initial map viewport for a search term.
func ViewportHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(deps.Search.Viewport(strings.TrimSpace(c.Query("q"))))
	}
}

// RegionsHandler returns the region table in lookup order.
func RegionsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(deps.Search.Regions())
	}
}

// PriceRangeHandler returns the min/max nightly price of the catalog.
func PriceRangeHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := deps.Search.PriceRange(c.UserContext())
		if err != nil {
			return errInternal(c, err)
		}
		return c.JSON(pr)
	}
}

func parseSearchRequest(c *fiber.Ctx) (usecases.SearchRequest, error) {
	req := usecases.SearchRequest{
		Location: strings.TrimSpace(c.Query("location")),
		CheckIn:  c.Query("checkin"),
		CheckOut: c.Query("checkout"),
	}
	if len(req.Location) > maxTermLength {
		return req, fmt.Errorf("location too long (max %d characters)", maxTermLength)
	}

	var err error
	if req.PriceMin, err = optionalFloat(c, "price_min"); err != nil {
		return req, err
	}
	if req.PriceMax, err = optionalFloat(c, "price_max"); err != nil {
		return req, err
	}
	return req, nil
}

// optionalFloat reads a finite, non-negative number; absent yields nil.
func optionalFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsNaN(f) || f > 1e12 {
		return nil, fmt.Errorf("%s must be a non-negative number", key)
	}
	return &f, nil
}

// parseFallback reads an optional lat/lon pair.
func parseFallback(c *fiber.Ctx) (*domain.GeoPoint, error) {
	rawLat, rawLon := c.Query("lat"), c.Query("lon")
	if rawLat == "" && rawLon == "" {
		return nil, nil
	}
	if rawLat == "" || rawLon == "" {
		return nil, fmt.Errorf("lat and lon must be given together")
	}
	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lon, errLon := strconv.ParseFloat(rawLon, 64)
	p := domain.GeoPoint{Lat: lat, Lon: lon}
	if errLat != nil || errLon != nil || !p.Valid() {
		return nil, fmt.Errorf("lat must be in [-90, 90] and lon in [-180, 180]")
	}
	return &p, nil
}

func observeSearch(res *domain.SearchResult, transport string) {
	metrics.SearchesTotal.WithLabelValues(metrics.RegionLabel(res.Viewport.Region), transport).Inc()
	metrics.SearchResults.Observe(float64(res.Count))
	metrics.UnresolvedLocations.Add(float64(res.Unresolved))
}

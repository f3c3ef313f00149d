package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
)

// buildSchema creates the GraphQL schema wired to our services.
// Field names follow the JSON tags of the domain types so the default
// resolver can read them.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	listingType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Listing",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.String},
			"title":             &graphql.Field{Type: graphql.String},
			"location_name":     &graphql.Field{Type: graphql.String},
			"price":             &graphql.Field{Type: graphql.Float},
			"rating":            &graphql.Field{Type: graphql.Float},
			"review_count":      &graphql.Field{Type: graphql.Int},
			"image_ref":         &graphql.Field{Type: graphql.String},
			"original_price":    &graphql.Field{Type: graphql.Float},
			"is_new":            &graphql.Field{Type: graphql.Boolean},
			"is_guest_favorite": &graphql.Field{Type: graphql.Boolean},
		},
	})

	viewportType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Viewport",
		Fields: graphql.Fields{
			"center": &graphql.Field{Type: geoPointType},
			"zoom":   &graphql.Field{Type: graphql.Int},
			"region": &graphql.Field{Type: graphql.String},
		},
	})

	regionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Region",
		Fields: graphql.Fields{
			"name":   &graphql.Field{Type: graphql.String},
			"match":  &graphql.Field{Type: graphql.String},
			"center": &graphql.Field{Type: geoPointType},
			"zoom":   &graphql.Field{Type: graphql.Int},
		},
	})

	priceRangeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PriceRange",
		Fields: graphql.Fields{
			"min": &graphql.Field{Type: graphql.Float},
			"max": &graphql.Field{Type: graphql.Float},
		},
	})

	queryStateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "QueryState",
		Fields: graphql.Fields{
			"search_term": &graphql.Field{Type: graphql.String},
			"price_min":   &graphql.Field{Type: graphql.Float},
			"price_max":   &graphql.Field{Type: graphql.Float},
		},
	})

	matchType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Match",
		Fields: graphql.Fields{
			"listing":    &graphql.Field{Type: listingType},
			"coordinate": &graphql.Field{Type: geoPointType},
		},
	})

	searchResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SearchResult",
		Fields: graphql.Fields{
			"query":       &graphql.Field{Type: queryStateType},
			"price_range": &graphql.Field{Type: priceRangeType},
			"viewport":    &graphql.Field{Type: viewportType},
			"matches":     &graphql.Field{Type: graphql.NewList(matchType)},
			"count":       &graphql.Field{Type: graphql.Int},
			"unresolved":  &graphql.Field{Type: graphql.Int},
			"nights":      &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"search": &graphql.Field{
				Type:        searchResultType,
				Description: "Filter the catalog and place the matches on the map",
				Args: graphql.FieldConfigArgument{
					"location":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"price_min": &graphql.ArgumentConfig{Type: graphql.Float},
					"price_max": &graphql.ArgumentConfig{Type: graphql.Float},
					"checkin":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"checkout":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := usecases.SearchRequest{
						Location: p.Args["location"].(string),
						CheckIn:  p.Args["checkin"].(string),
						CheckOut: p.Args["checkout"].(string),
						PriceMin: floatArg(p.Args, "price_min"),
						PriceMax: floatArg(p.Args, "price_max"),
					}
					res, err := deps.Search.Search(p.Context, req)
					if err != nil {
						return nil, err
					}
					observeSearch(res, "graphql")
					return res, nil
				},
			},
			"listing": &graphql.Field{
				Type:        listingType,
				Description: "Get a listing by id",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Listings.GetByID(p.Context, p.Args["id"].(string))
				},
			},
			"listings": &graphql.Field{
				Type:        graphql.NewList(listingType),
				Description: "The whole catalog in catalog order",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Listings.Catalog(p.Context)
				},
			},
			"resolve": &graphql.Field{
				Type:        geoPointType,
				Description: "Place a location name on the map",
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"index": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"lat":   &graphql.ArgumentConfig{Type: graphql.Float},
					"lon":   &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var fallback *domain.GeoPoint
					lat, lon := floatArg(p.Args, "lat"), floatArg(p.Args, "lon")
					if lat != nil && lon != nil {
						fallback = &domain.GeoPoint{Lat: *lat, Lon: *lon}
					}
					index := p.Args["index"].(int)
					if index < 0 {
						index = 0
					}
					return deps.Search.Resolve(p.Args["name"].(string), index, fallback), nil
				},
			},
			"viewport": &graphql.Field{
				Type:        viewportType,
				Description: "Initial map viewport for a search term",
				Args: graphql.FieldConfigArgument{
					"term": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Search.Viewport(p.Args["term"].(string)), nil
				},
			},
			"regions": &graphql.Field{
				Type:        graphql.NewList(regionType),
				Description: "Region table in lookup order",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Search.Regions(), nil
				},
			},
			"priceRange": &graphql.Field{
				Type:        priceRangeType,
				Description: "Min/max nightly price of the catalog",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Search.PriceRange(p.Context)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"selectListing": &graphql.Field{
				Type:        graphql.String,
				Description: "Open a listing from a result; returns its detail path",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Search.Select(p.Context, p.Args["id"].(string))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func floatArg(args map[string]interface{}, key string) *float64 {
	if v, ok := args[key].(float64); ok {
		return &v
	}
	return nil
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}

package http

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samirrijal/stayfinder/internal/adapters/fixture"
	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/geodata"
)

func newLiveSession(t *testing.T) (*Dependencies, *usecases.SearchSession) {
	t.Helper()
	catalog := []domain.Listing{
		{ID: "l1", Title: "Oceanfront Villa", LocationName: "Malibu, California", Price: 450},
		{ID: "l2", Title: "Cliff Studio", LocationName: "Malibu, California", Price: 200},
		{ID: "l3", Title: "Treehouse", LocationName: "Bali, Indonesia", Price: 90},
	}
	tables := geodata.Defaults()
	assembler := usecases.NewAssembler(
		usecases.NewLocationResolver(tables.Locations, 0),
		usecases.NewViewportLocator(tables.Regions, tables.Default),
	)
	listings := usecases.NewListingService(fixture.NewRepo(catalog), nil)
	deps := &Dependencies{
		Listings: listings,
		Search:   usecases.NewSearchService(listings, assembler, nil, nil),
	}
	return deps, usecases.NewSearchSession(assembler, catalog, "")
}

func decodeWSRequest(t *testing.T, raw string) wsRequest {
	t.Helper()
	var req wsRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return req
}

func TestHandleWSRequest(t *testing.T) {
	tests := []struct {
		name      string
		msg       string
		wantType  string // "" means a fresh result is due
		wantErr   string
		wantPath  string
		wantQuery domain.QueryState
	}{
		{
			name:      "search trims term",
			msg:       `{"action":"search","location":"  malibu "}`,
			wantQuery: domain.QueryState{SearchTerm: "malibu", PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "search term too long",
			msg:       `{"action":"search","location":"` + strings.Repeat("x", maxTermLength+1) + `"}`,
			wantType:  "error",
			wantErr:   "location too long",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "price max only keeps lower bound",
			msg:       `{"action":"price","price_max":300}`,
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 300},
		},
		{
			name:      "price min only keeps upper bound",
			msg:       `{"action":"price","price_min":150}`,
			wantQuery: domain.QueryState{PriceMin: 150, PriceMax: 450},
		},
		{
			name:      "price zero is a real bound",
			msg:       `{"action":"price","price_min":0,"price_max":100}`,
			wantQuery: domain.QueryState{PriceMin: 0, PriceMax: 100},
		},
		{
			name:      "inverted price leaves state unchanged",
			msg:       `{"action":"price","price_min":500}`,
			wantType:  "error",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "stay",
			msg:       `{"action":"stay","checkin":"2026-07-01","checkout":"2026-07-04"}`,
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "bad stay",
			msg:       `{"action":"stay","checkin":"2026-07-04","checkout":"2026-07-01"}`,
			wantType:  "error",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "select",
			msg:       `{"action":"select","id":"l2"}`,
			wantType:  "navigate",
			wantPath:  "/listings/l2",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "select missing listing",
			msg:       `{"action":"select","id":"nope"}`,
			wantType:  "error",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "undecodable message",
			msg:       `{"action":"invalid"}`,
			wantType:  "error",
			wantErr:   "invalid JSON",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
		{
			name:      "unknown action",
			msg:       `{"action":"book"}`,
			wantType:  "error",
			wantErr:   "unknown action: book",
			wantQuery: domain.QueryState{PriceMin: 90, PriceMax: 450},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deps, session := newLiveSession(t)

			reply := handleWSRequest(context.Background(), deps, session, decodeWSRequest(t, tc.msg))

			if tc.wantType == "" {
				if reply != nil {
					t.Fatalf("expected a fresh result, got reply %+v", reply)
				}
			} else {
				if reply == nil || reply.Type != tc.wantType {
					t.Fatalf("expected %s reply, got %+v", tc.wantType, reply)
				}
				if tc.wantErr != "" && reply.Error != tc.wantErr {
					t.Errorf("expected error %q, got %q", tc.wantErr, reply.Error)
				}
				if reply.Path != tc.wantPath {
					t.Errorf("expected path %q, got %q", tc.wantPath, reply.Path)
				}
			}
			if got := session.Query(); got != tc.wantQuery {
				t.Errorf("expected query %+v, got %+v", tc.wantQuery, got)
			}
		})
	}
}

func TestHandleWSRequest_PriceThenSearch(t *testing.T) {
	deps, session := newLiveSession(t)
	ctx := context.Background()

	for _, msg := range []string{
		`{"action":"price","price_max":300}`,
		`{"action":"search","location":"malibu"}`,
		`{"action":"stay","checkin":"2026-07-01","checkout":"2026-07-03"}`,
	} {
		if reply := handleWSRequest(ctx, deps, session, decodeWSRequest(t, msg)); reply != nil {
			t.Fatalf("%s: unexpected reply %+v", msg, reply)
		}
	}

	catalog, err := deps.Listings.Catalog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	res := session.Recompute(catalog)
	if res.Count != 1 || res.Matches[0].Listing.ID != "l2" {
		t.Fatalf("expected only l2, got %+v", res.Matches)
	}
	if res.Nights != 2 {
		t.Errorf("expected 2 nights, got %d", res.Nights)
	}
}

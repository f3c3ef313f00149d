package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/metrics"
)

// wsRequest is sent by the client to change the session's query.
type wsRequest struct {
	Action   string   `json:"action"` // "search" | "price" | "stay" | "select"
	Location string   `json:"location,omitempty"`
	PriceMin *float64 `json:"price_min,omitempty"` // nil keeps the current bound
	PriceMax *float64 `json:"price_max,omitempty"`
	CheckIn  string   `json:"checkin,omitempty"`
	CheckOut string   `json:"checkout,omitempty"`
	ID       string   `json:"id,omitempty"`
}

// wsResponse is pushed to the client.
type wsResponse struct {
	Type   string               `json:"type"` // "result" | "catalog_updated" | "navigate" | "error"
	Result *domain.SearchResult `json:"result,omitempty"`
	Count  int                  `json:"count,omitempty"`
	Path   string               `json:"path,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// LiveSearchHandler returns a handler that upgrades to WebSocket and runs one
// search session per connection. The session's query state is only touched
// by the connection loop; client messages and catalog updates both arrive on
// channels drained by that loop.
//
// Clients send JSON such as {"action":"search","location":"malibu"} or
// {"action":"price","price_min":100,"price_max":300} and receive a fresh
// result after every change.
func LiveSearchHandler(deps *Dependencies) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := slog.Default().With("remote", c.RemoteAddr().String())
		metrics.ActiveWebSockets.Inc()
		defer metrics.ActiveWebSockets.Dec()

		session, catalog, err := deps.Search.NewSession(ctx, strings.TrimSpace(c.Query("location")))
		if err != nil {
			log.Error("ws session start", "error", err)
			_ = c.WriteJSON(wsResponse{Type: "error", Error: "catalog unavailable"})
			return
		}
		log.Info("ws session started")

		var updates <-chan int
		if deps.Catalog != nil {
			ch, unsubscribe := deps.Catalog.Subscribe()
			defer unsubscribe()
			updates = ch
		}

		incoming := make(chan wsRequest)
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				_, msg, err := c.ReadMessage()
				if err != nil {
					return
				}
				var req wsRequest
				if err := json.Unmarshal(msg, &req); err != nil {
					req = wsRequest{Action: "invalid"}
				}
				select {
				case incoming <- req:
				case <-ctx.Done():
					return
				}
			}
		}()

		sendResult := func() error {
			res := session.Recompute(catalog)
			observeSearch(&res, "ws")
			return c.WriteJSON(wsResponse{Type: "result", Result: &res})
		}

		if err := sendResult(); err != nil {
			return
		}

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			var err error
			select {
			case <-closed:
				log.Info("ws session ended")
				return

			case req := <-incoming:
				if reply := handleWSRequest(ctx, deps, session, req); reply != nil {
					err = c.WriteJSON(reply)
				} else {
					err = sendResult()
				}

			case count := <-updates:
				next, lerr := deps.Listings.Catalog(ctx)
				if lerr != nil {
					log.Warn("ws catalog reload", "error", lerr)
					continue
				}
				catalog = next
				if err = c.WriteJSON(wsResponse{Type: "catalog_updated", Count: count}); err == nil {
					err = sendResult()
				}

			case <-ping.C:
				err = c.WriteMessage(websocket.PingMessage, nil)
			}
			if err != nil {
				log.Info("ws write failed", "error", err)
				return
			}
		}
	}
}

// handleWSRequest applies one client message to the session. A nil reply
// means the query changed and a fresh result is due.
func handleWSRequest(
	ctx context.Context,
	deps *Dependencies,
	session *usecases.SearchSession,
	req wsRequest,
) *wsResponse {
	switch req.Action {
	case "search":
		term := strings.TrimSpace(req.Location)
		if len(term) > maxTermLength {
			return wsError("location too long")
		}
		session.SetSearchTerm(term)
		return nil

	case "price":
		q := session.Query()
		lo, hi := q.PriceMin, q.PriceMax
		if req.PriceMin != nil {
			lo = *req.PriceMin
		}
		if req.PriceMax != nil {
			hi = *req.PriceMax
		}
		if err := session.SetPriceRange(lo, hi); err != nil {
			return wsError(err.Error())
		}
		return nil

	case "stay":
		stay, err := usecases.ParseStay(req.CheckIn, req.CheckOut)
		if err != nil {
			return wsError(err.Error())
		}
		session.SetStay(stay)
		return nil

	case "select":
		path, err := deps.Search.Select(ctx, req.ID)
		if err != nil {
			return wsError(err.Error())
		}
		metrics.SelectionsTotal.Inc()
		return &wsResponse{Type: "navigate", Path: path}

	case "invalid":
		return wsError("invalid JSON")

	default:
		return wsError("unknown action: " + req.Action)
	}
}

func wsError(msg string) *wsResponse {
	return &wsResponse{Type: "error", Error: msg}
}

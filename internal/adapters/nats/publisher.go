package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// Subjects used by the service.
const (
	SubjectSearch         = "stayfinder.search.performed"
	SubjectSelect         = "stayfinder.listing.selected"
	SubjectCatalogUpdated = "stayfinder.catalog.updated"
)

// Streams returns the JetStream streams the service publishes to.
func Streams() []nats.StreamConfig {
	return []nats.StreamConfig{
		{
			Name:      "SEARCH_EVENTS",
			Subjects:  []string{"stayfinder.search.>"},
			Retention: nats.LimitsPolicy,
			MaxAge:    7 * 24 * time.Hour,
			Storage:   nats.FileStorage,
		},
		{
			Name:      "LISTING_SELECTIONS",
			Subjects:  []string{"stayfinder.listing.>"},
			Retention: nats.LimitsPolicy,
			MaxAge:    7 * 24 * time.Hour,
			Storage:   nats.FileStorage,
		},
		{
			Name:      "CATALOG_UPDATES",
			Subjects:  []string{"stayfinder.catalog.>"},
			Retention: nats.InterestPolicy,
			MaxAge:    1 * time.Hour,
			Storage:   nats.FileStorage,
		},
	}
}

// Publisher implements ports.EventPublisher and ports.Navigator using NATS JetStream.
type Publisher struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// NewPublisher connects to NATS and enables JetStream.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := RawConn(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	for _, cfg := range Streams() {
		if _, err := js.AddStream(&cfg); err != nil {
			// Stream may already exist, try update
			if _, err := js.UpdateStream(&cfg); err != nil {
				conn.Close()
				return nil, fmt.Errorf("ensure stream %s: %w", cfg.Name, err)
			}
		}
	}

	return &Publisher{conn: conn, js: js}, nil
}

// PublishSearch records a performed search.
func (p *Publisher) PublishSearch(ctx context.Context, event *domain.SearchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.js.Publish(SubjectSearch, data, nats.Context(ctx), nats.MsgId(event.ID))
	return err
}

// OpenListing hands a selected listing to whoever renders listing detail.
func (p *Publisher) OpenListing(ctx context.Context, event *domain.SelectionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.js.Publish(SubjectSelect, data, nats.Context(ctx), nats.MsgId(event.ID))
	return err
}

// PublishCatalogUpdated announces a new catalog version with count listings.
func (p *Publisher) PublishCatalogUpdated(ctx context.Context, count int) error {
	_, err := p.js.Publish(SubjectCatalogUpdated, []byte(strconv.Itoa(count)), nats.Context(ctx))
	return err
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// RawConn creates a plain NATS connection.
func RawConn(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

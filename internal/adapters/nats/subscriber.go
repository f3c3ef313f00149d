package natsadapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go"
)

// Subscriber implements ports.EventSubscriber using NATS JetStream.
type Subscriber struct {
	conn *nats.Conn
	js   nats.JetStreamContext
	subs []*nats.Subscription
}

// NewSubscriber creates a subscriber with its own NATS connection.
func NewSubscriber(url string) (*Subscriber, error) {
	conn, err := RawConn(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	return &Subscriber{conn: conn, js: js}, nil
}

// SubscribeCatalogUpdated delivers catalog update notifications. Each API
// instance gets every message, so the subscription is ephemeral.
func (s *Subscriber) SubscribeCatalogUpdated(ctx context.Context, handler func(ctx context.Context, count int) error) error {
	sub, err := s.js.Subscribe(SubjectCatalogUpdated, func(msg *nats.Msg) {
		count, err := ParseCatalogUpdated(msg.Data)
		if err != nil {
			_ = msg.Term()
			return
		}
		if err := handler(ctx, count); err != nil {
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	},
		nats.DeliverNew(),
		nats.ManualAck(),
		nats.MaxDeliver(3),
	)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

// ParseCatalogUpdated decodes a catalog.updated payload.
func ParseCatalogUpdated(data []byte) (int, error) {
	n, err := strconv.Atoi(string(data))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad catalog.updated payload %q", data)
	}
	return n, nil
}

// Conn returns the underlying connection, for core NATS fan-out subscriptions.
func (s *Subscriber) Conn() *nats.Conn {
	return s.conn
}

// Close unsubscribes and drains.
func (s *Subscriber) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	_ = s.conn.Drain()
}

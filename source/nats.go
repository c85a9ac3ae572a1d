package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// NATSConfig configures a JetStream-backed event source.
type NATSConfig struct {
	// StreamName is the JetStream stream holding badge events.
	StreamName string `yaml:"streamName"`

	// ConsumerName is the durable consumer name.
	ConsumerName string `yaml:"consumerName"`

	// Subject is the filter subject for badge events.
	Subject string `yaml:"subject"`

	// FetchTimeout is the per-fetch wait before re-checking cancellation.
	// Default: 5s.
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
}

func (cfg *NATSConfig) applyDefaults() {
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 5 * time.Second
	}
}

// NATS implements an event source over a durable JetStream consumer.
//
// Messages are JSON-encoded access events; each message is acknowledged
// after it has been decoded and handed to the caller. Malformed messages
// are terminated and skipped so a poison message cannot wedge the stream.
type NATS struct {
	consumer jetstream.Consumer
	cfg      NATSConfig
	closed   atomic.Bool
}

var _ types.EventSource = (*NATS)(nil)

// NewNATS creates a JetStream-backed event source on an existing connection.
//
// Parameters:
//   - ctx: Context for consumer creation
//   - conn: NATS connection
//   - cfg: Stream, consumer and subject configuration
//
// Returns:
//   - *NATS: Initialized source with a durable consumer
//   - error: Configuration or JetStream setup error
//
// Example:
//
//	src, err := source.NewNATS(ctx, nc, source.NATSConfig{
//	    StreamName:   "BADGE",
//	    ConsumerName: "seatalloc",
//	    Subject:      "badge.events",
//	})
func NewNATS(ctx context.Context, conn *nats.Conn, cfg NATSConfig) (*NATS, error) {
	if conn == nil {
		return nil, errors.New("NATS connection is required")
	}

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return NewNATSJS(ctx, js, cfg)
}

// NewNATSJS creates a JetStream-backed event source using a pre-initialized
// JetStream context.
//
// Parameters:
//   - ctx: Context for consumer creation
//   - js: Pre-configured JetStream context (must be non-nil)
//   - cfg: Stream, consumer and subject configuration
//
// Returns:
//   - *NATS: Initialized source with a durable consumer
//   - error: Configuration or JetStream setup error
func NewNATSJS(ctx context.Context, js jetstream.JetStream, cfg NATSConfig) (*NATS, error) {
	if js == nil {
		return nil, errors.New("JetStream context is required")
	}
	if cfg.StreamName == "" {
		return nil, errors.New("stream name is required")
	}
	if cfg.ConsumerName == "" {
		return nil, errors.New("consumer name is required")
	}
	if cfg.Subject == "" {
		return nil, errors.New("subject is required")
	}

	cfg.applyDefaults()

	consumer, err := js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Name:           cfg.ConsumerName,
		Durable:        cfg.ConsumerName,
		FilterSubjects: []string{cfg.Subject},
		AckPolicy:      jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create/update consumer %s: %w", cfg.ConsumerName, err)
	}

	return &NATS{consumer: consumer, cfg: cfg}, nil
}

// Close ends the stream: a subsequent Next returns ErrEndOfStream. The
// durable consumer is left in place so a restart resumes where it stopped.
func (n *NATS) Close() {
	n.closed.Store(true)
}

// Next fetches and decodes the next badge event.
//
// Next blocks across fetch windows until a message arrives, the source is
// closed or the context is cancelled.
//
// Returns:
//   - types.AccessEvent: The decoded event
//   - error: types.ErrEndOfStream after Close, ctx.Err(), or a fetch error
func (n *NATS) Next(ctx context.Context) (types.AccessEvent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return types.AccessEvent{}, err
		}
		if n.closed.Load() {
			return types.AccessEvent{}, types.ErrEndOfStream
		}

		batch, err := n.consumer.Fetch(1, jetstream.FetchMaxWait(n.cfg.FetchTimeout))
		if err != nil {
			return types.AccessEvent{}, fmt.Errorf("fetch badge event: %w", err)
		}

		for msg := range batch.Messages() {
			var ev types.AccessEvent
			if err := json.Unmarshal(msg.Data(), &ev); err != nil {
				// Poison message: terminate so it is not redelivered.
				_ = msg.Term()
				continue
			}

			if err := msg.Ack(); err != nil {
				return types.AccessEvent{}, fmt.Errorf("ack badge event: %w", err)
			}

			return ev, nil
		}

		if err := batch.Error(); err != nil && !errors.Is(err, nats.ErrTimeout) {
			return types.AccessEvent{}, fmt.Errorf("fetch badge event: %w", err)
		}
		// Empty fetch window: loop and re-check cancellation.
	}
}

package types

import "context"

// EventSource supplies access events to the engine in arrival order.
//
// Implementations:
//   - source.Static: fixed list of events (tests, replays)
//   - source.Synthetic: deterministic pseudo-random demo stream
//   - source.NATS: live stream from a JetStream consumer
//
// Implementations must be safe for use by a single consumer; the engine
// never calls Next concurrently.
type EventSource interface {
	// Next returns the next access event.
	//
	// Returns:
	//   - AccessEvent: The next event in arrival order
	//   - error: ErrEndOfStream when the stream is exhausted, ctx.Err()
	//     when cancelled, or a transport error
	Next(ctx context.Context) (AccessEvent, error)
}

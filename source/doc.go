// Package source provides built-in access event source implementations.
//
// Event sources feed badge access events into the engine. The package
// includes:
//
//   - Static: Fixed list of events plus a Publish API (tests, replays)
//   - Synthetic: Deterministic pseudo-random demo stream
//   - NATS: Live stream from a JetStream consumer
//
// Custom sources can be implemented by satisfying the types.EventSource
// interface.
package source

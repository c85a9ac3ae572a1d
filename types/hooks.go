package types

import "context"

// Hooks defines callbacks for engine lifecycle events.
//
// All hooks are optional and called asynchronously in background goroutines
// so they never block batch processing. The context passed to hooks is the
// context of the triggering Process/Run call.
//
// Best practices for hook implementations:
//   - Complete quickly (< 1 second recommended)
//   - Respect context cancellation
//   - Be idempotent (a hook may observe the same transition twice after a
//     replay against a fresh engine)
//   - Handle errors gracefully (returned errors are logged, never fatal)
type Hooks struct {
	// OnAssignment is called once per processed access event with the
	// per-event result, including rejections.
	OnAssignment func(ctx context.Context, result AssignmentResult) error

	// OnZoneTransition is called after reconciliation with the zone power
	// transitions the batch caused. Not called for batches that cause no
	// transition.
	OnZoneTransition func(ctx context.Context, transitions []ZoneTransition) error

	// OnError is called when a recoverable error occurs (e.g., a notifier
	// or dispatcher failure).
	OnError func(ctx context.Context, err error) error
}

// Package hooks provides default hook implementations.
package hooks

import (
	"context"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.AssignmentResult) error = (*NopHooks)(nil).OnAssignment
	_ func(context.Context, []types.ZoneTransition) error = (*NopHooks)(nil).OnZoneTransition
	_ func(context.Context, error) error                  = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnAssignment:     h.OnAssignment,
		OnZoneTransition: h.OnZoneTransition,
		OnError:          h.OnError,
	}
}

// OnAssignment is a no-op implementation.
func (h *NopHooks) OnAssignment(ctx context.Context, result types.AssignmentResult) error {
	return nil
}

// OnZoneTransition is a no-op implementation.
func (h *NopHooks) OnZoneTransition(ctx context.Context, transitions []types.ZoneTransition) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}

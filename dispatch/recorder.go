// Package dispatch provides device command dispatchers for zone power
// control.
//
// Dispatchers receive POWER_ON/POWER_OFF commands after each zone power
// reconciliation. The package includes:
//
//   - Recorder: In-memory command log (tests, dry runs)
//   - NATS: JSON command publishing to a NATS subject for IoT consumers
//
// Custom dispatchers can be implemented by satisfying the types.Dispatcher
// interface.
package dispatch

import (
	"context"
	"sync"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Recorder implements an in-memory dispatcher that records every command.
type Recorder struct {
	mu       sync.Mutex
	commands []types.DeviceCommand

	// Err, when set, is returned by every Dispatch call after recording.
	Err error
}

var _ types.Dispatcher = (*Recorder)(nil)

// NewRecorder creates a dispatcher that records commands in memory.
//
// Returns:
//   - *Recorder: Initialized recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Dispatch records the command.
func (r *Recorder) Dispatch(_ context.Context, cmd types.DeviceCommand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = append(r.commands, cmd)

	return r.Err
}

// Commands returns a copy of all recorded commands in dispatch order.
func (r *Recorder) Commands() []types.DeviceCommand {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.DeviceCommand, len(r.commands))
	copy(out, r.commands)

	return out
}

// Reset clears the recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = nil
}

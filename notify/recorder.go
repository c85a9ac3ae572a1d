package notify

import (
	"context"
	"sync"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Notification is one recorded delivery.
type Notification struct {
	Employee   types.Employee
	Assignment types.Assignment
}

// Recorder implements an in-memory notifier that records every delivery.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification

	// Err, when set, is returned by every NotifyAssignment call after
	// recording.
	Err error
}

var _ types.Notifier = (*Recorder)(nil)

// NewRecorder creates a notifier that records deliveries in memory.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NotifyAssignment records the delivery.
func (r *Recorder) NotifyAssignment(_ context.Context, employee types.Employee, a types.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sent = append(r.sent, Notification{Employee: employee, Assignment: a})

	return r.Err
}

// Sent returns a copy of all recorded notifications in delivery order.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.sent))
	copy(out, r.sent)

	return out
}

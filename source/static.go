package source

import (
	"context"
	"sync"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Static implements an event source over a fixed list of access events.
//
// Events are delivered in the order they were provided. Publish may append
// further events until Close is called; a consumer blocked in Next is woken
// by both.
type Static struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []types.AccessEvent
	pos    int
	closed bool
}

var _ types.EventSource = (*Static)(nil)

// NewStatic creates a new static event source.
//
// The source delivers the given events in order. Useful for testing and
// for replaying a recorded badge log.
//
// Parameters:
//   - events: Initial events in arrival order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.AccessEvent{
//	    {EmployeeID: "E001", CardID: "CARD-E001"},
//	    {EmployeeID: "E002", CardID: "CARD-E002"},
//	})
//	src.Close()
//	eng, err := seatalloc.NewEngine(&cfg, topo, dir, src, strategy.NewLocalityBeam())
func NewStatic(events []types.AccessEvent) *Static {
	s := &Static{events: append([]types.AccessEvent(nil), events...)}
	s.cond = sync.NewCond(&s.mu)

	return s
}

// Publish appends an event to the stream, waking a blocked consumer.
// Publishing after Close is a no-op.
func (s *Static) Publish(ev types.AccessEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.events = append(s.events, ev)
	s.cond.Signal()
}

// Close marks the end of the stream. Already published events remain
// deliverable; a subsequent Next past the last event returns ErrEndOfStream.
func (s *Static) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cond.Broadcast()
}

// Next returns the next event in publish order.
//
// Next blocks until an event is available, the source is closed or the
// context is cancelled.
//
// Returns:
//   - types.AccessEvent: The next event
//   - error: types.ErrEndOfStream after Close, or ctx.Err()
func (s *Static) Next(ctx context.Context) (types.AccessEvent, error) {
	// Wake the cond wait when the context is cancelled.
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	for s.pos >= len(s.events) {
		if err := ctx.Err(); err != nil {
			return types.AccessEvent{}, err
		}
		if s.closed {
			return types.AccessEvent{}, types.ErrEndOfStream
		}

		s.cond.Wait()
	}

	ev := s.events[s.pos]
	s.pos++

	return ev, nil
}

// Package batching groups incoming access events into small ordered
// batches before allocation.
package batching

import (
	"context"
	"errors"
	"sort"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Resolver maps an employee ID to its (department, team) pair for in-batch
// ordering. Unresolvable employees keep their arrival position semantics by
// sorting on empty keys; they surface later as InvalidEvent results.
type Resolver func(employeeID string) (department, team string, ok bool)

// Batcher pulls events from a source and yields fixed-size batches,
// reordered within each batch by (department, team) so same-team events are
// processed consecutively. Arrival order is preserved in the Seq field for
// result reporting, and as the tie-break within equal (department, team)
// groups.
//
// Batcher is not safe for concurrent use; the engine is its only caller.
type Batcher struct {
	source  types.EventSource
	size    int
	resolve Resolver
	nextSeq uint64
	done    bool
}

// New creates a batcher over the given source.
//
// Parameters:
//   - source: The access event source
//   - size: Batch size (>= 1)
//   - resolve: Employee → (department, team) resolver for ordering
func New(source types.EventSource, size int, resolve Resolver) *Batcher {
	return &Batcher{source: source, size: size, resolve: resolve, nextSeq: 1}
}

// Next returns the next ordered batch.
//
// A partial batch is returned when the source ends mid-batch. After the
// source is exhausted and all events are delivered, Next returns
// types.ErrEndOfStream. Cancellation is honored between events, so no
// partial batch is ever half-applied downstream.
//
// Returns:
//   - []types.AccessEvent: Ordered batch (1..size events)
//   - error: types.ErrEndOfStream, ctx.Err(), or a source error
func (b *Batcher) Next(ctx context.Context) ([]types.AccessEvent, error) {
	if b.done {
		return nil, types.ErrEndOfStream
	}

	batch := make([]types.AccessEvent, 0, b.size)
	for len(batch) < b.size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ev, err := b.source.Next(ctx)
		if err != nil {
			if errors.Is(err, types.ErrEndOfStream) {
				b.done = true
				if len(batch) == 0 {
					return nil, types.ErrEndOfStream
				}

				break
			}

			return nil, err
		}

		ev.Seq = b.nextSeq
		b.nextSeq++
		batch = append(batch, ev)
	}

	b.order(batch)

	return batch, nil
}

// order sorts a batch by (department, team, seq). The reordering only moves
// events within the batch boundary; external arrival semantics are carried
// by Seq.
func (b *Batcher) order(batch []types.AccessEvent) {
	type sortKey struct {
		dept, team string
	}
	keys := make(map[uint64]sortKey, len(batch))
	for _, ev := range batch {
		dept, team, ok := b.resolve(ev.EmployeeID)
		if !ok {
			dept, team = "", ""
		}
		keys[ev.Seq] = sortKey{dept: dept, team: team}
	}

	sort.SliceStable(batch, func(i, j int) bool {
		ki, kj := keys[batch[i].Seq], keys[batch[j].Seq]
		if ki.dept != kj.dept {
			return ki.dept < kj.dept
		}
		if ki.team != kj.team {
			return ki.team < kj.team
		}

		return batch[i].Seq < batch[j].Seq
	})
}

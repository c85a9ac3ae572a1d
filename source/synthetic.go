package source

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Synthetic implements a deterministic pseudo-random event source for demos
// and load tests.
//
// Given the same roster, count and seed, the source always produces the
// same event sequence, so runs are reproducible end to end. Employee picks
// are driven by xxh3 over the seed and the event index; no global RNG state
// is involved.
type Synthetic struct {
	roster []string
	count  int
	seed   uint64
	pos    int
}

var _ types.EventSource = (*Synthetic)(nil)

// NewSynthetic creates a deterministic synthetic event source.
//
// Parameters:
//   - roster: Employee IDs to draw badge events from (must be non-empty)
//   - count: Total number of events to produce
//   - seed: Seed for the deterministic pick sequence
//
// Returns:
//   - *Synthetic: Initialized synthetic source
//
// Example:
//
//	src := source.NewSynthetic([]string{"E001", "E002", "E003"}, 100, 42)
func NewSynthetic(roster []string, count int, seed uint64) *Synthetic {
	return &Synthetic{
		roster: append([]string(nil), roster...),
		count:  count,
		seed:   seed,
	}
}

// Next returns the next synthetic event.
//
// Returns:
//   - types.AccessEvent: The next event
//   - error: types.ErrEndOfStream after count events, or ctx.Err()
func (s *Synthetic) Next(ctx context.Context) (types.AccessEvent, error) {
	if err := ctx.Err(); err != nil {
		return types.AccessEvent{}, err
	}
	if len(s.roster) == 0 || s.pos >= s.count {
		return types.AccessEvent{}, types.ErrEndOfStream
	}

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], s.seed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(s.pos))

	pick := xxh3.Hash(buf[:]) % uint64(len(s.roster))
	employeeID := s.roster[pick]
	s.pos++

	return types.AccessEvent{
		EmployeeID: employeeID,
		CardID:     fmt.Sprintf("CARD-%s", employeeID),
	}, nil
}

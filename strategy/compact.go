package strategy

import (
	"sort"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Compact packs occupants densely: fullest zone first, lowest seat number
// within it. It ignores team locality entirely and is mostly useful for
// minimizing the number of energized zones in small offices.
type Compact struct{}

// Compile-time assertion that Compact implements SeatStrategy.
var _ types.SeatStrategy = (*Compact)(nil)

// NewCompact creates a dense-packing strategy.
func NewCompact() *Compact {
	return &Compact{}
}

// Pick selects the lowest-numbered seat in the fullest candidate zone.
//
// Returns:
//   - types.Candidate: The selected seat
//   - error: types.ErrNoCandidates if the set is empty
func (s *Compact) Pick(_ types.Placement, candidates []types.Candidate) (types.Candidate, error) {
	if len(candidates) == 0 {
		return types.Candidate{}, types.ErrNoCandidates
	}

	ranked := make([]types.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ZoneLoad != ranked[j].ZoneLoad {
			return ranked[i].ZoneLoad > ranked[j].ZoneLoad
		}
		if ranked[i].Seat.Number != ranked[j].Seat.Number {
			return ranked[i].Seat.Number < ranked[j].Seat.Number
		}

		return ranked[i].Seat.ID < ranked[j].Seat.ID
	})

	return ranked[0], nil
}

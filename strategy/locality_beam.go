package strategy

import (
	"sort"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// DefaultBeamWidth is the shortlist size used when no option overrides it.
const DefaultBeamWidth = 3

// Option configures a LocalityBeam strategy.
type Option func(*LocalityBeam)

// WithBeamWidth sets the shortlist size for the headroom lookahead.
//
// Parameters:
//   - width: Beam width (>= 1; smaller values are clamped to 1)
//
// Returns:
//   - Option: Functional option for NewLocalityBeam
func WithBeamWidth(width int) Option {
	return func(s *LocalityBeam) {
		if width < 1 {
			width = 1
		}
		s.width = width
	}
}

// LocalityBeam ranks candidates with strict locality tiers, then re-ranks
// the top-width shortlist by remaining free capacity so full ties resolve
// toward zones with room for the rest of the team.
//
// Tier order (each tier only breaks ties within the previous):
//  1. same-team occupants in the zone (more wins)
//  2. same-department occupants in the zone (more wins)
//  3. zone consolidation: total zone occupancy (more wins)
//  4. floor/building affinity to the team anchor (same floor > same
//     building > elsewhere)
//  5. seat-number proximity to teammates in the zone (closer wins)
//  6. free-capacity headroom, within the beam shortlist only
//  7. lowest seat ID
type LocalityBeam struct {
	width int
}

// Compile-time assertion that LocalityBeam implements SeatStrategy.
var _ types.SeatStrategy = (*LocalityBeam)(nil)

// NewLocalityBeam creates the default locality strategy.
//
// Parameters:
//   - opts: Optional configuration (beam width)
//
// Returns:
//   - *LocalityBeam: Initialized strategy
//
// Example:
//
//	strat := strategy.NewLocalityBeam(strategy.WithBeamWidth(5))
//	engine, err := seatalloc.NewEngine(&cfg, topo, dir, src, strat)
func NewLocalityBeam(opts ...Option) *LocalityBeam {
	s := &LocalityBeam{width: DefaultBeamWidth}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Pick selects the highest-ranked candidate.
//
// Returns:
//   - types.Candidate: The selected seat
//   - error: types.ErrNoCandidates if the set is empty
func (s *LocalityBeam) Pick(_ types.Placement, candidates []types.Candidate) (types.Candidate, error) {
	if len(candidates) == 0 {
		return types.Candidate{}, types.ErrNoCandidates
	}

	ranked := make([]types.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if c := tierCompare(ranked[i], ranked[j]); c != 0 {
			return c < 0
		}

		return ranked[i].Seat.ID < ranked[j].Seat.ID
	})

	width := s.width
	if width > len(ranked) {
		width = len(ranked)
	}
	beam := ranked[:width]

	sort.SliceStable(beam, func(i, j int) bool {
		// The strict tiers still dominate inside the beam; headroom only
		// resolves candidates the tiers consider equal.
		if c := tierCompare(beam[i], beam[j]); c != 0 {
			return c < 0
		}
		if beam[i].ZoneFree != beam[j].ZoneFree {
			return beam[i].ZoneFree > beam[j].ZoneFree
		}

		return beam[i].Seat.ID < beam[j].Seat.ID
	})

	return beam[0], nil
}

// tierCompare orders two candidates by the strict tiers. Negative means a
// ranks before b.
func tierCompare(a, b types.Candidate) int {
	if a.TeamInZone != b.TeamInZone {
		if a.TeamInZone > b.TeamInZone {
			return -1
		}

		return 1
	}
	if a.DeptInZone != b.DeptInZone {
		if a.DeptInZone > b.DeptInZone {
			return -1
		}

		return 1
	}
	if a.ZoneLoad != b.ZoneLoad {
		if a.ZoneLoad > b.ZoneLoad {
			return -1
		}

		return 1
	}
	if ar, br := affinityRank(a), affinityRank(b); ar != br {
		if ar > br {
			return -1
		}

		return 1
	}
	if a.TeamSeatGap != b.TeamSeatGap {
		if a.TeamSeatGap < b.TeamSeatGap {
			return -1
		}

		return 1
	}

	return 0
}

func affinityRank(c types.Candidate) int {
	switch {
	case c.SameFloorAsAnchor:
		return 2
	case c.SameBuildingAsAnchor:
		return 1
	default:
		return 0
	}
}

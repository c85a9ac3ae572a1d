package types

import "math"

// NoTeamSeatGap is the TeamSeatGap value for candidates whose zone holds no
// same-team occupant. It sorts after every real gap.
const NoTeamSeatGap = math.MaxInt32

// Placement describes the employee being placed. The department is resolved
// by the allocator from the team mapping before scoring.
type Placement struct {
	Employee   Employee
	Department string
	Team       string
}

// Candidate is a free seat together with the occupancy facts scoring needs.
// The allocator computes candidates from the current occupancy snapshot,
// already filtered by the locality lock and the zone department cap, so
// strategies only rank; they never veto.
type Candidate struct {
	// Seat is the free seat under consideration.
	Seat Seat

	// TeamInZone is the number of same-team occupants in the seat's zone.
	TeamInZone int

	// DeptInZone is the number of same-department occupants in the zone.
	DeptInZone int

	// ZoneLoad is the total occupant count of the zone.
	ZoneLoad int

	// ZoneFree is the number of free seats remaining in the zone,
	// including this one. Used as consolidation headroom lookahead.
	ZoneFree int

	// SameFloorAsAnchor reports whether the zone shares building and floor
	// with the team anchor (the zone holding most teammates).
	SameFloorAsAnchor bool

	// SameBuildingAsAnchor reports whether the zone shares the building
	// with the team anchor.
	SameBuildingAsAnchor bool

	// TeamSeatGap is the minimum seat-number distance to a same-team
	// occupant within the zone, or NoTeamSeatGap if the zone has none.
	TeamSeatGap int
}

// SeatStrategy ranks candidate seats for one placement.
//
// The engine calls Pick once per access event, inside the single-writer
// critical section. Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Be stateless (no side effects)
//   - Run quickly (called on the hot path)
//
// Implementations:
//   - strategy.LocalityBeam: tiered locality comparator with a beam-width
//     headroom lookahead (the default and recommended strategy)
//   - strategy.Compact: dense packing into the fullest zone
type SeatStrategy interface {
	// Pick selects one candidate from a non-empty, pre-filtered set.
	//
	// Parameters:
	//   - placement: The employee being placed with resolved department
	//   - candidates: Free seats surviving the lock and cap filters
	//
	// Returns:
	//   - Candidate: The selected seat
	//   - error: ErrNoCandidates if the set is empty
	Pick(placement Placement, candidates []Candidate) (Candidate, error)
}

// Package allocation implements the seat allocator: candidate generation
// with the locality lock and its domain-reduction fallback, the zone
// department cap filter, strategy-driven ranking, and the commit that keeps
// the occupancy store and locality cache consistent.
package allocation

import (
	"errors"
	"fmt"
	"time"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/locality"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/occupancy"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Allocator places one access event at a time. It is not safe for
// concurrent use; the engine serializes calls so each decision scores
// against the cumulative effect of all prior decisions.
type Allocator struct {
	inventory types.Inventory
	store     *occupancy.Store
	cache     *locality.Cache
	strategy  types.SeatStrategy
	logger    types.Logger
	now       func() time.Time
}

// New creates an allocator over the shared occupancy store and locality
// cache.
//
// Parameters:
//   - inventory: Static seat catalog
//   - store: Live occupancy (shared with the engine)
//   - cache: Locality cache (shared with the engine)
//   - strategy: Candidate ranking strategy
//   - logger: Structured logger
//   - now: Clock, injectable for deterministic tests
func New(
	inventory types.Inventory,
	store *occupancy.Store,
	cache *locality.Cache,
	strategy types.SeatStrategy,
	logger types.Logger,
	now func() time.Time,
) *Allocator {
	if now == nil {
		now = time.Now
	}

	return &Allocator{
		inventory: inventory,
		store:     store,
		cache:     cache,
		strategy:  strategy,
		logger:    logger,
		now:       now,
	}
}

// Allocate places one employee and commits the result.
//
// Exhausted and AlreadyAssigned are reported in the result, not as errors.
// A non-nil error is an internal consistency fault (ErrCapacityInvariant,
// ErrSeatOccupied) and must abort the current batch.
//
// Parameters:
//   - employee: The resolved employee profile
//   - department: The employee's department (resolved from the team)
//   - seq: Arrival sequence number of the originating event
//
// Returns:
//   - types.AssignmentResult: Per-event report in all non-fatal cases
//   - error: Batch-fatal consistency fault, nil otherwise
func (a *Allocator) Allocate(employee types.Employee, department string, seq uint64) (types.AssignmentResult, error) {
	if existing, ok := a.store.AssignmentOf(employee.ID); ok {
		return types.AssignmentResult{
			Seq:        seq,
			EmployeeID: employee.ID,
			Outcome:    types.OutcomeAlreadyAssigned,
			Assignment: &existing,
			Reason:     fmt.Sprintf("already holds seat %s in %s", existing.SeatID, existing.Key),
		}, nil
	}

	seats, reason := a.candidates(department, employee.Team)
	if len(seats) == 0 {
		return types.AssignmentResult{
			Seq:        seq,
			EmployeeID: employee.ID,
			Outcome:    types.OutcomeExhausted,
			Reason:     "no free seat satisfies any candidate set",
		}, nil
	}

	placement := types.Placement{Employee: employee, Department: department, Team: employee.Team}
	chosen, err := a.strategy.Pick(placement, a.score(seats, department, employee.Team))
	if err != nil {
		if errors.Is(err, types.ErrNoCandidates) {
			return types.AssignmentResult{
				Seq:        seq,
				EmployeeID: employee.ID,
				Outcome:    types.OutcomeExhausted,
				Reason:     "strategy rejected all candidates",
			}, nil
		}

		return types.AssignmentResult{}, fmt.Errorf("strategy pick: %w", err)
	}

	assignment := types.Assignment{
		EmployeeID: employee.ID,
		SeatID:     chosen.Seat.ID,
		Key:        chosen.Seat.Key,
		Department: department,
		Team:       employee.Team,
		AssignedAt: a.now(),
	}
	if err := a.store.Assign(assignment); err != nil {
		// The candidate filters should make this unreachable; surface it
		// as a batch-fatal fault rather than masking the inconsistency.
		return types.AssignmentResult{}, fmt.Errorf("commit assignment: %w", err)
	}
	a.cache.Remember(department, employee.Team, chosen.Seat.Key, chosen.Seat.ID)

	a.logger.Debug("seat assigned",
		"employee", employee.ID,
		"seat", chosen.Seat.ID,
		"zone", chosen.Seat.Key.String(),
		"candidates", reason,
	)

	return types.AssignmentResult{
		Seq:        seq,
		EmployeeID: employee.ID,
		Outcome:    types.OutcomeAssigned,
		Assignment: &assignment,
		Reason:     reason,
	}, nil
}

// candidates generates the free-seat candidate set, applying the locality
// lock and its relaxation chain, then the department cap filter. The
// returned reason names the candidate set the seats came from.
//
// Chain:
//  1. the cached anchor zone for (department, team) — a hard lock while
//     teammates still occupy it
//  2. other zones already hosting the department
//  3. the full free-seat domain
//
// A stage emptied by the cap filter falls through to the next stage.
func (a *Allocator) candidates(department, team string) ([]types.Seat, string) {
	if entry, ok := a.cache.Lookup(department, team); ok {
		locked := a.store.TeamCount(entry.Key, department, team) > 0
		if seats := a.freeHostable(a.inventory.SeatsInZone(entry.Key), department); len(seats) > 0 {
			if locked {
				return seats, fmt.Sprintf("locality lock on %s", entry.Key)
			}

			return seats, fmt.Sprintf("cached anchor %s", entry.Key)
		}
	}

	var deptSeats []types.Seat
	for _, key := range a.store.ZonesHosting(department) {
		deptSeats = append(deptSeats, a.freeHostable(a.inventory.SeatsInZone(key), department)...)
	}
	if len(deptSeats) > 0 {
		return deptSeats, "fallback to zones hosting the department"
	}

	if seats := a.freeHostable(a.inventory.Seats(), department); len(seats) > 0 {
		return seats, "open free-seat domain"
	}

	return nil, ""
}

// freeHostable filters a seat list down to free seats whose zone can host
// the department under the cap.
func (a *Allocator) freeHostable(seats []types.Seat, department string) []types.Seat {
	var out []types.Seat
	for _, seat := range seats {
		if !a.store.IsFree(seat.ID) {
			continue
		}
		if !a.store.CanHost(seat.Key, department) {
			continue
		}
		out = append(out, seat)
	}

	return out
}

// score builds strategy candidates with the occupancy facts of each seat's
// zone. The team anchor for floor/building affinity is the zone holding the
// most teammates, falling back to the zone holding the most department
// members when the team is not seated yet.
func (a *Allocator) score(seats []types.Seat, department, team string) []types.Candidate {
	anchor, hasAnchor := a.anchorZone(department, team)

	freeByZone := make(map[types.ZoneKey]int)
	candidates := make([]types.Candidate, 0, len(seats))
	for _, seat := range seats {
		if _, done := freeByZone[seat.Key]; !done {
			free := 0
			for _, zs := range a.inventory.SeatsInZone(seat.Key) {
				if a.store.IsFree(zs.ID) {
					free++
				}
			}
			freeByZone[seat.Key] = free
		}

		c := types.Candidate{
			Seat:        seat,
			TeamInZone:  a.store.TeamCount(seat.Key, department, team),
			DeptInZone:  a.store.DeptCount(seat.Key, department),
			ZoneLoad:    a.store.ZoneLoad(seat.Key),
			ZoneFree:    freeByZone[seat.Key],
			TeamSeatGap: a.teamSeatGap(seat, department, team),
		}
		if hasAnchor {
			c.SameFloorAsAnchor = seat.Key.SameFloor(anchor)
			c.SameBuildingAsAnchor = seat.Key.SameBuilding(anchor)
		}
		candidates = append(candidates, c)
	}

	return candidates
}

func (a *Allocator) anchorZone(department, team string) (types.ZoneKey, bool) {
	var (
		best      types.ZoneKey
		bestCount int
		found     bool
	)
	for _, key := range a.store.ZonesHosting(department) {
		if n := a.store.TeamCount(key, department, team); n > bestCount {
			best, bestCount, found = key, n, true
		}
	}
	if found {
		return best, true
	}
	// No teammates seated; anchor on the strongest department presence.
	for _, key := range a.store.ZonesHosting(department) {
		if n := a.store.DeptCount(key, department); n > bestCount {
			best, bestCount, found = key, n, true
		}
	}

	return best, found
}

func (a *Allocator) teamSeatGap(seat types.Seat, department, team string) int {
	numbers := a.store.TeamSeatNumbers(seat.Key, department, team, a.inventory.Seat)
	if len(numbers) == 0 {
		return types.NoTeamSeatGap
	}

	gap := types.NoTeamSeatGap
	for _, n := range numbers {
		d := seat.Number - n
		if d < 0 {
			d = -d
		}
		if d < gap {
			gap = d
		}
	}

	return gap
}

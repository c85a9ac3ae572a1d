// Package occupancy implements the single source of truth for live seat
// assignments and the derived per-zone occupant counts.
package occupancy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Store tracks seat↔employee assignments plus the per-zone, per-department
// and per-team occupant counts the allocator scores against.
//
// The store enforces the two assignment invariants (one seat per employee,
// one employee per seat) and the zone department cap on every commit. A cap
// violation on commit is a programming-error signal: the allocator filters
// capped zones before scoring, so Assign returning ErrCapacityInvariant
// means a candidate slipped past the filter.
//
// All methods are safe for concurrent use, though the engine serializes
// writers per the single-writer discipline.
type Store struct {
	mu sync.RWMutex

	departmentCap int

	assignments map[string]types.Assignment // employee ID -> assignment
	seatOwner   map[string]string           // seat ID -> employee ID
	zoneLoad    map[types.ZoneKey]int
	zoneDept    map[types.ZoneKey]map[string]int // department -> occupants
	zoneTeam    map[types.ZoneKey]map[string]int // dept+team -> occupants
}

// New creates an empty store with the given zone department cap.
func New(departmentCap int) *Store {
	return &Store{
		departmentCap: departmentCap,
		assignments:   make(map[string]types.Assignment),
		seatOwner:     make(map[string]string),
		zoneLoad:      make(map[types.ZoneKey]int),
		zoneDept:      make(map[types.ZoneKey]map[string]int),
		zoneTeam:      make(map[types.ZoneKey]map[string]int),
	}
}

func teamKey(department, team string) string {
	return department + "/" + team
}

// Assign commits an assignment and updates all derived counts.
//
// Returns:
//   - error: types.ErrAlreadyAssigned if the employee holds a seat,
//     types.ErrSeatOccupied if the seat is held, or
//     types.ErrCapacityInvariant if the commit would put a new department
//     into a zone already hosting the cap
func (s *Store) Assign(a types.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.assignments[a.EmployeeID]; ok {
		return fmt.Errorf("%w: %s holds %s", types.ErrAlreadyAssigned, a.EmployeeID, existing.SeatID)
	}
	if owner, ok := s.seatOwner[a.SeatID]; ok {
		return fmt.Errorf("%w: %s held by %s", types.ErrSeatOccupied, a.SeatID, owner)
	}

	depts := s.zoneDept[a.Key]
	if depts == nil {
		depts = make(map[string]int)
		s.zoneDept[a.Key] = depts
	}
	if _, present := depts[a.Department]; !present && len(depts) >= s.departmentCap {
		return fmt.Errorf("%w: zone %s hosts %d departments, cannot add %s",
			types.ErrCapacityInvariant, a.Key, len(depts), a.Department)
	}

	teams := s.zoneTeam[a.Key]
	if teams == nil {
		teams = make(map[string]int)
		s.zoneTeam[a.Key] = teams
	}

	s.assignments[a.EmployeeID] = a
	s.seatOwner[a.SeatID] = a.EmployeeID
	s.zoneLoad[a.Key]++
	depts[a.Department]++
	teams[teamKey(a.Department, a.Team)]++

	return nil
}

// Vacate removes an employee's assignment and updates all derived counts.
//
// Returns:
//   - types.Assignment: The removed assignment
//   - bool: false if the employee held no seat
func (s *Store) Vacate(employeeID string) (types.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assignments[employeeID]
	if !ok {
		return types.Assignment{}, false
	}

	delete(s.assignments, employeeID)
	delete(s.seatOwner, a.SeatID)

	if s.zoneLoad[a.Key]--; s.zoneLoad[a.Key] == 0 {
		delete(s.zoneLoad, a.Key)
	}
	if depts := s.zoneDept[a.Key]; depts != nil {
		if depts[a.Department]--; depts[a.Department] == 0 {
			delete(depts, a.Department)
		}
		if len(depts) == 0 {
			delete(s.zoneDept, a.Key)
		}
	}
	if teams := s.zoneTeam[a.Key]; teams != nil {
		key := teamKey(a.Department, a.Team)
		if teams[key]--; teams[key] == 0 {
			delete(teams, key)
		}
		if len(teams) == 0 {
			delete(s.zoneTeam, a.Key)
		}
	}

	return a, true
}

// AssignmentOf returns the employee's live assignment, if any.
func (s *Store) AssignmentOf(employeeID string) (types.Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assignments[employeeID]

	return a, ok
}

// OwnerOf returns the employee holding the seat, if any.
func (s *Store) OwnerOf(seatID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, ok := s.seatOwner[seatID]

	return owner, ok
}

// IsFree reports whether the seat has no live assignment.
func (s *Store) IsFree(seatID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, held := s.seatOwner[seatID]

	return !held
}

// ZoneLoad returns the total occupant count of a zone.
func (s *Store) ZoneLoad(key types.ZoneKey) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.zoneLoad[key]
}

// DeptCount returns the occupant count of one department in a zone.
func (s *Store) DeptCount(key types.ZoneKey, department string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.zoneDept[key][department]
}

// TeamCount returns the occupant count of one team in a zone.
func (s *Store) TeamCount(key types.ZoneKey, department, team string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.zoneTeam[key][teamKey(department, team)]
}

// DistinctDepartments returns how many departments occupy a zone.
func (s *Store) DistinctDepartments(key types.ZoneKey) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.zoneDept[key])
}

// CanHost reports whether a zone can accept an occupant of the given
// department without breaching the department cap.
func (s *Store) CanHost(key types.ZoneKey, department string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	depts := s.zoneDept[key]
	if _, present := depts[department]; present {
		return true
	}

	return len(depts) < s.departmentCap
}

// ZonesHosting returns the zones with at least one occupant of the given
// department, in canonical order.
func (s *Store) ZonesHosting(department string) []types.ZoneKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.ZoneKey
	for key, depts := range s.zoneDept {
		if depts[department] > 0 {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}

// TeamSeatNumbers returns the seat numbers occupied by one team in a zone,
// resolved through the provided seat lookup.
func (s *Store) TeamSeatNumbers(key types.ZoneKey, department, team string, seat func(string) (types.Seat, bool)) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var numbers []int
	for _, a := range s.assignments {
		if a.Key == key && a.Department == department && a.Team == team {
			if st, ok := seat(a.SeatID); ok {
				numbers = append(numbers, st.Number)
			}
		}
	}
	sort.Ints(numbers)

	return numbers
}

// Loads returns a copy of the per-zone occupant counts. Zones with zero
// occupants are absent.
func (s *Store) Loads() map[types.ZoneKey]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[types.ZoneKey]int, len(s.zoneLoad))
	for key, n := range s.zoneLoad {
		out[key] = n
	}

	return out
}

// OccupiedSeats returns the number of live assignments.
func (s *Store) OccupiedSeats() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.assignments)
}

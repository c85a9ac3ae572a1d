// Package topology holds the immutable building→floor→zone→seat model and
// the team→department mapping.
//
// A Topology is constructed once (programmatically via New, or from a YAML
// document via Parse/Load) and never mutated afterwards, so reads require
// no synchronization. It implements types.Inventory and is the standard
// seat-inventory collaborator for the engine.
package topology

import (
	"fmt"
	"sort"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Topology is the static seat catalog. Immutable after construction.
type Topology struct {
	seats    map[string]types.Seat
	zones    map[types.ZoneKey][]types.Seat
	zoneKeys []types.ZoneKey
	teamDept map[string]string
}

// Compile-time assertion that Topology implements Inventory.
var _ types.Inventory = (*Topology)(nil)

// New builds a topology from a seat list and a team→department mapping.
//
// Validation rules:
//   - at least one seat
//   - seat IDs are unique and non-empty
//   - every seat has a complete zone key
//   - every team maps to a non-empty department
//
// Parameters:
//   - seats: All physical seats
//   - teamDepartments: Mapping from team ID to department ID
//
// Returns:
//   - *Topology: The immutable topology
//   - error: Validation error describing the first offending entry
func New(seats []types.Seat, teamDepartments map[string]string) (*Topology, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: topology has no seats", types.ErrInvalidConfig)
	}

	t := &Topology{
		seats:    make(map[string]types.Seat, len(seats)),
		zones:    make(map[types.ZoneKey][]types.Seat),
		teamDept: make(map[string]string, len(teamDepartments)),
	}

	for _, seat := range seats {
		if seat.ID == "" {
			return nil, fmt.Errorf("%w: seat with empty ID", types.ErrInvalidConfig)
		}
		if seat.Key.Building == "" || seat.Key.Floor == "" || seat.Key.Zone == "" {
			return nil, fmt.Errorf("%w: seat %s has incomplete zone key %q", types.ErrInvalidConfig, seat.ID, seat.Key)
		}
		if _, exists := t.seats[seat.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate seat ID %s", types.ErrInvalidConfig, seat.ID)
		}
		t.seats[seat.ID] = seat
		t.zones[seat.Key] = append(t.zones[seat.Key], seat)
	}

	for team, dept := range teamDepartments {
		if team == "" || dept == "" {
			return nil, fmt.Errorf("%w: empty team or department in mapping", types.ErrInvalidConfig)
		}
		t.teamDept[team] = dept
	}

	// Canonical ordering keeps every downstream scan deterministic.
	t.zoneKeys = make([]types.ZoneKey, 0, len(t.zones))
	for key := range t.zones {
		t.zoneKeys = append(t.zoneKeys, key)
	}
	sort.Slice(t.zoneKeys, func(i, j int) bool {
		return t.zoneKeys[i].Compare(t.zoneKeys[j]) < 0
	})
	for key := range t.zones {
		zone := t.zones[key]
		sort.Slice(zone, func(i, j int) bool {
			if zone[i].Number != zone[j].Number {
				return zone[i].Number < zone[j].Number
			}

			return zone[i].ID < zone[j].ID
		})
	}

	return t, nil
}

// Seat returns the seat with the given ID.
func (t *Topology) Seat(seatID string) (types.Seat, bool) {
	seat, ok := t.seats[seatID]

	return seat, ok
}

// Seats returns all seats ordered by seat ID.
func (t *Topology) Seats() []types.Seat {
	out := make([]types.Seat, 0, len(t.seats))
	for _, key := range t.zoneKeys {
		out = append(out, t.zones[key]...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// SeatsInZone returns a copy of the seats of one zone, ordered by number.
func (t *Topology) SeatsInZone(key types.ZoneKey) []types.Seat {
	zone := t.zones[key]
	out := make([]types.Seat, len(zone))
	copy(out, zone)

	return out
}

// Zones returns all zone keys in canonical order.
func (t *Topology) Zones() []types.ZoneKey {
	out := make([]types.ZoneKey, len(t.zoneKeys))
	copy(out, t.zoneKeys)

	return out
}

// ZoneCapacity returns the seat count of a zone (0 for unknown zones).
func (t *Topology) ZoneCapacity(key types.ZoneKey) int {
	return len(t.zones[key])
}

// DepartmentOf resolves a team to its department.
//
// Returns:
//   - string: The department identifier
//   - error: types.ErrUnknownTeam if the team has no mapping
func (t *Topology) DepartmentOf(team string) (string, error) {
	dept, ok := t.teamDept[team]
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrUnknownTeam, team)
	}

	return dept, nil
}

package types

// ZoneKey identifies a zone within the building topology.
//
// A zone is the unit of energy control: every seat belongs to exactly one
// zone, every zone to one floor, every floor to one building. ZoneKey is a
// comparable value type so it can be used directly as a map key.
type ZoneKey struct {
	// Building is the building identifier (e.g., "B1").
	Building string `json:"building" yaml:"building"`

	// Floor is the floor identifier within the building (e.g., "F2").
	Floor string `json:"floor" yaml:"floor"`

	// Zone is the zone identifier within the floor (e.g., "A").
	Zone string `json:"zone" yaml:"zone"`
}

// String returns the canonical "building/floor/zone" form of the key.
func (k ZoneKey) String() string {
	return k.Building + "/" + k.Floor + "/" + k.Zone
}

// IsZero reports whether the key is the zero value.
func (k ZoneKey) IsZero() bool {
	return k == ZoneKey{}
}

// SameBuilding reports whether both keys belong to the same building.
func (k ZoneKey) SameBuilding(o ZoneKey) bool {
	return k.Building == o.Building
}

// SameFloor reports whether both keys belong to the same building and floor.
func (k ZoneKey) SameFloor(o ZoneKey) bool {
	return k.Building == o.Building && k.Floor == o.Floor
}

// Compare performs a lexicographic comparison of two zone keys, ordering by
// building, then floor, then zone.
//
// Returns:
//   - int: -1 if k < o, 0 if equal, +1 if k > o
func (k ZoneKey) Compare(o ZoneKey) int {
	if k.Building != o.Building {
		if k.Building < o.Building {
			return -1
		}

		return 1
	}
	if k.Floor != o.Floor {
		if k.Floor < o.Floor {
			return -1
		}

		return 1
	}
	if k.Zone != o.Zone {
		if k.Zone < o.Zone {
			return -1
		}

		return 1
	}

	return 0
}

// Seat is a physical seat in the topology. Seats are immutable after
// topology load; occupancy is tracked separately by the occupancy store.
type Seat struct {
	// ID uniquely identifies the seat (e.g., "S-B1-F1-A-003").
	ID string `json:"id" yaml:"id"`

	// Key locates the seat's zone.
	Key ZoneKey `json:"key" yaml:"key"`

	// Number is the seat position within the zone, used for proximity
	// scoring (adjacent numbers are physically adjacent desks).
	Number int `json:"number" yaml:"number"`
}

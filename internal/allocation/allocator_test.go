package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/locality"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/logging"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/occupancy"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/strategy"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/topology"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

func zoneKey(b, f, z string) types.ZoneKey {
	return types.ZoneKey{Building: b, Floor: f, Zone: z}
}

// twoZoneTopology: B1/F1/A with 3 seats, B1/F1/B with 3 seats,
// B2/F1/A with 2 seats.
func twoZoneTopology(t *testing.T) *topology.Topology {
	t.Helper()
	var seats []types.Seat
	add := func(b, f, z string, n int) {
		for i := 1; i <= n; i++ {
			seats = append(seats, types.Seat{
				ID:     "S-" + b + "-" + f + "-" + z + "-" + string(rune('0'+i)),
				Key:    zoneKey(b, f, z),
				Number: i,
			})
		}
	}
	add("B1", "F1", "A", 3)
	add("B1", "F1", "B", 3)
	add("B2", "F1", "A", 2)

	topo, err := topology.New(seats, map[string]string{
		"Platform":  "Eng",
		"Data":      "Eng",
		"PeopleOps": "HR",
		"Audit":     "Finance",
	})
	require.NoError(t, err)

	return topo
}

func newAllocator(t *testing.T, topo *topology.Topology, cap int) (*Allocator, *occupancy.Store, *locality.Cache) {
	t.Helper()
	store := occupancy.New(cap)
	cache := locality.New()
	clock := func() time.Time { return time.Unix(1000, 0) }
	alloc := New(topo, store, cache, strategy.NewLocalityBeam(), logging.NewNop(), clock)

	return alloc, store, cache
}

func employee(id, team string) types.Employee {
	return types.Employee{ID: id, CardID: "CARD-" + id, Team: team}
}

func mustAssign(t *testing.T, a *Allocator, emp types.Employee, dept string) types.Assignment {
	t.Helper()
	res, err := a.Allocate(emp, dept, 0)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeAssigned, res.Outcome)
	require.NotNil(t, res.Assignment)

	return *res.Assignment
}

func TestAllocator_SameTeamLandsInSameZone(t *testing.T) {
	alloc, _, _ := newAllocator(t, twoZoneTopology(t), 2)

	first := mustAssign(t, alloc, employee("E1", "Platform"), "Eng")
	second := mustAssign(t, alloc, employee("E2", "Platform"), "Eng")

	require.Equal(t, first.Key, second.Key)
	require.NotEqual(t, first.SeatID, second.SeatID)
}

func TestAllocator_LocalityLockIsHard(t *testing.T) {
	topo := twoZoneTopology(t)
	alloc, store, _ := newAllocator(t, topo, 2)

	first := mustAssign(t, alloc, employee("E1", "Platform"), "Eng")

	// Fill the rest of first's zone with another department so the locked
	// zone still has one free seat; the lock must win over that zone's load.
	other := zoneKey("B1", "F1", "B")
	for i, seat := range topo.SeatsInZone(other) {
		require.NoError(t, store.Assign(types.Assignment{
			EmployeeID: "H" + string(rune('1'+i)),
			SeatID:     seat.ID,
			Key:        other,
			Department: "HR",
			Team:       "PeopleOps",
		}))
	}
	require.Equal(t, 3, store.ZoneLoad(other))

	second := mustAssign(t, alloc, employee("E2", "Platform"), "Eng")
	require.Equal(t, first.Key, second.Key, "teammate must stay in the locked zone despite a fuller zone elsewhere")
}

func TestAllocator_LockRelaxesToDepartmentZones(t *testing.T) {
	topo := twoZoneTopology(t)
	alloc, store, _ := newAllocator(t, topo, 2)

	// Platform fills its anchor zone completely.
	a1 := mustAssign(t, alloc, employee("E1", "Platform"), "Eng")
	mustAssign(t, alloc, employee("E2", "Platform"), "Eng")
	mustAssign(t, alloc, employee("E3", "Platform"), "Eng")
	require.Equal(t, 3, store.ZoneLoad(a1.Key))

	// A Data (same dept) colleague occupies another zone.
	dataSeat := mustAssign(t, alloc, employee("E4", "Data"), "Eng")
	require.NotEqual(t, a1.Key, dataSeat.Key)

	// Next Platform employee: anchor full, must relax into the Data zone
	// (department presence) before any empty zone.
	next := mustAssign(t, alloc, employee("E5", "Platform"), "Eng")
	require.Equal(t, dataSeat.Key, next.Key)
}

func TestAllocator_DepartmentCapExcludesZones(t *testing.T) {
	topo := twoZoneTopology(t)
	alloc, _, _ := newAllocator(t, topo, 2)
	_ = topo

	// Two departments take the consolidated zone.
	a1 := mustAssign(t, alloc, employee("E1", "Platform"), "Eng")
	a2 := mustAssign(t, alloc, employee("E2", "PeopleOps"), "HR")
	require.Equal(t, a1.Key, a2.Key, "second department consolidates into the occupied zone")

	// Third department cannot enter that zone even though it has a free seat.
	a3 := mustAssign(t, alloc, employee("E3", "Audit"), "Finance")
	require.NotEqual(t, a1.Key, a3.Key)
}

func TestAllocator_Exhausted(t *testing.T) {
	topo := twoZoneTopology(t)
	alloc, store, _ := newAllocator(t, topo, 2)

	for i, seat := range topo.Seats() {
		require.NoError(t, store.Assign(types.Assignment{
			EmployeeID: "X" + string(rune('1'+i)),
			SeatID:     seat.ID,
			Key:        seat.Key,
			Department: "Eng",
			Team:       "Platform",
		}))
	}

	res, err := alloc.Allocate(employee("E9", "Data"), "Eng", 7)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeExhausted, res.Outcome)
	require.Nil(t, res.Assignment)
	require.Equal(t, uint64(7), res.Seq)
}

func TestAllocator_ExhaustedWhenOnlyCappedZonesRemain(t *testing.T) {
	// Single zone topology at the department cap: a third department finds
	// free seats but no hostable zone.
	seats := []types.Seat{
		{ID: "S1", Key: zoneKey("B1", "F1", "A"), Number: 1},
		{ID: "S2", Key: zoneKey("B1", "F1", "A"), Number: 2},
		{ID: "S3", Key: zoneKey("B1", "F1", "A"), Number: 3},
	}
	topo, err := topology.New(seats, map[string]string{"T1": "D1", "T2": "D2", "T3": "D3"})
	require.NoError(t, err)

	alloc, _, _ := newAllocator(t, topo, 2)
	mustAssign(t, alloc, employee("E1", "T1"), "D1")
	mustAssign(t, alloc, employee("E2", "T2"), "D2")

	res, err := alloc.Allocate(employee("E3", "T3"), "D3", 0)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeExhausted, res.Outcome)
}

func TestAllocator_AlreadyAssignedIsIdempotent(t *testing.T) {
	alloc, store, _ := newAllocator(t, twoZoneTopology(t), 2)

	first := mustAssign(t, alloc, employee("E1", "Platform"), "Eng")

	res, err := alloc.Allocate(employee("E1", "Platform"), "Eng", 42)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeAlreadyAssigned, res.Outcome)
	require.Equal(t, first.SeatID, res.Assignment.SeatID)
	require.Equal(t, 1, store.OccupiedSeats(), "no second assignment created")
}

func TestAllocator_DeterministicTieBreak(t *testing.T) {
	run := func() []string {
		topo := twoZoneTopology(t)
		alloc, _, _ := newAllocator(t, topo, 2)
		var ids []string
		for _, e := range []types.Employee{
			employee("E1", "Platform"),
			employee("E2", "Data"),
			employee("E3", "Platform"),
			employee("E4", "PeopleOps"),
		} {
			dept, err := topo.DepartmentOf(e.Team)
			require.NoError(t, err)
			res, err := alloc.Allocate(e, dept, 0)
			require.NoError(t, err)
			require.Equal(t, types.OutcomeAssigned, res.Outcome)
			ids = append(ids, res.Assignment.SeatID)
		}

		return ids
	}

	first := run()
	for range 3 {
		require.Equal(t, first, run())
	}
}

func TestAllocator_CacheFollowsPlacements(t *testing.T) {
	alloc, _, cache := newAllocator(t, twoZoneTopology(t), 2)

	a := mustAssign(t, alloc, employee("E1", "Platform"), "Eng")
	entry, ok := cache.Lookup("Eng", "Platform")
	require.True(t, ok)
	require.Equal(t, a.Key, entry.Key)
	require.Equal(t, a.SeatID, entry.SeatID)

	b := mustAssign(t, alloc, employee("E2", "Platform"), "Eng")
	entry, ok = cache.Lookup("Eng", "Platform")
	require.True(t, ok)
	require.Equal(t, b.SeatID, entry.SeatID, "cache overwritten on each placement")
}

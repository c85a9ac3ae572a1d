package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

func zoneA() types.ZoneKey { return types.ZoneKey{Building: "B1", Floor: "F1", Zone: "A"} }
func zoneB() types.ZoneKey { return types.ZoneKey{Building: "B1", Floor: "F1", Zone: "B"} }

func assignment(emp, seat string, key types.ZoneKey, dept, team string) types.Assignment {
	return types.Assignment{
		EmployeeID: emp,
		SeatID:     seat,
		Key:        key,
		Department: dept,
		Team:       team,
		AssignedAt: time.Unix(0, 0),
	}
}

func TestStore_AssignAndCounts(t *testing.T) {
	s := New(2)

	require.NoError(t, s.Assign(assignment("E1", "S1", zoneA(), "Eng", "Platform")))
	require.NoError(t, s.Assign(assignment("E2", "S2", zoneA(), "Eng", "Platform")))
	require.NoError(t, s.Assign(assignment("E3", "S3", zoneA(), "HR", "PeopleOps")))

	require.Equal(t, 3, s.ZoneLoad(zoneA()))
	require.Equal(t, 2, s.DeptCount(zoneA(), "Eng"))
	require.Equal(t, 1, s.DeptCount(zoneA(), "HR"))
	require.Equal(t, 2, s.TeamCount(zoneA(), "Eng", "Platform"))
	require.Equal(t, 2, s.DistinctDepartments(zoneA()))
	require.Equal(t, 3, s.OccupiedSeats())

	require.False(t, s.IsFree("S1"))
	require.True(t, s.IsFree("S9"))

	owner, ok := s.OwnerOf("S2")
	require.True(t, ok)
	require.Equal(t, "E2", owner)
}

func TestStore_AssignmentInvariants(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Assign(assignment("E1", "S1", zoneA(), "Eng", "Platform")))

	t.Run("one seat per employee", func(t *testing.T) {
		err := s.Assign(assignment("E1", "S2", zoneA(), "Eng", "Platform"))
		require.ErrorIs(t, err, types.ErrAlreadyAssigned)
	})

	t.Run("one employee per seat", func(t *testing.T) {
		err := s.Assign(assignment("E2", "S1", zoneA(), "Eng", "Platform"))
		require.ErrorIs(t, err, types.ErrSeatOccupied)
	})
}

func TestStore_DepartmentCap(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Assign(assignment("E1", "S1", zoneA(), "DeptA", "T1")))
	require.NoError(t, s.Assign(assignment("E2", "S2", zoneA(), "DeptB", "T2")))

	t.Run("third department is rejected", func(t *testing.T) {
		err := s.Assign(assignment("E3", "S3", zoneA(), "DeptC", "T3"))
		require.ErrorIs(t, err, types.ErrCapacityInvariant)
		require.Equal(t, 2, s.ZoneLoad(zoneA()), "failed commit must not mutate counts")
	})

	t.Run("existing department still fits", func(t *testing.T) {
		require.NoError(t, s.Assign(assignment("E4", "S4", zoneA(), "DeptA", "T9")))
	})

	t.Run("cap query", func(t *testing.T) {
		require.True(t, s.CanHost(zoneA(), "DeptA"))
		require.False(t, s.CanHost(zoneA(), "DeptC"))
		require.True(t, s.CanHost(zoneB(), "DeptC"))
	})
}

func TestStore_Vacate(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Assign(assignment("E1", "S1", zoneA(), "Eng", "Platform")))
	require.NoError(t, s.Assign(assignment("E2", "S2", zoneA(), "HR", "PeopleOps")))

	a, ok := s.Vacate("E2")
	require.True(t, ok)
	require.Equal(t, "S2", a.SeatID)

	require.Equal(t, 1, s.ZoneLoad(zoneA()))
	require.Equal(t, 1, s.DistinctDepartments(zoneA()), "vacated department drops out")
	require.True(t, s.IsFree("S2"))
	require.True(t, s.CanHost(zoneA(), "DeptC"), "cap frees up after vacate")

	_, ok = s.Vacate("E2")
	require.False(t, ok, "second vacate is a no-op")

	a, ok = s.Vacate("E1")
	require.True(t, ok)
	require.Equal(t, "S1", a.SeatID)
	require.Empty(t, s.Loads(), "empty zones drop out of load map")
}

func TestStore_ZonesHostingAndSeatNumbers(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Assign(assignment("E1", "S1", zoneB(), "Eng", "Platform")))
	require.NoError(t, s.Assign(assignment("E2", "S2", zoneA(), "Eng", "Platform")))
	require.NoError(t, s.Assign(assignment("E3", "S3", zoneA(), "HR", "PeopleOps")))

	hosting := s.ZonesHosting("Eng")
	require.Equal(t, []types.ZoneKey{zoneA(), zoneB()}, hosting, "canonical order")

	seatNum := map[string]int{"S1": 7, "S2": 3, "S3": 5}
	lookup := func(id string) (types.Seat, bool) {
		n, ok := seatNum[id]

		return types.Seat{ID: id, Number: n}, ok
	}
	numbers := s.TeamSeatNumbers(zoneA(), "Eng", "Platform", lookup)
	require.Equal(t, []int{3}, numbers)
}

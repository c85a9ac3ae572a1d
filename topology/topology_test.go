package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

func zone(b, f, z string) types.ZoneKey {
	return types.ZoneKey{Building: b, Floor: f, Zone: z}
}

func TestNew_Validation(t *testing.T) {
	t.Run("rejects empty seat list", func(t *testing.T) {
		_, err := New(nil, nil)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects duplicate seat IDs", func(t *testing.T) {
		seats := []types.Seat{
			{ID: "S1", Key: zone("B1", "F1", "A"), Number: 1},
			{ID: "S1", Key: zone("B1", "F1", "B"), Number: 1},
		}
		_, err := New(seats, nil)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
		require.Contains(t, err.Error(), "duplicate seat ID")
	})

	t.Run("rejects incomplete zone key", func(t *testing.T) {
		seats := []types.Seat{{ID: "S1", Key: types.ZoneKey{Building: "B1"}, Number: 1}}
		_, err := New(seats, nil)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects empty team mapping entries", func(t *testing.T) {
		seats := []types.Seat{{ID: "S1", Key: zone("B1", "F1", "A"), Number: 1}}
		_, err := New(seats, map[string]string{"Platform": ""})
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}

func TestTopology_Lookups(t *testing.T) {
	seats := []types.Seat{
		{ID: "S3", Key: zone("B1", "F1", "A"), Number: 3},
		{ID: "S1", Key: zone("B1", "F1", "A"), Number: 1},
		{ID: "S2", Key: zone("B1", "F1", "B"), Number: 1},
		{ID: "S4", Key: zone("B2", "F1", "A"), Number: 1},
	}
	topo, err := New(seats, map[string]string{"Platform": "Engineering"})
	require.NoError(t, err)

	t.Run("seat lookup", func(t *testing.T) {
		seat, ok := topo.Seat("S3")
		require.True(t, ok)
		require.Equal(t, 3, seat.Number)

		_, ok = topo.Seat("missing")
		require.False(t, ok)
	})

	t.Run("zones are canonically ordered", func(t *testing.T) {
		require.Equal(t, []types.ZoneKey{
			zone("B1", "F1", "A"),
			zone("B1", "F1", "B"),
			zone("B2", "F1", "A"),
		}, topo.Zones())
	})

	t.Run("zone seats ordered by number", func(t *testing.T) {
		inZone := topo.SeatsInZone(zone("B1", "F1", "A"))
		require.Len(t, inZone, 2)
		require.Equal(t, "S1", inZone[0].ID)
		require.Equal(t, "S3", inZone[1].ID)
	})

	t.Run("zone capacity", func(t *testing.T) {
		require.Equal(t, 2, topo.ZoneCapacity(zone("B1", "F1", "A")))
		require.Equal(t, 0, topo.ZoneCapacity(zone("B9", "F9", "Z")))
	})

	t.Run("department resolution", func(t *testing.T) {
		dept, err := topo.DepartmentOf("Platform")
		require.NoError(t, err)
		require.Equal(t, "Engineering", dept)

		_, err = topo.DepartmentOf("Ghosts")
		require.ErrorIs(t, err, types.ErrUnknownTeam)
	})

	t.Run("seats sorted by ID", func(t *testing.T) {
		all := topo.Seats()
		require.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			require.Less(t, all[i-1].ID, all[i].ID)
		}
	})
}

func TestParse(t *testing.T) {
	doc := []byte(`
teams:
  Platform: Engineering
  PeopleOps: HR
buildings:
  - id: B1
    floors:
      - id: F1
        zones:
          - id: A
            seats: 3
          - id: B
            seatIds: [X-1, X-2]
`)
	topo, err := Parse(doc)
	require.NoError(t, err)

	require.Equal(t, 3, topo.ZoneCapacity(zone("B1", "F1", "A")))

	seat, ok := topo.Seat("S-B1-F1-A-002")
	require.True(t, ok)
	require.Equal(t, 2, seat.Number)

	seat, ok = topo.Seat("X-2")
	require.True(t, ok)
	require.Equal(t, zone("B1", "F1", "B"), seat.Key)
	require.Equal(t, 2, seat.Number)

	dept, err := topo.DepartmentOf("PeopleOps")
	require.NoError(t, err)
	require.Equal(t, "HR", dept)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("buildings: [unterminated"))
	require.Error(t, err)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZoneKey_Compare(t *testing.T) {
	a := ZoneKey{Building: "B1", Floor: "F1", Zone: "A"}
	b := ZoneKey{Building: "B1", Floor: "F1", Zone: "B"}
	c := ZoneKey{Building: "B1", Floor: "F2", Zone: "A"}
	d := ZoneKey{Building: "B2", Floor: "F1", Zone: "A"}

	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, -1, b.Compare(c), "floor orders before zone")
	require.Equal(t, -1, c.Compare(d), "building orders before floor")
}

func TestZoneKey_Affinity(t *testing.T) {
	a := ZoneKey{Building: "B1", Floor: "F1", Zone: "A"}

	require.True(t, a.SameFloor(ZoneKey{Building: "B1", Floor: "F1", Zone: "B"}))
	require.False(t, a.SameFloor(ZoneKey{Building: "B1", Floor: "F2", Zone: "A"}))
	require.True(t, a.SameBuilding(ZoneKey{Building: "B1", Floor: "F5", Zone: "C"}))
	require.False(t, a.SameBuilding(ZoneKey{Building: "B2", Floor: "F1", Zone: "A"}))
}

func TestZoneKey_String(t *testing.T) {
	k := ZoneKey{Building: "B2", Floor: "F3", Zone: "A"}
	require.Equal(t, "B2/F3/A", k.String())
	require.False(t, k.IsZero())
	require.True(t, ZoneKey{}.IsZero())
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "assigned", OutcomeAssigned.String())
	require.Equal(t, "already_assigned", OutcomeAlreadyAssigned.String())
	require.Equal(t, "exhausted", OutcomeExhausted.String())
	require.Equal(t, "invalid_event", OutcomeInvalidEvent.String())
	require.Equal(t, "unknown", Outcome(99).String())
}

func TestPowerState_String(t *testing.T) {
	require.Equal(t, "OFF", PowerOff.String())
	require.Equal(t, "ON", PowerOn.String())
}

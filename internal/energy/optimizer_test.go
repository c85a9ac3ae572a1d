package energy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

func zone(b, f, z string) types.ZoneKey {
	return types.ZoneKey{Building: b, Floor: f, Zone: z}
}

func testConfig() Config {
	return Config{
		SeatsPerLightCircuit: 10,
		SeatsPerACVent:       20,
		Rates: Rates{
			LightWatts:   100,
			RouterWatts:  20,
			MonitorWatts: 30,
			DesktopWatts: 150,
			VentWatts:    200,
		},
	}
}

func loadFunc(m map[types.ZoneKey]int) func(types.ZoneKey) int {
	return func(k types.ZoneKey) int { return m[k] }
}

func TestOptimizer_Reconcile(t *testing.T) {
	zA, zB := zone("B1", "F1", "A"), zone("B1", "F1", "B")
	o := New([]types.ZoneKey{zA, zB}, testConfig())

	t.Run("initial state is OFF", func(t *testing.T) {
		require.Equal(t, types.PowerOff, o.State(zA))
		require.Equal(t, types.PowerOff, o.State(zB))
		require.Equal(t, 0, o.ZonesOn())
	})

	t.Run("first occupant turns the zone ON", func(t *testing.T) {
		tr := o.Reconcile(loadFunc(map[types.ZoneKey]int{zA: 1}), []types.ZoneKey{zA})
		require.Equal(t, []types.ZoneTransition{{Key: zA, From: types.PowerOff, To: types.PowerOn}}, tr)
		require.Equal(t, types.PowerOn, o.State(zA))
		require.Equal(t, 1, o.ZonesOn())
	})

	t.Run("level-triggered: already ON is not a transition", func(t *testing.T) {
		tr := o.Reconcile(loadFunc(map[types.ZoneKey]int{zA: 2}), []types.ZoneKey{zA})
		require.Empty(t, tr)
	})

	t.Run("unaffected zones are untouched", func(t *testing.T) {
		tr := o.Reconcile(loadFunc(map[types.ZoneKey]int{zA: 0, zB: 1}), []types.ZoneKey{zB})
		require.Equal(t, []types.ZoneTransition{{Key: zB, From: types.PowerOff, To: types.PowerOn}}, tr)
		require.Equal(t, types.PowerOn, o.State(zA), "zA not in affected set")
	})

	t.Run("last occupant turns the zone OFF", func(t *testing.T) {
		tr := o.Reconcile(loadFunc(map[types.ZoneKey]int{zA: 0, zB: 1}), []types.ZoneKey{zA})
		require.Equal(t, []types.ZoneTransition{{Key: zA, From: types.PowerOn, To: types.PowerOff}}, tr)
	})

	t.Run("duplicate affected zones reconcile once, canonical order", func(t *testing.T) {
		tr := o.Reconcile(loadFunc(map[types.ZoneKey]int{zA: 3, zB: 0}), []types.ZoneKey{zB, zA, zB, zA})
		require.Equal(t, []types.ZoneTransition{
			{Key: zA, From: types.PowerOff, To: types.PowerOn},
			{Key: zB, From: types.PowerOn, To: types.PowerOff},
		}, tr)
	})
}

func TestOptimizer_StateEqualsOccupancyAfterReconcile(t *testing.T) {
	zones := []types.ZoneKey{zone("B1", "F1", "A"), zone("B1", "F2", "A"), zone("B2", "F1", "B")}
	o := New(zones, testConfig())

	loads := map[types.ZoneKey]int{zones[0]: 2, zones[1]: 0, zones[2]: 1}
	o.Reconcile(loadFunc(loads), zones)

	for _, key := range zones {
		wantOn := loads[key] > 0
		require.Equal(t, wantOn, o.State(key) == types.PowerOn, "zone %s", key)
	}
}

func TestOptimizer_Usage(t *testing.T) {
	zA, zB := zone("B1", "F1", "A"), zone("B1", "F1", "B")
	o := New([]types.ZoneKey{zA, zB}, testConfig())
	capacity := func(types.ZoneKey) int { return 100 }

	loads := map[types.ZoneKey]int{zA: 15}
	o.Reconcile(loadFunc(loads), []types.ZoneKey{zA})
	summary := o.Usage(loadFunc(loads), capacity)

	require.Len(t, summary.Zones, 2)

	on := summary.Zones[0]
	require.Equal(t, zA, on.Key)
	require.Equal(t, 15, on.OccupiedSeats)
	require.Equal(t, 2, on.LightsOn, "ceil(15/10)")
	require.Equal(t, 1, on.RoutersOn)
	require.Equal(t, 15, on.MonitorsOn)
	require.Equal(t, 15, on.DesktopsOn)
	require.Equal(t, 1, on.VentsOn, "ceil(15/20)")
	// 2*100 + 20 + 15*30 + 15*150 + 1*200 = 3120
	require.InDelta(t, 3120, on.Watts, 1e-9)

	off := summary.Zones[1]
	require.Equal(t, zB, off.Key)
	require.Zero(t, off.Watts, "OFF zone draws nothing")
	require.Zero(t, off.LightsOn)

	require.InDelta(t, 3120, summary.TotalWatts, 1e-9)
	// Full zone: 10*100 + 20 + 100*30 + 100*150 + 5*200 = 20020 per zone.
	require.InDelta(t, 40040, summary.BaselineWatts, 1e-9)
	require.InDelta(t, (40040.0-3120.0)/40040.0*100, summary.SavingsPercent, 1e-9)
}

func TestOptimizer_UsageDropsAfterVacate(t *testing.T) {
	zA := zone("B1", "F1", "A")
	o := New([]types.ZoneKey{zA}, testConfig())
	capacity := func(types.ZoneKey) int { return 10 }

	o.Reconcile(loadFunc(map[types.ZoneKey]int{zA: 1}), []types.ZoneKey{zA})
	before := o.Usage(loadFunc(map[types.ZoneKey]int{zA: 1}), capacity)
	require.Greater(t, before.TotalWatts, 0.0)

	tr := o.Reconcile(loadFunc(map[types.ZoneKey]int{}), []types.ZoneKey{zA})
	require.Len(t, tr, 1)
	require.Equal(t, types.PowerOff, tr[0].To)

	after := o.Usage(loadFunc(map[types.ZoneKey]int{}), capacity)
	require.Zero(t, after.TotalWatts)
	require.InDelta(t, 100, after.SavingsPercent, 1e-9)
}

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 0, ceilDiv(0, 10, 100))
	require.Equal(t, 1, ceilDiv(1, 10, 100))
	require.Equal(t, 1, ceilDiv(10, 10, 100))
	require.Equal(t, 2, ceilDiv(11, 10, 100))
	require.Equal(t, 10, ceilDiv(200, 10, 100), "capped at the zone's circuits")
	require.Equal(t, 0, ceilDiv(5, 0, 100), "guard against zero divisor")
}

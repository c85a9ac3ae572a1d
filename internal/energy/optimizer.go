// Package energy derives per-zone power state from live occupancy and
// aggregates device-level electrical usage.
package energy

import (
	"sort"
	"sync"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Rates holds the fixed per-device consumption rates in watts.
type Rates struct {
	LightWatts   float64
	RouterWatts  float64
	MonitorWatts float64
	DesktopWatts float64
	VentWatts    float64
}

// Config controls device counting and consumption rates.
type Config struct {
	// SeatsPerLightCircuit is how many seats one light circuit covers.
	SeatsPerLightCircuit int

	// SeatsPerACVent is how many seats one AC vent covers.
	SeatsPerACVent int

	// Rates are the per-device watt rates.
	Rates Rates
}

// Optimizer owns the per-zone power state. Every zone starts OFF; the state
// machine is level-triggered on occupant count, so re-entering ON while
// already ON is a no-op and is never reported as a transition.
//
// Correctness invariant after Reconcile returns: a zone is ON iff its
// occupant count is > 0.
type Optimizer struct {
	mu sync.RWMutex

	cfg    Config
	states map[types.ZoneKey]types.PowerState
}

// New creates an optimizer with all zones OFF.
//
// Parameters:
//   - zones: Every zone in the topology
//   - cfg: Device counting and rate configuration
func New(zones []types.ZoneKey, cfg Config) *Optimizer {
	states := make(map[types.ZoneKey]types.PowerState, len(zones))
	for _, key := range zones {
		states[key] = types.PowerOff
	}

	return &Optimizer{cfg: cfg, states: states}
}

// Reconcile recomputes the power state of the affected zones against the
// given occupant counts and returns the transitions, in canonical zone
// order. Zones not listed keep their state untouched.
//
// Parameters:
//   - load: Occupant count lookup (zero for unknown zones)
//   - affected: Zones whose occupancy changed in the last batch
//
// Returns:
//   - []types.ZoneTransition: One entry per zone that actually flipped
func (o *Optimizer) Reconcile(load func(types.ZoneKey) int, affected []types.ZoneKey) []types.ZoneTransition {
	o.mu.Lock()
	defer o.mu.Unlock()

	seen := make(map[types.ZoneKey]struct{}, len(affected))
	keys := make([]types.ZoneKey, 0, len(affected))
	for _, key := range affected {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	var transitions []types.ZoneTransition
	for _, key := range keys {
		want := types.PowerOff
		if load(key) > 0 {
			want = types.PowerOn
		}
		have := o.states[key]
		if have == want {
			continue
		}
		o.states[key] = want
		transitions = append(transitions, types.ZoneTransition{Key: key, From: have, To: want})
	}

	return transitions
}

// State returns the current power state of a zone (OFF for unknown zones).
func (o *Optimizer) State(key types.ZoneKey) types.PowerState {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.states[key]
}

// States returns a copy of all zone power states.
func (o *Optimizer) States() map[types.ZoneKey]types.PowerState {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make(map[types.ZoneKey]types.PowerState, len(o.states))
	for key, st := range o.states {
		out[key] = st
	}

	return out
}

// ZonesOn returns the number of energized zones.
func (o *Optimizer) ZonesOn() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	n := 0
	for _, st := range o.states {
		if st == types.PowerOn {
			n++
		}
	}

	return n
}

// Usage computes the device usage summary across all zones. Zones that are
// OFF draw nothing; for zones that are ON, device counts derive from the
// occupant count and the zone capacity:
//
//   - light circuits: ceil(occupants / SeatsPerLightCircuit), capped at the
//     circuits the zone physically has
//   - routers: 1
//   - monitors, desktop CPUs: one per occupant
//   - AC vents: ceil(occupants / SeatsPerACVent), capped likewise
//
// The baseline is every zone at full occupancy; SavingsPercent is the
// relative saving against it.
//
// Parameters:
//   - load: Occupant count lookup
//   - capacity: Zone seat capacity lookup
//
// Returns:
//   - types.UsageSummary: Rows in canonical zone order plus totals
func (o *Optimizer) Usage(load func(types.ZoneKey) int, capacity func(types.ZoneKey) int) types.UsageSummary {
	o.mu.RLock()
	defer o.mu.RUnlock()

	keys := make([]types.ZoneKey, 0, len(o.states))
	for key := range o.states {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	summary := types.UsageSummary{Zones: make([]types.ZoneUsage, 0, len(keys))}
	for _, key := range keys {
		zoneCap := capacity(key)
		summary.BaselineWatts += o.zoneWatts(zoneCap, zoneCap)

		row := types.ZoneUsage{Key: key}
		if o.states[key] == types.PowerOn {
			occupied := load(key)
			row.OccupiedSeats = occupied
			row.LightsOn = ceilDiv(occupied, o.cfg.SeatsPerLightCircuit, zoneCap)
			row.RoutersOn = 1
			row.MonitorsOn = occupied
			row.DesktopsOn = occupied
			row.VentsOn = ceilDiv(occupied, o.cfg.SeatsPerACVent, zoneCap)
			row.Watts = o.rowWatts(row)
		}
		summary.Zones = append(summary.Zones, row)
		summary.TotalWatts += row.Watts
	}

	if summary.BaselineWatts > 0 {
		summary.SavingsPercent = (summary.BaselineWatts - summary.TotalWatts) / summary.BaselineWatts * 100
	}

	return summary
}

// ceilDiv returns ceil(occupied/per), capped at ceil(capacity/per).
func ceilDiv(occupied, per, capacity int) int {
	if per <= 0 || occupied <= 0 {
		return 0
	}
	n := (occupied + per - 1) / per
	if limit := (capacity + per - 1) / per; n > limit {
		n = limit
	}

	return n
}

func (o *Optimizer) zoneWatts(occupied, capacity int) float64 {
	if occupied <= 0 {
		return 0
	}

	return o.rowWatts(types.ZoneUsage{
		OccupiedSeats: occupied,
		LightsOn:      ceilDiv(occupied, o.cfg.SeatsPerLightCircuit, capacity),
		RoutersOn:     1,
		MonitorsOn:    occupied,
		DesktopsOn:    occupied,
		VentsOn:       ceilDiv(occupied, o.cfg.SeatsPerACVent, capacity),
	})
}

func (o *Optimizer) rowWatts(row types.ZoneUsage) float64 {
	r := o.cfg.Rates

	return float64(row.LightsOn)*r.LightWatts +
		float64(row.RoutersOn)*r.RouterWatts +
		float64(row.MonitorsOn)*r.MonitorWatts +
		float64(row.DesktopsOn)*r.DesktopWatts +
		float64(row.VentsOn)*r.VentWatts
}

package types

// PowerState is the per-zone power state owned by the energy optimizer.
type PowerState int32

const (
	// PowerOff is the initial state of every zone.
	PowerOff PowerState = iota

	// PowerOn means the zone has at least one occupant.
	PowerOn
)

// String returns the human-readable power state name.
func (s PowerState) String() string {
	if s == PowerOn {
		return "ON"
	}

	return "OFF"
}

// ZoneTransition reports a single OFF->ON or ON->OFF change. Re-entering a
// state the zone is already in is not a transition and is never reported.
type ZoneTransition struct {
	Key  ZoneKey    `json:"key"`
	From PowerState `json:"from"`
	To   PowerState `json:"to"`
}

// Device command verbs sent to the IoT dispatch collaborator.
const (
	CommandPowerOn  = "POWER_ON"
	CommandPowerOff = "POWER_OFF"
)

// DeviceCommand instructs the IoT dispatch collaborator to switch a zone's
// devices on or off.
type DeviceCommand struct {
	Key     ZoneKey `json:"key"`
	Command string  `json:"command"`
	Reason  string  `json:"reason"`
}

// ZoneUsage is the per-zone device usage estimate. All counts are zero for
// zones that are powered off.
type ZoneUsage struct {
	Key           ZoneKey `json:"key"`
	OccupiedSeats int     `json:"occupiedSeats"`
	LightsOn      int     `json:"lightsOn"`
	RoutersOn     int     `json:"routersOn"`
	MonitorsOn    int     `json:"monitorsOn"`
	DesktopsOn    int     `json:"desktopsOn"`
	VentsOn       int     `json:"ventsOn"`

	// Watts is the estimated electrical draw of the zone.
	Watts float64 `json:"watts"`
}

// UsageSummary aggregates device usage across all zones for reporting.
type UsageSummary struct {
	// Zones holds one row per zone, ordered by ZoneKey.
	Zones []ZoneUsage `json:"zones"`

	// TotalWatts is the estimated draw across all zones.
	TotalWatts float64 `json:"totalWatts"`

	// BaselineWatts is the draw if every zone ran at full occupancy.
	BaselineWatts float64 `json:"baselineWatts"`

	// SavingsPercent is the saving relative to the baseline (0-100).
	SavingsPercent float64 `json:"savingsPercent"`
}

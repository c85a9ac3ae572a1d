package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called while the engine holds its processing lock and
// must not block.
//
// This interface composes smaller, domain-focused interfaces so a custom
// collector can embed the nop implementation and override one area.
type MetricsCollector interface {
	AllocationMetrics
	EnergyMetrics
}

// AllocationMetrics defines metrics for seat allocation.
type AllocationMetrics interface {
	// RecordAllocation records a single allocation outcome
	// ("assigned", "already_assigned", "exhausted", "invalid_event").
	RecordAllocation(outcome string)

	// RecordBatchDuration records the time taken to process one batch.
	//
	// Parameters:
	//   - seconds: Time taken in seconds
	RecordBatchDuration(seconds float64)

	// RecordOccupiedSeats sets the current occupied seat count (gauge).
	RecordOccupiedSeats(count int)
}

// EnergyMetrics defines metrics for the zone energy optimizer.
type EnergyMetrics interface {
	// RecordZoneTransition records a zone power transition
	// ("on" for OFF->ON, "off" for ON->OFF).
	RecordZoneTransition(direction string)

	// RecordZonesOn sets the current number of energized zones (gauge).
	RecordZonesOn(count int)

	// RecordUsageWatts sets the current estimated total draw (gauge).
	RecordUsageWatts(watts float64)
}

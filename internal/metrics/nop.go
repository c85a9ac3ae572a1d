// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AllocationMetrics implementation

// RecordAllocation discards the allocation outcome counter.
func (n *NopMetrics) RecordAllocation(_ /* outcome */ string) {
	// No-op
}

// RecordBatchDuration discards the batch duration observation.
func (n *NopMetrics) RecordBatchDuration(_ /* seconds */ float64) {
	// No-op
}

// RecordOccupiedSeats discards the occupied seat gauge.
func (n *NopMetrics) RecordOccupiedSeats(_ /* count */ int) {
	// No-op
}

// EnergyMetrics implementation

// RecordZoneTransition discards the zone transition counter.
func (n *NopMetrics) RecordZoneTransition(_ /* direction */ string) {
	// No-op
}

// RecordZonesOn discards the energized zone gauge.
func (n *NopMetrics) RecordZonesOn(_ /* count */ int) {
	// No-op
}

// RecordUsageWatts discards the estimated draw gauge.
func (n *NopMetrics) RecordUsageWatts(_ /* watts */ float64) {
	// No-op
}

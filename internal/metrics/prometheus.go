package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric families are registered lazily on first use; duplicate registration
// is surfaced through MustRegister at that point rather than at construction.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Allocation metrics
	allocOutcomes *prometheus.CounterVec
	batchDuration prometheus.Histogram
	occupiedSeats prometheus.Gauge

	// Energy metrics
	zoneTransitions *prometheus.CounterVec
	zonesOn         prometheus.Gauge
	usageWatts      prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "seatalloc" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "seatalloc"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.allocOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "outcomes_total",
			Help:      "Total allocation outcomes (assigned, already_assigned, exhausted, invalid_event).",
		}, []string{"outcome"})

		p.batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "batch_duration_seconds",
			Help:      "Time taken to process one access-event batch.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		})

		p.occupiedSeats = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "occupied_seats",
			Help:      "Current number of occupied seats.",
		})

		p.zoneTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "energy",
			Name:      "zone_transitions_total",
			Help:      "Total zone power transitions by direction (on, off).",
		}, []string{"direction"})

		p.zonesOn = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "energy",
			Name:      "zones_on",
			Help:      "Current number of energized zones.",
		})

		p.usageWatts = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "energy",
			Name:      "usage_watts",
			Help:      "Estimated total device draw in watts.",
		})

		p.reg.MustRegister(p.allocOutcomes)
		p.reg.MustRegister(p.batchDuration)
		p.reg.MustRegister(p.occupiedSeats)
		p.reg.MustRegister(p.zoneTransitions)
		p.reg.MustRegister(p.zonesOn)
		p.reg.MustRegister(p.usageWatts)
	})
}

// RecordAllocation increments the outcome counter.
func (p *PrometheusCollector) RecordAllocation(outcome string) {
	p.ensureRegistered()
	p.allocOutcomes.WithLabelValues(outcome).Inc()
}

// RecordBatchDuration observes the batch processing duration.
func (p *PrometheusCollector) RecordBatchDuration(seconds float64) {
	p.ensureRegistered()
	p.batchDuration.Observe(seconds)
}

// RecordOccupiedSeats sets the occupied seat gauge.
func (p *PrometheusCollector) RecordOccupiedSeats(count int) {
	p.ensureRegistered()
	p.occupiedSeats.Set(float64(count))
}

// RecordZoneTransition increments the transition counter for a direction.
func (p *PrometheusCollector) RecordZoneTransition(direction string) {
	p.ensureRegistered()
	p.zoneTransitions.WithLabelValues(direction).Inc()
}

// RecordZonesOn sets the energized zone gauge.
func (p *PrometheusCollector) RecordZonesOn(count int) {
	p.ensureRegistered()
	p.zonesOn.Set(float64(count))
}

// RecordUsageWatts sets the estimated draw gauge.
func (p *PrometheusCollector) RecordUsageWatts(watts float64) {
	p.ensureRegistered()
	p.usageWatts.Set(watts)
}

package seatalloc

import "time"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	hooks      *Hooks
	metrics    MetricsCollector
	logger     Logger
	dispatcher Dispatcher
	notifiers  []Notifier
	clock      func() time.Time
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &seatalloc.Hooks{
//	    OnAssignment: func(ctx context.Context, result seatalloc.AssignmentResult) error {
//	        return record(result)
//	    },
//	}
//	eng, err := seatalloc.NewEngine(&cfg, topo, dir, src, strat, seatalloc.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "seatalloc")
//	eng, err := seatalloc.NewEngine(&cfg, topo, dir, src, strat, seatalloc.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithDispatcher sets the device command dispatcher that receives zone
// POWER_ON/POWER_OFF commands after each reconciliation. Without a
// dispatcher, transitions are tracked in the power-state model only.
//
// Parameters:
//   - dispatcher: Dispatcher implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithDispatcher(dispatcher Dispatcher) Option {
	return func(o *engineOptions) {
		o.dispatcher = dispatcher
	}
}

// WithNotifiers appends assignment notifiers. Each notifier is invoked once
// per new assignment; failures are logged and never undo the assignment.
//
// Parameters:
//   - notifiers: Notifier implementations (e.g., notify.NewEmail, notify.NewSMS)
//
// Returns:
//   - Option: Functional option for NewEngine
func WithNotifiers(notifiers ...Notifier) Option {
	return func(o *engineOptions) {
		o.notifiers = append(o.notifiers, notifiers...)
	}
}

// WithClock overrides the engine clock used for assignment timestamps.
// Intended for deterministic tests.
//
// Parameters:
//   - clock: Replacement for time.Now
//
// Returns:
//   - Option: Functional option for NewEngine
func WithClock(clock func() time.Time) Option {
	return func(o *engineOptions) {
		o.clock = clock
	}
}

package seatalloc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/allocation"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/batching"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/energy"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/hooks"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/locality"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/logging"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/metrics"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/internal/occupancy"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Engine consumes access events, allocates seats and reconciles zone power.
//
// Engine is the main entry point of the library. It handles:
//   - Batch collection and in-batch ordering of access events
//   - Seat placement via the configured SeatStrategy
//   - Occupancy bookkeeping (one seat per employee, department caps)
//   - Per-zone power reconciliation and device command dispatch
//   - Assignment notifications and device usage accounting
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Batches are processed strictly one at a time (single writer)
//   - Snapshot accessors return copies, safe to read during processing
//
// Lifecycle:
//   - Create with NewEngine()
//   - Call Run() to drain the configured event source, or Process() to
//     push events directly
//   - Use hooks to react to assignments and zone transitions
type Engine struct {
	cfg       Config
	inventory types.Inventory
	directory types.Directory
	source    types.EventSource

	// Optional dependencies
	strategy   types.SeatStrategy
	hooks      *Hooks
	metrics    MetricsCollector
	logger     Logger
	dispatcher Dispatcher
	notifiers  []Notifier
	clock      func() time.Time

	// Internal components
	store     *occupancy.Store
	cache     *locality.Cache
	allocator *allocation.Allocator
	optimizer *energy.Optimizer
	batcher   *batching.Batcher

	// Lifecycle management
	running atomic.Bool
	mu      sync.Mutex // serializes batch processing
	wg      sync.WaitGroup
}

// NewEngine creates a new Engine instance with the provided configuration.
//
// Returns a concrete *Engine struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// Parameters:
//   - cfg: Runtime configuration; missing values are filled with defaults
//   - inventory: Static seat catalog (topology.Topology is the standard implementation)
//   - directory: Employee profile lookup
//   - source: Access event source drained by Run
//   - strategy: Candidate ranking strategy (recommended: strategy.NewLocalityBeam())
//   - opts: Optional configuration (hooks, metrics, logger, dispatcher, notifiers)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if configuration or dependencies are invalid
//
// Example:
//
//	cfg := seatalloc.DefaultConfig()
//	eng, err := seatalloc.NewEngine(&cfg, topo, dir, src, strategy.NewLocalityBeam())
func NewEngine(
	cfg *Config,
	inventory Inventory,
	directory Directory,
	source EventSource,
	strategy SeatStrategy,
	opts ...Option,
) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if inventory == nil {
		return nil, ErrInventoryRequired
	}
	if directory == nil {
		return nil, ErrDirectoryRequired
	}
	if source == nil {
		return nil, ErrSourceRequired
	}
	if strategy == nil {
		return nil, ErrStrategyRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	hooksInstance := options.hooks
	if hooksInstance == nil {
		nopHooks := hooks.NewNop()
		hooksInstance = &nopHooks
	}

	clock := options.clock
	if clock == nil {
		clock = time.Now
	}

	store := occupancy.New(cfg.ZoneDepartmentCap)
	cache := locality.New()

	e := &Engine{
		cfg:        *cfg,
		inventory:  inventory,
		directory:  directory,
		source:     source,
		strategy:   strategy,
		hooks:      hooksInstance,
		metrics:    metricsCollector,
		logger:     loggerInstance,
		dispatcher: options.dispatcher,
		notifiers:  options.notifiers,
		clock:      clock,
		store:      store,
		cache:      cache,
		allocator:  allocation.New(inventory, store, cache, strategy, loggerInstance, clock),
		optimizer: energy.New(inventory.Zones(), energy.Config{
			SeatsPerLightCircuit: cfg.Energy.SeatsPerLightCircuit,
			SeatsPerACVent:       cfg.Energy.SeatsPerACVent,
			Rates: energy.Rates{
				LightWatts:   cfg.Energy.LightWatts,
				RouterWatts:  cfg.Energy.RouterWatts,
				MonitorWatts: cfg.Energy.MonitorWatts,
				DesktopWatts: cfg.Energy.DesktopWatts,
				VentWatts:    cfg.Energy.VentWatts,
			},
		}),
	}
	e.batcher = batching.New(source, cfg.BatchSize, e.resolve)

	return e, nil
}

// resolve maps an employee ID to (department, team) for in-batch ordering.
// Unknown employees resolve to empty keys so invalid events sort first and
// are reported before any placement of the batch.
func (e *Engine) resolve(employeeID string) (string, string, bool) {
	emp, err := e.directory.Lookup(employeeID)
	if err != nil {
		return "", "", false
	}

	dept, err := e.inventory.DepartmentOf(emp.Team)
	if err != nil {
		return "", "", false
	}

	return dept, emp.Team, true
}

// Run drains the configured event source, processing one ordered batch at a
// time until the source ends or the context is cancelled.
//
// Run may be called at most once at a time per engine; a second concurrent
// call returns ErrAlreadyStarted. After the source ends, Run waits for all
// asynchronous hooks to finish.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: nil on clean drain, ctx.Err() on cancellation, or the first
//     batch-fatal consistency fault
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer e.running.Store(false)
	defer e.wg.Wait()

	for {
		batch, err := e.batcher.Next(ctx)
		if err != nil {
			if errors.Is(err, types.ErrEndOfStream) {
				return nil
			}

			return err
		}

		if _, err := e.processBatch(ctx, batch); err != nil {
			return err
		}
	}
}

// Process pushes events through the engine directly, bypassing the
// configured source. Events are split into ordered batches of
// Config.BatchSize; sequence numbers are assigned per call, starting at 1.
//
// Process waits for all asynchronous hooks triggered by the call before
// returning, so results and hook effects are fully observable.
//
// Parameters:
//   - ctx: Context for cancellation
//   - events: Access events in arrival order
//
// Returns:
//   - []BatchResult: One result per processed batch
//   - error: ctx.Err() on cancellation or the first batch-fatal fault
func (e *Engine) Process(ctx context.Context, events []AccessEvent) ([]BatchResult, error) {
	defer e.wg.Wait()

	batcher := batching.New(&sliceSource{events: events}, e.cfg.BatchSize, e.resolve)

	var results []BatchResult
	for {
		batch, err := batcher.Next(ctx)
		if err != nil {
			if errors.Is(err, types.ErrEndOfStream) {
				return results, nil
			}

			return results, err
		}

		res, err := e.processBatch(ctx, batch)
		if err != nil {
			return results, err
		}

		results = append(results, res)
	}
}

// sliceSource adapts a fixed event slice to the EventSource interface.
type sliceSource struct {
	events []AccessEvent
	pos    int
}

func (s *sliceSource) Next(ctx context.Context) (AccessEvent, error) {
	if err := ctx.Err(); err != nil {
		return AccessEvent{}, err
	}
	if s.pos >= len(s.events) {
		return AccessEvent{}, types.ErrEndOfStream
	}

	ev := s.events[s.pos]
	s.pos++

	return ev, nil
}

// processBatch applies one ordered batch under the engine's single-writer
// lock: allocate every event, reconcile zone power once, refresh usage and
// fan out side effects.
func (e *Engine) processBatch(ctx context.Context, batch []AccessEvent) (BatchResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	results := make([]AssignmentResult, 0, len(batch))
	var affected []ZoneKey

	for _, ev := range batch {
		res, err := e.allocate(ev)
		if err != nil {
			// Consistency fault: the batch is aborted, occupancy reflects
			// only the events committed before the fault.
			return BatchResult{}, fmt.Errorf("batch aborted at seq %d: %w", ev.Seq, err)
		}

		results = append(results, res)
		e.metrics.RecordAllocation(res.Outcome.String())

		if res.Outcome == OutcomeAssigned {
			affected = append(affected, res.Assignment.Key)
			e.notifyAssignment(ctx, ev.EmployeeID, *res.Assignment)
		}

		e.runAssignmentHook(ctx, res)
	}

	transitions := e.optimizer.Reconcile(e.store.ZoneLoad, affected)
	e.dispatchTransitions(ctx, transitions)

	usage := e.optimizer.Usage(e.store.ZoneLoad, e.inventory.ZoneCapacity)

	e.metrics.RecordBatchDuration(time.Since(start).Seconds())
	e.metrics.RecordOccupiedSeats(e.store.OccupiedSeats())
	e.metrics.RecordZonesOn(e.optimizer.ZonesOn())
	e.metrics.RecordUsageWatts(usage.TotalWatts)

	if len(transitions) > 0 {
		e.runTransitionHook(ctx, transitions)
	}

	return BatchResult{Results: results, Transitions: transitions, Usage: usage}, nil
}

// allocate resolves one event against the directory and topology and
// delegates placement to the allocator. Resolution failures are reported as
// InvalidEvent results, never as errors.
func (e *Engine) allocate(ev AccessEvent) (AssignmentResult, error) {
	emp, err := e.directory.Lookup(ev.EmployeeID)
	if err != nil {
		e.logger.Warn("rejecting event for unknown employee", "seq", ev.Seq, "employee", ev.EmployeeID)

		return AssignmentResult{
			Seq:        ev.Seq,
			EmployeeID: ev.EmployeeID,
			Outcome:    OutcomeInvalidEvent,
			Reason:     "unknown employee",
		}, nil
	}

	department, err := e.inventory.DepartmentOf(emp.Team)
	if err != nil {
		e.logger.Warn("rejecting event for unmapped team", "seq", ev.Seq, "employee", ev.EmployeeID, "team", emp.Team)

		return AssignmentResult{
			Seq:        ev.Seq,
			EmployeeID: ev.EmployeeID,
			Outcome:    OutcomeInvalidEvent,
			Reason:     fmt.Sprintf("team %q has no department", emp.Team),
		}, nil
	}

	return e.allocator.Allocate(emp, department, ev.Seq)
}

// notifyAssignment delivers the assignment to every configured notifier.
// Failures are logged and reported through OnError; the assignment stands.
func (e *Engine) notifyAssignment(ctx context.Context, employeeID string, a Assignment) {
	if len(e.notifiers) == 0 {
		return
	}

	emp, err := e.directory.Lookup(employeeID)
	if err != nil {
		return
	}

	for _, n := range e.notifiers {
		notifyCtx, cancel := context.WithTimeout(ctx, e.cfg.NotifyTimeout)
		err := n.NotifyAssignment(notifyCtx, emp, a)
		cancel()

		if err != nil {
			e.logger.Warn("assignment notification failed", "employee", employeeID, "seat", a.SeatID, "error", err)
			e.runErrorHook(ctx, fmt.Errorf("notify assignment of %s: %w", employeeID, err))
		}
	}
}

// dispatchTransitions sends one device command per zone transition.
// Failures are logged and reported through OnError; the power-state model
// remains authoritative.
func (e *Engine) dispatchTransitions(ctx context.Context, transitions []ZoneTransition) {
	if e.dispatcher == nil {
		return
	}

	for _, tr := range transitions {
		cmd := DeviceCommand{Key: tr.Key, Command: CommandPowerOff, Reason: "zone emptied"}
		if tr.To == PowerOn {
			cmd.Command = CommandPowerOn
			cmd.Reason = "zone occupied"
		}

		dispatchCtx, cancel := context.WithTimeout(ctx, e.cfg.DispatchTimeout)
		err := e.dispatcher.Dispatch(dispatchCtx, cmd)
		cancel()

		if err != nil {
			e.logger.Warn("device command dispatch failed", "zone", tr.Key.String(), "command", cmd.Command, "error", err)
			e.runErrorHook(ctx, fmt.Errorf("dispatch %s to %s: %w", cmd.Command, tr.Key, err))
		}

		direction := "off"
		if tr.To == PowerOn {
			direction = "on"
		}
		e.metrics.RecordZoneTransition(direction)
	}
}

// Vacate releases the employee's seat and reconciles the zone's power state.
//
// Parameters:
//   - ctx: Context for device command dispatch
//   - employeeID: The employee to vacate
//
// Returns:
//   - Assignment: The released assignment
//   - []ZoneTransition: Power transitions caused by the vacate (at most one)
//   - error: ErrNotAssigned if the employee holds no seat
func (e *Engine) Vacate(ctx context.Context, employeeID string) (Assignment, []ZoneTransition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	released, ok := e.store.Vacate(employeeID)
	if !ok {
		return Assignment{}, nil, fmt.Errorf("vacate %s: %w", employeeID, ErrNotAssigned)
	}

	e.logger.Info("seat vacated", "employee", employeeID, "seat", released.SeatID, "zone", released.Key.String())

	transitions := e.optimizer.Reconcile(e.store.ZoneLoad, []ZoneKey{released.Key})
	e.dispatchTransitions(ctx, transitions)

	usage := e.optimizer.Usage(e.store.ZoneLoad, e.inventory.ZoneCapacity)
	e.metrics.RecordOccupiedSeats(e.store.OccupiedSeats())
	e.metrics.RecordZonesOn(e.optimizer.ZonesOn())
	e.metrics.RecordUsageWatts(usage.TotalWatts)

	if len(transitions) > 0 {
		e.runTransitionHook(ctx, transitions)
	}

	return released, transitions, nil
}

// AssignmentOf returns the employee's current assignment, if any.
func (e *Engine) AssignmentOf(employeeID string) (Assignment, bool) {
	return e.store.AssignmentOf(employeeID)
}

// SeatOwner returns the occupant of a seat, if any.
func (e *Engine) SeatOwner(seatID string) (string, bool) {
	return e.store.OwnerOf(seatID)
}

// FreeSeats returns all currently unoccupied seats, ordered by seat ID.
func (e *Engine) FreeSeats() []Seat {
	var free []Seat
	for _, seat := range e.inventory.Seats() {
		if e.store.IsFree(seat.ID) {
			free = append(free, seat)
		}
	}

	return free
}

// OccupiedSeats returns the number of seats currently assigned.
func (e *Engine) OccupiedSeats() int {
	return e.store.OccupiedSeats()
}

// PowerState returns the current power state of a zone.
func (e *Engine) PowerState(key ZoneKey) PowerState {
	return e.optimizer.State(key)
}

// PowerStates returns a copy of the per-zone power states.
func (e *Engine) PowerStates() map[ZoneKey]PowerState {
	return e.optimizer.States()
}

// Usage returns the current device usage summary across all zones.
func (e *Engine) Usage() UsageSummary {
	return e.optimizer.Usage(e.store.ZoneLoad, e.inventory.ZoneCapacity)
}

// runAssignmentHook invokes OnAssignment asynchronously.
func (e *Engine) runAssignmentHook(ctx context.Context, result AssignmentResult) {
	if e.hooks.OnAssignment == nil {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.hooks.OnAssignment(ctx, result); err != nil {
			e.logger.Warn("OnAssignment hook failed", "seq", result.Seq, "error", err)
		}
	}()
}

// runTransitionHook invokes OnZoneTransition asynchronously.
func (e *Engine) runTransitionHook(ctx context.Context, transitions []ZoneTransition) {
	if e.hooks.OnZoneTransition == nil {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.hooks.OnZoneTransition(ctx, transitions); err != nil {
			e.logger.Warn("OnZoneTransition hook failed", "error", err)
		}
	}()
}

// runErrorHook invokes OnError asynchronously.
func (e *Engine) runErrorHook(ctx context.Context, hookErr error) {
	if e.hooks.OnError == nil {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.hooks.OnError(ctx, hookErr); err != nil {
			e.logger.Warn("OnError hook failed", "error", err)
		}
	}()
}

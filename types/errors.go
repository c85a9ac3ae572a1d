package types

import "errors"

// Sentinel errors for the seat allocation library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap external errors with context using
// fmt.Errorf("...: %w", err).

// Engine errors - Public API errors returned by the Engine facade.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInventoryRequired is returned when the seat inventory is nil.
	ErrInventoryRequired = errors.New("seat inventory is required")

	// ErrDirectoryRequired is returned when the employee directory is nil.
	ErrDirectoryRequired = errors.New("employee directory is required")

	// ErrSourceRequired is returned when the access event source is nil.
	ErrSourceRequired = errors.New("access event source is required")

	// ErrStrategyRequired is returned when the seat strategy is nil.
	ErrStrategyRequired = errors.New("seat strategy is required")

	// ErrAlreadyStarted is returned when Run is called on an engine that
	// is already consuming its event source.
	ErrAlreadyStarted = errors.New("engine already started")
)

// Allocation errors - outcomes and faults of the seat allocator.
var (
	// ErrExhausted is returned when no free seat satisfies any candidate
	// set, even after relaxing the locality lock. Reported, not fatal.
	ErrExhausted = errors.New("no free seat available")

	// ErrAlreadyAssigned is returned when the employee already holds a
	// seat. Idempotent and informational.
	ErrAlreadyAssigned = errors.New("employee already assigned")

	// ErrNotAssigned is returned by Vacate when the employee holds no seat.
	ErrNotAssigned = errors.New("employee holds no assignment")

	// ErrUnknownEmployee is returned when the directory has no profile for
	// the employee referenced by an access event.
	ErrUnknownEmployee = errors.New("unknown employee")

	// ErrUnknownTeam is returned when a team has no department mapping.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrUnknownSeat is returned when a seat ID does not exist in the
	// topology.
	ErrUnknownSeat = errors.New("unknown seat")

	// ErrSeatOccupied is returned when committing an assignment to a seat
	// that is already held. The allocator only offers free seats, so this
	// indicates an internal consistency fault and is fatal to the batch.
	ErrSeatOccupied = errors.New("seat already occupied")

	// ErrCapacityInvariant is returned when a commit would exceed the zone
	// department cap. This is a programming-error signal, never a normal
	// outcome, and aborts the current batch.
	ErrCapacityInvariant = errors.New("zone department cap violated")
)

// Strategy errors.
var (
	// ErrNoCandidates is returned when a strategy is invoked with an empty
	// candidate set.
	ErrNoCandidates = errors.New("no candidate seats")
)

// Stream errors.
var (
	// ErrEndOfStream is returned by an EventSource when the stream is
	// exhausted. It signals orderly completion, not a failure.
	ErrEndOfStream = errors.New("end of event stream")
)

package seatalloc

import "github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"

// Sentinel errors re-exported from the types package so callers can match
// engine failures with errors.Is without importing types directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInventoryRequired is returned when the seat inventory is nil.
	ErrInventoryRequired = types.ErrInventoryRequired

	// ErrDirectoryRequired is returned when the employee directory is nil.
	ErrDirectoryRequired = types.ErrDirectoryRequired

	// ErrSourceRequired is returned when the access event source is nil.
	ErrSourceRequired = types.ErrSourceRequired

	// ErrStrategyRequired is returned when the seat strategy is nil.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrAlreadyStarted is returned when Run is called on a running engine.
	ErrAlreadyStarted = types.ErrAlreadyStarted

	// ErrExhausted marks an event that found no hostable free seat.
	ErrExhausted = types.ErrExhausted

	// ErrAlreadyAssigned marks a repeated badge event for a seated employee.
	ErrAlreadyAssigned = types.ErrAlreadyAssigned

	// ErrNotAssigned is returned by Vacate when the employee holds no seat.
	ErrNotAssigned = types.ErrNotAssigned

	// ErrUnknownEmployee is returned by directories for unknown IDs.
	ErrUnknownEmployee = types.ErrUnknownEmployee

	// ErrUnknownTeam is returned when a team has no department mapping.
	ErrUnknownTeam = types.ErrUnknownTeam

	// ErrUnknownSeat is returned when a seat ID is not in the inventory.
	ErrUnknownSeat = types.ErrUnknownSeat

	// ErrSeatOccupied is a batch-fatal double-booking fault.
	ErrSeatOccupied = types.ErrSeatOccupied

	// ErrCapacityInvariant is a batch-fatal department-cap fault.
	ErrCapacityInvariant = types.ErrCapacityInvariant

	// ErrEndOfStream is returned by event sources when exhausted.
	ErrEndOfStream = types.ErrEndOfStream
)

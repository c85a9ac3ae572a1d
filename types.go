package seatalloc

import "github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `seatalloc`
// package, while still providing a convenient `seatalloc.Assignment`,
// `seatalloc.Logger`, etc. for users.
type (
	ZoneKey          = types.ZoneKey
	Seat             = types.Seat
	Employee         = types.Employee
	AccessEvent      = types.AccessEvent
	Assignment       = types.Assignment
	Outcome          = types.Outcome
	AssignmentResult = types.AssignmentResult
	BatchResult      = types.BatchResult
	PowerState       = types.PowerState
	ZoneTransition   = types.ZoneTransition
	DeviceCommand    = types.DeviceCommand
	ZoneUsage        = types.ZoneUsage
	UsageSummary     = types.UsageSummary
	Placement        = types.Placement
	Candidate        = types.Candidate
)

// Re-export interfaces from the internal types package for convenience.
type (
	EventSource      = types.EventSource
	Directory        = types.Directory
	Inventory        = types.Inventory
	Dispatcher       = types.Dispatcher
	Notifier         = types.Notifier
	SeatStrategy     = types.SeatStrategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Outcome constants from the internal types package.
const (
	OutcomeAssigned        = types.OutcomeAssigned
	OutcomeAlreadyAssigned = types.OutcomeAlreadyAssigned
	OutcomeExhausted       = types.OutcomeExhausted
	OutcomeInvalidEvent    = types.OutcomeInvalidEvent
)

// Re-export PowerState constants from the internal types package.
const (
	PowerOff = types.PowerOff
	PowerOn  = types.PowerOn
)

// Re-export device command verbs from the internal types package.
const (
	CommandPowerOn  = types.CommandPowerOn
	CommandPowerOff = types.CommandPowerOff
)

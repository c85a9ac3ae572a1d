package types

import "time"

// Assignment binds an employee to a seat. An employee holds at most one
// assignment at a time, and a seat holds at most one assignment at a time;
// the occupancy store enforces both.
type Assignment struct {
	// EmployeeID is the assigned employee.
	EmployeeID string `json:"employeeId"`

	// SeatID is the assigned seat.
	SeatID string `json:"seatId"`

	// Key locates the seat's zone.
	Key ZoneKey `json:"key"`

	// Department is the employee's department, resolved from the team.
	Department string `json:"department"`

	// Team is the employee's team.
	Team string `json:"team"`

	// AssignedAt is the placement timestamp.
	AssignedAt time.Time `json:"assignedAt"`
}

// Outcome classifies the result of allocating a single access event.
type Outcome int32

const (
	// OutcomeAssigned means a new assignment was created.
	OutcomeAssigned Outcome = iota

	// OutcomeAlreadyAssigned means the employee already held a seat; the
	// existing assignment is returned and nothing changes (idempotent).
	OutcomeAlreadyAssigned

	// OutcomeExhausted means no free seat satisfied any candidate set,
	// even after relaxation. The event is reported as unplaceable.
	OutcomeExhausted

	// OutcomeInvalidEvent means the employee or team is unknown to the
	// directory/topology. The event is reported and skipped.
	OutcomeInvalidEvent
)

// String returns the human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAssigned:
		return "assigned"
	case OutcomeAlreadyAssigned:
		return "already_assigned"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeInvalidEvent:
		return "invalid_event"
	default:
		return "unknown"
	}
}

// AssignmentResult is the per-event allocation report consumed by
// logging/notification/presentation collaborators.
type AssignmentResult struct {
	// Seq is the arrival sequence number of the originating event.
	Seq uint64 `json:"seq"`

	// EmployeeID is the employee from the originating event.
	EmployeeID string `json:"employeeId"`

	// Outcome classifies the result.
	Outcome Outcome `json:"outcome"`

	// Assignment is set for OutcomeAssigned and OutcomeAlreadyAssigned.
	Assignment *Assignment `json:"assignment,omitempty"`

	// Reason is a human-readable explanation of the decision
	// (e.g., which candidate set the seat was chosen from).
	Reason string `json:"reason"`
}

// BatchResult is the outcome of processing one ordered batch: the per-event
// results in arrival order, the zone power transitions the batch caused, and
// the refreshed device usage summary.
type BatchResult struct {
	Results     []AssignmentResult `json:"results"`
	Transitions []ZoneTransition   `json:"transitions"`
	Usage       UsageSummary       `json:"usage"`
}

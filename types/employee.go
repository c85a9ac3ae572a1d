package types

import "time"

// Employee is a directory profile. The department is intentionally not part
// of the profile: every team maps to exactly one department, and the mapping
// is owned by the topology so the invariant cannot drift per employee.
type Employee struct {
	// ID uniquely identifies the employee (e.g., "E0042").
	ID string `json:"id"`

	// CardID is the building access card presented at the entrance.
	CardID string `json:"cardId"`

	// Name is the display name used in notifications.
	Name string `json:"name"`

	// Email receives seat assignment notifications.
	Email string `json:"email"`

	// Phone receives seat assignment SMS notifications.
	Phone string `json:"phone"`

	// Team is the employee's team identifier.
	Team string `json:"team"`
}

// AccessEvent is a building entry observed by the access-control stream.
// Events are ephemeral and consumed exactly once.
type AccessEvent struct {
	// Seq is the arrival sequence number assigned by the batcher. It is
	// used for in-batch ordering and for reporting results in arrival
	// order; sources may leave it zero.
	Seq uint64 `json:"seq"`

	// EmployeeID identifies the employee who entered.
	EmployeeID string `json:"employeeId"`

	// CardID is the access card used for entry.
	CardID string `json:"cardId"`

	// EnteredAt is the entry timestamp.
	EnteredAt time.Time `json:"enteredAt"`
}

package types

import "context"

// Directory resolves employee profiles for access events.
//
// The directory is an external collaborator: the engine only reads from it
// and treats lookup failures as InvalidEvent outcomes.
type Directory interface {
	// Lookup returns the profile for the given employee ID.
	//
	// Returns:
	//   - Employee: The employee profile
	//   - error: ErrUnknownEmployee if no profile exists
	Lookup(employeeID string) (Employee, error)
}

// Inventory is the static seat catalog: seat existence, zone membership and
// the team→department mapping. It carries no occupancy; free/occupied state
// is owned by the engine's occupancy store.
//
// topology.Topology is the standard implementation.
type Inventory interface {
	// Seat returns the seat with the given ID.
	Seat(seatID string) (Seat, bool)

	// Seats returns all seats, ordered by seat ID.
	Seats() []Seat

	// SeatsInZone returns the seats of one zone, ordered by seat number.
	SeatsInZone(key ZoneKey) []Seat

	// Zones returns all zone keys in canonical order.
	Zones() []ZoneKey

	// ZoneCapacity returns the seat count of a zone (0 for unknown zones).
	ZoneCapacity(key ZoneKey) int

	// DepartmentOf resolves a team to its department.
	//
	// Returns:
	//   - string: The department identifier
	//   - error: ErrUnknownTeam if the team has no mapping
	DepartmentOf(team string) (string, error)
}

// Dispatcher delivers zone power commands to the IoT collaborator.
//
// Dispatch failures are reported through logging and the OnError hook but
// never abort a batch; the power-state model remains authoritative.
type Dispatcher interface {
	// Dispatch sends one device command.
	Dispatch(ctx context.Context, cmd DeviceCommand) error
}

// Notifier informs an employee about a new seat assignment. Notifiers run
// after commit; failures are logged and never undo the assignment.
type Notifier interface {
	// NotifyAssignment sends an assignment notification.
	NotifyAssignment(ctx context.Context, employee Employee, assignment Assignment) error
}

package testing

import (
	"fmt"
	"testing"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/directory"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/topology"
	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// FixtureTeams is the team → department mapping used by OfficeFixture.
var FixtureTeams = map[string]string{
	"Platform":  "Engineering",
	"Data":      "Engineering",
	"Mobile":    "Engineering",
	"Accounts":  "Sales",
	"PeopleOps": "HR",
	"Audit":     "Finance",
}

// OfficeFixture builds the canonical office used across tests: two
// buildings, two floors each, two zones per floor and five seats per zone
// (40 seats total), plus a twelve-person roster spread over four
// departments.
//
// Parameters:
//   - t: The test; fixture construction failures fail the test
//
// Returns:
//   - *topology.Topology: The office topology
//   - *directory.Static: The employee directory
func OfficeFixture(t *testing.T) (*topology.Topology, *directory.Static) {
	t.Helper()

	var seats []types.Seat
	for _, b := range []string{"B1", "B2"} {
		for _, f := range []string{"F1", "F2"} {
			for _, z := range []string{"A", "B"} {
				for n := 1; n <= 5; n++ {
					seats = append(seats, types.Seat{
						ID:     fmt.Sprintf("S-%s-%s-%s-%03d", b, f, z, n),
						Key:    types.ZoneKey{Building: b, Floor: f, Zone: z},
						Number: n,
					})
				}
			}
		}
	}

	topo, err := topology.New(seats, FixtureTeams)
	if err != nil {
		t.Fatalf("build fixture topology: %v", err)
	}

	dir := directory.NewStatic(FixtureRoster())

	return topo, dir
}

// FixtureRoster returns the employee roster used by OfficeFixture.
func FixtureRoster() []types.Employee {
	roster := []struct {
		id, name, team string
	}{
		{"E001", "Asha Rao", "Platform"},
		{"E002", "Bo Lindqvist", "Platform"},
		{"E003", "Chen Wei", "Platform"},
		{"E004", "Dara Okafor", "Data"},
		{"E005", "Elena Petrova", "Data"},
		{"E006", "Farid Karimi", "Mobile"},
		{"E007", "Grace Mbeki", "Accounts"},
		{"E008", "Hugo Marques", "Accounts"},
		{"E009", "Ines Duarte", "PeopleOps"},
		{"E010", "Jonas Berg", "PeopleOps"},
		{"E011", "Kavya Nair", "Audit"},
		{"E012", "Liam Doyle", "Audit"},
	}

	employees := make([]types.Employee, 0, len(roster))
	for i, r := range roster {
		employees = append(employees, types.Employee{
			ID:     r.id,
			CardID: "CARD-" + r.id,
			Name:   r.name,
			Email:  fmt.Sprintf("%s@example.com", r.id),
			Phone:  fmt.Sprintf("+1555010%02d", i),
			Team:   r.team,
		})
	}

	return employees
}

// Events builds access events for the given employee IDs in order.
// Sequence numbers are left zero; the engine's batcher assigns them.
func Events(employeeIDs ...string) []types.AccessEvent {
	events := make([]types.AccessEvent, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		events = append(events, types.AccessEvent{EmployeeID: id, CardID: "CARD-" + id})
	}

	return events
}

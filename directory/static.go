// Package directory provides employee directory implementations.
//
// Directories resolve employee IDs from badge events to full profiles.
// Custom directories (LDAP, HR systems) can be implemented by satisfying
// the types.Directory interface.
package directory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Static implements an in-memory employee directory.
type Static struct {
	mu     sync.RWMutex
	byID   map[string]types.Employee
	byCard map[string]string
}

var _ types.Directory = (*Static)(nil)

// NewStatic creates an in-memory directory from a fixed roster.
//
// Parameters:
//   - employees: The roster; later entries overwrite earlier duplicates
//
// Returns:
//   - *Static: Initialized directory
//
// Example:
//
//	dir := directory.NewStatic([]types.Employee{
//	    {ID: "E001", CardID: "CARD-E001", Name: "Asha Rao", Team: "Platform"},
//	})
func NewStatic(employees []types.Employee) *Static {
	d := &Static{
		byID:   make(map[string]types.Employee, len(employees)),
		byCard: make(map[string]string, len(employees)),
	}
	for _, emp := range employees {
		d.byID[emp.ID] = emp
		if emp.CardID != "" {
			d.byCard[emp.CardID] = emp.ID
		}
	}

	return d
}

// Add inserts or replaces an employee profile.
func (d *Static) Add(emp types.Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byID[emp.ID] = emp
	if emp.CardID != "" {
		d.byCard[emp.CardID] = emp.ID
	}
}

// Lookup returns the profile for the given employee ID.
//
// Returns:
//   - types.Employee: The employee profile
//   - error: types.ErrUnknownEmployee if no profile exists
func (d *Static) Lookup(employeeID string) (types.Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	emp, ok := d.byID[employeeID]
	if !ok {
		return types.Employee{}, fmt.Errorf("lookup %s: %w", employeeID, types.ErrUnknownEmployee)
	}

	return emp, nil
}

// LookupByCard resolves a badge card to the employee carrying it.
//
// Returns:
//   - types.Employee: The employee profile
//   - error: types.ErrUnknownEmployee if the card is not registered
func (d *Static) LookupByCard(cardID string) (types.Employee, error) {
	d.mu.RLock()
	id, ok := d.byCard[cardID]
	d.mu.RUnlock()

	if !ok {
		return types.Employee{}, fmt.Errorf("lookup card %s: %w", cardID, types.ErrUnknownEmployee)
	}

	return d.Lookup(id)
}

// Employees returns the roster ordered by employee ID.
func (d *Static) Employees() []types.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]types.Employee, 0, len(d.byID))
	for _, emp := range d.byID {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

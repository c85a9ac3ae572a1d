package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Email implements a notifier that delivers assignment emails through a
// SendFunc. Employees without an email address are skipped silently.
type Email struct {
	send SendFunc
}

var _ types.Notifier = (*Email)(nil)

// NewEmail creates an email notifier.
//
// Parameters:
//   - send: Transport function invoked with (recipient email, message body)
//
// Returns:
//   - *Email: Initialized notifier
//   - error: If send is nil
func NewEmail(send SendFunc) (*Email, error) {
	if send == nil {
		return nil, errors.New("send function is required")
	}

	return &Email{send: send}, nil
}

// NotifyAssignment renders and sends the assignment email.
func (n *Email) NotifyAssignment(ctx context.Context, employee types.Employee, a types.Assignment) error {
	if employee.Email == "" {
		return nil
	}

	msg := fmt.Sprintf(
		"Hi %s, your seat is %s (building %s, floor %s, zone %s).",
		employee.Name, a.SeatID, a.Key.Building, a.Key.Floor, a.Key.Zone,
	)

	if err := n.send(ctx, employee.Email, msg); err != nil {
		return fmt.Errorf("send assignment email to %s: %w", employee.Email, err)
	}

	return nil
}

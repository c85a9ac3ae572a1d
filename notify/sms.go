package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// SMS implements a notifier that delivers assignment texts through a
// SendFunc. Employees without a phone number are skipped silently.
type SMS struct {
	send SendFunc
}

var _ types.Notifier = (*SMS)(nil)

// NewSMS creates an SMS notifier.
//
// Parameters:
//   - send: Transport function invoked with (recipient phone, message body)
//
// Returns:
//   - *SMS: Initialized notifier
//   - error: If send is nil
func NewSMS(send SendFunc) (*SMS, error) {
	if send == nil {
		return nil, errors.New("send function is required")
	}

	return &SMS{send: send}, nil
}

// NotifyAssignment renders and sends the assignment text message.
func (n *SMS) NotifyAssignment(ctx context.Context, employee types.Employee, a types.Assignment) error {
	if employee.Phone == "" {
		return nil
	}

	msg := fmt.Sprintf("Seat %s assigned: %s", a.SeatID, a.Key.String())

	if err := n.send(ctx, employee.Phone, msg); err != nil {
		return fmt.Errorf("send assignment sms to %s: %w", employee.Phone, err)
	}

	return nil
}

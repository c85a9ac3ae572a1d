package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// DefaultSubjectPrefix is the subject prefix for device commands when none
// is configured. The full subject is <prefix>.<building>.<floor>.<zone>.
const DefaultSubjectPrefix = "iot.power"

// NATS implements a dispatcher that publishes JSON device commands to a
// NATS subject per zone.
//
// Delivery is fire-and-forget core NATS publishing: IoT consumers that need
// replay should bind the subject space into a JetStream stream on their
// side.
type NATS struct {
	conn          *nats.Conn
	subjectPrefix string
}

var _ types.Dispatcher = (*NATS)(nil)

// NewNATS creates a NATS-backed device command dispatcher.
//
// Parameters:
//   - conn: NATS connection
//   - subjectPrefix: Command subject prefix (DefaultSubjectPrefix if empty)
//
// Returns:
//   - *NATS: Initialized dispatcher
//   - error: If the connection is nil
//
// Example:
//
//	disp, err := dispatch.NewNATS(nc, "office.iot.power")
//	eng, err := seatalloc.NewEngine(&cfg, topo, dir, src, strat, seatalloc.WithDispatcher(disp))
func NewNATS(conn *nats.Conn, subjectPrefix string) (*NATS, error) {
	if conn == nil {
		return nil, errors.New("NATS connection is required")
	}
	if subjectPrefix == "" {
		subjectPrefix = DefaultSubjectPrefix
	}

	return &NATS{conn: conn, subjectPrefix: subjectPrefix}, nil
}

// Dispatch publishes the command as JSON to the zone's subject.
//
// Returns:
//   - error: Encoding or publish error
func (d *NATS) Dispatch(_ context.Context, cmd types.DeviceCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encode device command: %w", err)
	}

	subject := fmt.Sprintf("%s.%s.%s.%s", d.subjectPrefix, cmd.Key.Building, cmd.Key.Floor, cmd.Key.Zone)
	if err := d.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish device command to %s: %w", subject, err)
	}

	return nil
}

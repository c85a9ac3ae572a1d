package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

func testAssignment() types.Assignment {
	return types.Assignment{
		EmployeeID: "E1",
		SeatID:     "S-B1-F1-A-001",
		Key:        types.ZoneKey{Building: "B1", Floor: "F1", Zone: "A"},
		Department: "Eng",
		Team:       "Platform",
	}
}

func TestEmail_SendsToAddress(t *testing.T) {
	var gotRecipient, gotMessage string
	n, err := NewEmail(func(_ context.Context, recipient, message string) error {
		gotRecipient = recipient
		gotMessage = message
		return nil
	})
	require.NoError(t, err)

	emp := types.Employee{ID: "E1", Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, n.NotifyAssignment(context.Background(), emp, testAssignment()))
	require.Equal(t, "asha@example.com", gotRecipient)
	require.Contains(t, gotMessage, "S-B1-F1-A-001")
	require.Contains(t, gotMessage, "Asha")
}

func TestEmail_SkipsEmployeesWithoutAddress(t *testing.T) {
	called := false
	n, err := NewEmail(func(_ context.Context, _, _ string) error {
		called = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, n.NotifyAssignment(context.Background(), types.Employee{ID: "E1"}, testAssignment()))
	require.False(t, called)
}

func TestEmail_WrapsSendError(t *testing.T) {
	sendErr := errors.New("smtp down")
	n, err := NewEmail(func(_ context.Context, _, _ string) error { return sendErr })
	require.NoError(t, err)

	emp := types.Employee{ID: "E1", Email: "a@example.com"}
	err = n.NotifyAssignment(context.Background(), emp, testAssignment())
	require.ErrorIs(t, err, sendErr)
}

func TestEmail_RequiresSendFunc(t *testing.T) {
	_, err := NewEmail(nil)
	require.Error(t, err)
}

func TestSMS_SendsToPhone(t *testing.T) {
	var gotRecipient, gotMessage string
	n, err := NewSMS(func(_ context.Context, recipient, message string) error {
		gotRecipient = recipient
		gotMessage = message
		return nil
	})
	require.NoError(t, err)

	emp := types.Employee{ID: "E1", Phone: "+15550100"}
	require.NoError(t, n.NotifyAssignment(context.Background(), emp, testAssignment()))
	require.Equal(t, "+15550100", gotRecipient)
	require.Contains(t, gotMessage, "B1/F1/A")
}

func TestSMS_SkipsEmployeesWithoutPhone(t *testing.T) {
	called := false
	n, err := NewSMS(func(_ context.Context, _, _ string) error {
		called = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, n.NotifyAssignment(context.Background(), types.Employee{ID: "E1"}, testAssignment()))
	require.False(t, called)
}

func TestRecorder_RecordsDeliveries(t *testing.T) {
	rec := NewRecorder()
	emp := types.Employee{ID: "E1"}

	require.NoError(t, rec.NotifyAssignment(context.Background(), emp, testAssignment()))

	sent := rec.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "E1", sent[0].Employee.ID)
	require.Equal(t, "S-B1-F1-A-001", sent[0].Assignment.SeatID)
}

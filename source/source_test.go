package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

func TestStatic_DeliversInOrder(t *testing.T) {
	src := NewStatic([]types.AccessEvent{
		{EmployeeID: "E1"},
		{EmployeeID: "E2"},
	})
	src.Close()

	ctx := context.Background()

	ev, err := src.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, "E1", ev.EmployeeID)

	ev, err = src.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, "E2", ev.EmployeeID)

	_, err = src.Next(ctx)
	require.ErrorIs(t, err, types.ErrEndOfStream)
}

func TestStatic_PublishWakesConsumer(t *testing.T) {
	src := NewStatic(nil)

	got := make(chan types.AccessEvent, 1)
	go func() {
		ev, err := src.Next(context.Background())
		if err == nil {
			got <- ev
		}
	}()

	// Give the consumer time to block.
	time.Sleep(20 * time.Millisecond)
	src.Publish(types.AccessEvent{EmployeeID: "E7"})

	select {
	case ev := <-got:
		require.Equal(t, "E7", ev.EmployeeID)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer was not woken by Publish")
	}
}

func TestStatic_NextHonorsCancellation(t *testing.T) {
	src := NewStatic(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := src.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatic_PublishAfterCloseIgnored(t *testing.T) {
	src := NewStatic(nil)
	src.Close()
	src.Publish(types.AccessEvent{EmployeeID: "E1"})

	_, err := src.Next(context.Background())
	require.ErrorIs(t, err, types.ErrEndOfStream)
}

func TestSynthetic_Deterministic(t *testing.T) {
	roster := []string{"E1", "E2", "E3", "E4"}

	drain := func() []string {
		src := NewSynthetic(roster, 20, 42)
		var ids []string
		for {
			ev, err := src.Next(context.Background())
			if err != nil {
				require.ErrorIs(t, err, types.ErrEndOfStream)
				break
			}
			require.Contains(t, roster, ev.EmployeeID)
			require.Equal(t, "CARD-"+ev.EmployeeID, ev.CardID)
			ids = append(ids, ev.EmployeeID)
		}

		return ids
	}

	first := drain()
	require.Len(t, first, 20)
	require.Equal(t, first, drain())
}

func TestSynthetic_SeedChangesSequence(t *testing.T) {
	roster := []string{"E1", "E2", "E3", "E4", "E5", "E6", "E7", "E8"}

	drain := func(seed uint64) []string {
		src := NewSynthetic(roster, 16, seed)
		var ids []string
		for {
			ev, err := src.Next(context.Background())
			if err != nil {
				break
			}
			ids = append(ids, ev.EmployeeID)
		}

		return ids
	}

	require.NotEqual(t, drain(1), drain(2))
}

func TestSynthetic_EmptyRoster(t *testing.T) {
	src := NewSynthetic(nil, 5, 1)
	_, err := src.Next(context.Background())
	require.ErrorIs(t, err, types.ErrEndOfStream)
}

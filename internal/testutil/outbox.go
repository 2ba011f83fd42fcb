package testutil

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
)

// Committed returns every event in the outbox in commit order.
func Committed(t *testing.T, outbox model.Outbox) []model.Event {
	t.Helper()
	rows, err := outbox.EventsAfter(context.Background(), 0, math.MaxInt)
	require.NoError(t, err)

	evs := make([]model.Event, len(rows))
	for i, row := range rows {
		evs[i] = row.Event
	}
	return evs
}

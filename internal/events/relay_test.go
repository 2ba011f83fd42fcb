package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/mocks"
	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/repository/memory"
	"github.com/dtroode/carechain-server/internal/testutil"
)

func commitEvents(t *testing.T, store *memory.Store, n int) []model.Event {
	t.Helper()
	ctx := context.Background()

	evs := make([]model.Event, n)
	for i := range evs {
		evs[i] = newEvent(model.ProgramPauseUpdated{Paused: i%2 == 0, SetBy: "0xauthority", At: testAt})
		require.NoError(t, store.WithinTx(ctx, func(tx model.Tx) error {
			return tx.AppendEvent(ctx, evs[i])
		}))
	}
	return evs
}

func TestRelay_Drain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore()
	evs := commitEvents(t, store, 3)

	rec := &testutil.Recorder{}
	r := NewRelay(store, rec, testutil.MakeNoopLogger())
	r.batch = 2

	sent, err := r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.Equal(t, int64(3), r.Position())
	assert.Equal(t, evs, rec.Events())

	sent, err = r.Drain(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	more := commitEvents(t, store, 1)
	sent, err = r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, int64(4), r.Position())
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, more[0], last)
}

func TestRelay_Drain_SinkFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore()
	evs := commitEvents(t, store, 1)
	errDown := errors.New("archive down")

	sink := mocks.NewEventSink(t)
	sink.On("Publish", mock.Anything, evs[0]).Return(errDown).Once()
	sink.On("Publish", mock.Anything, evs[0]).Return(nil).Once()

	r := NewRelay(store, sink, testutil.MakeNoopLogger())

	sent, err := r.Drain(ctx)
	require.ErrorIs(t, err, errDown)
	assert.Zero(t, sent)
	assert.Zero(t, r.Position())

	sent, err = r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, int64(1), r.Position())
}

func TestRelay_Run(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	store := memory.NewStore()
	rec := &testutil.Recorder{}
	r := NewRelay(store, rec, testutil.MakeNoopLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx, 10*time.Millisecond)
	}()

	evs := commitEvents(t, store, 2)
	require.Eventually(t, func() bool { return len(rec.Events()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, evs, rec.Events())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}

package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/mocks"
	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/testutil"
)

func TestFanout_Publish(t *testing.T) {
	t.Parallel()

	ev := newEvent(model.ProgramPauseUpdated{Paused: true, SetBy: "0xauthority", At: testAt})
	errA := errors.New("sink a down")

	a := mocks.NewEventSink(t)
	a.On("Publish", mock.Anything, ev).Return(errA)
	b := mocks.NewEventSink(t)
	b.On("Publish", mock.Anything, ev).Return(nil)
	rec := &testutil.Recorder{}

	err := Fanout{a, b, rec}.Publish(context.Background(), ev)
	assert.ErrorIs(t, err, errA)
	assert.Equal(t, []model.Event{ev}, rec.Events())
}

func TestFanout_Empty(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Fanout(nil).Publish(context.Background()))
}

func TestLogSink_Publish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewLogSink(logger.NewWithWriter(&buf, int(slog.LevelInfo)))

	ev := newEvent(model.RecordCreated{Seq: 9, Uploader: "0xhospital", CreatedAt: testAt})
	assert.NoError(t, sink.Publish(context.Background(), ev))

	out := buf.String()
	assert.Contains(t, out, `msg="ledger event"`)
	assert.Contains(t, out, "type=RecordCreated")
	assert.Contains(t, out, "id="+ev.ID.String())
}

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/carechain-server/internal/model"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	rec := &Recorder{}
	_, ok := rec.Last()
	assert.False(t, ok)

	first := model.NewEvent(model.ConfigInitialized{Authority: "0xauthority", CreatedAt: at}, at)
	second := model.NewEvent(model.ProgramPauseUpdated{Paused: true, At: at}, at)
	assert.NoError(t, rec.Publish(context.Background(), first, second))

	last, ok := rec.Last()
	assert.True(t, ok)
	assert.Equal(t, second, last)
	assert.Equal(t, []model.EventType{model.EventConfigInitialized, model.EventProgramPauseUpdated}, rec.Types())

	events := rec.Events()
	events[0] = model.Event{}
	assert.Equal(t, first, rec.Events()[0])
}

package events

import (
	"context"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

var _ model.EventSink = (*LogSink)(nil)

// LogSink writes every event to the application log.
type LogSink struct {
	logger *logger.Logger
}

func NewLogSink(logger *logger.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, events ...model.Event) error {
	for _, ev := range events {
		s.logger.InfoContext(ctx, "ledger event",
			"id", ev.ID,
			"type", ev.Type,
			"at", ev.At,
			"payload", ev.Payload,
		)
	}
	return nil
}

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

const defaultRelayBatch = 100

// Relay forwards committed outbox events to a sink. Events published live
// but lost by the sink are delivered again on the next pass, so the sink
// must tolerate duplicates.
type Relay struct {
	outbox   model.Outbox
	sink     model.EventSink
	logger   *logger.Logger
	batch    int
	position int64
}

func NewRelay(outbox model.Outbox, sink model.EventSink, logger *logger.Logger) *Relay {
	return &Relay{outbox: outbox, sink: sink, logger: logger, batch: defaultRelayBatch}
}

// Position returns the last forwarded outbox position.
func (r *Relay) Position() int64 {
	return r.position
}

// Drain forwards every event after the current position and returns how many
// were sent. The position only advances past batches the sink accepted.
func (r *Relay) Drain(ctx context.Context) (int, error) {
	sent := 0
	for {
		rows, err := r.outbox.EventsAfter(ctx, r.position, r.batch)
		if err != nil {
			return sent, fmt.Errorf("failed to read outbox: %w", err)
		}
		if len(rows) == 0 {
			return sent, nil
		}

		evs := make([]model.Event, len(rows))
		for i, row := range rows {
			evs[i] = row.Event
		}
		if err := r.sink.Publish(ctx, evs...); err != nil {
			return sent, fmt.Errorf("failed to forward events after %d: %w", r.position, err)
		}

		r.position = rows[len(rows)-1].Position
		sent += len(rows)
		if len(rows) < r.batch {
			return sent, nil
		}
	}
}

// Run drains the outbox every interval until ctx is done.
func (r *Relay) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		sent, err := r.Drain(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			r.logger.Error("Relay: failed to drain outbox", "position", r.position, "error", err)
		case sent > 0:
			r.logger.Debug("Relay: forwarded events", "count", sent, "position", r.position)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

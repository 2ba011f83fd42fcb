package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// core carries the collaborators shared by every ledger component.
type core struct {
	store  model.Store
	clock  model.Clock
	sink   model.EventSink
	logger *logger.Logger
}

func newCore(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) core {
	if clock == nil {
		clock = model.SystemClock{}
	}
	return core{store: store, clock: clock, sink: sink, logger: logger}
}

type emitFunc func(payload model.EventPayload)

// execute runs fn as one atomic operation. Events emitted by fn are appended
// to the store outbox inside the transaction and published to the sink once
// the transaction committed.
func (c core) execute(ctx context.Context, op string, fn func(tx model.Tx, now time.Time, emit emitFunc) error) error {
	now := c.clock.Now().UTC()

	var events []model.Event
	err := c.store.WithinTx(ctx, func(tx model.Tx) error {
		events = events[:0]
		emit := func(payload model.EventPayload) {
			events = append(events, model.NewEvent(payload, now))
		}
		if err := fn(tx, now, emit); err != nil {
			return err
		}
		for _, ev := range events {
			if err := tx.AppendEvent(ctx, ev); err != nil {
				return fmt.Errorf("failed to append %s event: %w", ev.Type, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(events) > 0 && c.sink != nil {
		if err := c.sink.Publish(ctx, events...); err != nil {
			c.logger.Error("failed to publish events", "op", op, "count", len(events), "error", err)
		}
	}
	return nil
}

// view runs fn in a transaction that emits nothing.
func (c core) view(ctx context.Context, fn func(tx model.Tx) error) error {
	return c.store.WithinTx(ctx, fn)
}

// activeConfig loads the config and fails when it is missing or paused.
func activeConfig(ctx context.Context, tx model.Tx) (model.LedgerConfig, error) {
	cfg, err := tx.GetConfig(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.LedgerConfig{}, model.ErrNotInitialized
	}
	if err != nil {
		return model.LedgerConfig{}, fmt.Errorf("failed to get config: %w", err)
	}
	if cfg.Paused {
		return model.LedgerConfig{}, model.ErrPaused
	}
	return cfg, nil
}

// ensureNotPaused fails only when an existing config is paused. Operations
// that do not depend on the registrar use it so they work before the config
// is initialized.
func ensureNotPaused(ctx context.Context, tx model.Tx) error {
	cfg, err := tx.GetConfig(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	if cfg.Paused {
		return model.ErrPaused
	}
	return nil
}

func requireIdentity(field string, id model.Identity) error {
	if id.IsZero() {
		return model.NewFieldError(field, model.ErrEmpty)
	}
	return nil
}

// boundedString trims s and checks it against max. Empty input is rejected
// when required is set.
func boundedString(field, s string, max int, required bool) (string, error) {
	trimmed := strings.TrimSpace(s)
	if required && trimmed == "" {
		return "", model.NewFieldError(field, model.ErrEmpty)
	}
	if len(trimmed) > max {
		return "", model.NewFieldError(field, fmt.Errorf("%w: %d > %d bytes", model.ErrTooLong, len(trimmed), max))
	}
	return trimmed, nil
}

func loadPatient(ctx context.Context, tx model.Tx, owner model.Identity) (model.Patient, error) {
	p, err := tx.GetPatient(ctx, model.PatientAddress(owner))
	if errors.Is(err, model.ErrNotFound) {
		return model.Patient{}, fmt.Errorf("patient %s: %w", owner, model.ErrNotFound)
	}
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}
	return p, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

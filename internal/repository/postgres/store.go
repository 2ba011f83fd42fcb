package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/carechain-server/internal/events"
	"github.com/dtroode/carechain-server/internal/model"
)

var (
	_ model.Store  = (*Store)(nil)
	_ model.Outbox = (*Store)(nil)
)

const uniqueViolation = "23505"

// Store runs ledger transactions on PostgreSQL. Every getter locks the row it
// reads, so concurrent transactions on the same entity run one after another.
type Store struct {
	db *Connection
}

func NewStore(db *Connection) *Store {
	return &Store{db: db}
}

// WithinTx implements model.Store.
func (s *Store) WithinTx(ctx context.Context, fn func(tx model.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err = fn(&pgTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return mapError(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// EventsAfter implements model.Outbox, oldest first.
func (s *Store) EventsAfter(ctx context.Context, after int64, limit int) ([]model.OutboxEvent, error) {
	rows, err := s.db.Query(ctx, `
		SELECT position, id, type, at, payload
		FROM ledger_events
		WHERE position > $1
		ORDER BY position
		LIMIT $2`, after, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []model.OutboxEvent
	for rows.Next() {
		var (
			row     model.OutboxEvent
			evType  string
			payload []byte
		)
		if err := rows.Scan(&row.Position, &row.Event.ID, &evType, &row.Event.At, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		row.Event.Type = model.EventType(evType)
		row.Event.Payload, err = events.DecodePayload(row.Event.Type, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode event %s: %w", row.Event.ID, err)
		}
		row.Event.At = row.Event.At.UTC()
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return out, nil
}

type pgTx struct {
	tx pgx.Tx
}

// mapError translates driver errors into ledger error kinds.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", model.ErrAlreadyExists, pgErr.ConstraintName)
	}
	return err
}

// exec runs a write that must touch exactly one row.
func (t *pgTx) exec(ctx context.Context, query string, args ...any) error {
	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// fixedBytes scans a BYTEA column into a fixed-size array such as an
// address or a digest.
type fixedBytes []byte

// ScanBytes implements pgtype.BytesScanner.
func (f fixedBytes) ScanBytes(v []byte) error {
	if len(v) != len(f) {
		return fmt.Errorf("expected %d bytes, got %d", len(f), len(v))
	}
	copy(f, v)
	return nil
}

// Package memory provides an in-process ledger store. Transactions are
// serialized by a single mutex and staged in an overlay that is applied only
// when the transaction function succeeds.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/dtroode/carechain-server/internal/model"
)

var (
	_ model.Store  = (*Store)(nil)
	_ model.Outbox = (*Store)(nil)
)

type table[T any] map[model.Address]T

type overlay[T any] struct {
	base    table[T]
	pending table[T]
}

func (o *overlay[T]) get(addr model.Address) (T, bool) {
	if v, ok := o.pending[addr]; ok {
		return v, true
	}
	v, ok := o.base[addr]
	return v, ok
}

func (o *overlay[T]) put(addr model.Address, v T) {
	if o.pending == nil {
		o.pending = make(table[T])
	}
	o.pending[addr] = v
}

func (o *overlay[T]) commit() {
	for k, v := range o.pending {
		o.base[k] = v
	}
}

// Store is a mutex-guarded in-memory implementation of model.Store.
type Store struct {
	mu        sync.Mutex
	configs   table[model.LedgerConfig]
	hospitals table[model.Hospital]
	patients  table[model.Patient]
	sequences table[model.SequenceCounter]
	trustees  table[model.Trustee]
	grants    table[model.Grant]
	records   table[model.Record]
	events    []model.Event
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		configs:   make(table[model.LedgerConfig]),
		hospitals: make(table[model.Hospital]),
		patients:  make(table[model.Patient]),
		sequences: make(table[model.SequenceCounter]),
		trustees:  make(table[model.Trustee]),
		grants:    make(table[model.Grant]),
		records:   make(table[model.Record]),
	}
}

// WithinTx implements model.Store.
func (s *Store) WithinTx(ctx context.Context, fn func(tx model.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{
		configs:   overlay[model.LedgerConfig]{base: s.configs},
		hospitals: overlay[model.Hospital]{base: s.hospitals},
		patients:  overlay[model.Patient]{base: s.patients},
		sequences: overlay[model.SequenceCounter]{base: s.sequences},
		trustees:  overlay[model.Trustee]{base: s.trustees},
		grants:    overlay[model.Grant]{base: s.grants},
		records:   overlay[model.Record]{base: s.records},
	}
	if err := fn(tx); err != nil {
		return err
	}

	tx.configs.commit()
	tx.hospitals.commit()
	tx.patients.commit()
	tx.sequences.commit()
	tx.trustees.commit()
	tx.grants.commit()
	tx.records.commit()
	s.events = append(s.events, tx.events...)
	return nil
}

// EventsAfter implements model.Outbox. Positions start at 1.
func (s *Store) EventsAfter(_ context.Context, after int64, limit int) ([]model.OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.OutboxEvent
	for i := max(after, 0); i < int64(len(s.events)) && len(out) < limit; i++ {
		out = append(out, model.OutboxEvent{Position: i + 1, Event: s.events[i]})
	}
	return out, nil
}

type memTx struct {
	configs   overlay[model.LedgerConfig]
	hospitals overlay[model.Hospital]
	patients  overlay[model.Patient]
	sequences overlay[model.SequenceCounter]
	trustees  overlay[model.Trustee]
	grants    overlay[model.Grant]
	records   overlay[model.Record]
	events    []model.Event
}

func (t *memTx) GetConfig(_ context.Context) (model.LedgerConfig, error) {
	cfg, ok := t.configs.get(model.ConfigAddress())
	if !ok {
		return model.LedgerConfig{}, model.ErrNotFound
	}
	return cfg, nil
}

func (t *memTx) GetConfigForUpdate(ctx context.Context) (model.LedgerConfig, error) {
	return t.GetConfig(ctx)
}

func (t *memTx) CreateConfig(_ context.Context, cfg model.LedgerConfig) error {
	if _, ok := t.configs.get(model.ConfigAddress()); ok {
		return model.ErrAlreadyExists
	}
	t.configs.put(model.ConfigAddress(), cfg)
	return nil
}

func (t *memTx) UpdateConfig(_ context.Context, cfg model.LedgerConfig) error {
	if _, ok := t.configs.get(model.ConfigAddress()); !ok {
		return model.ErrNotFound
	}
	t.configs.put(model.ConfigAddress(), cfg)
	return nil
}

func (t *memTx) GetHospital(_ context.Context, addr model.Address) (model.Hospital, error) {
	h, ok := t.hospitals.get(addr)
	if !ok {
		return model.Hospital{}, model.ErrNotFound
	}
	return h, nil
}

func (t *memTx) CreateHospital(_ context.Context, h model.Hospital) error {
	if _, ok := t.hospitals.get(h.Address); ok {
		return model.ErrAlreadyExists
	}
	t.hospitals.put(h.Address, h)
	return nil
}

func (t *memTx) GetPatient(_ context.Context, addr model.Address) (model.Patient, error) {
	p, ok := t.patients.get(addr)
	if !ok {
		return model.Patient{}, model.ErrNotFound
	}
	return p, nil
}

func (t *memTx) CreatePatient(_ context.Context, p model.Patient) error {
	if _, ok := t.patients.get(p.Address); ok {
		return model.ErrAlreadyExists
	}
	t.patients.put(p.Address, p)
	return nil
}

func (t *memTx) UpdatePatient(_ context.Context, p model.Patient) error {
	if _, ok := t.patients.get(p.Address); !ok {
		return model.ErrNotFound
	}
	t.patients.put(p.Address, p)
	return nil
}

func (t *memTx) GetSequence(_ context.Context, addr model.Address) (model.SequenceCounter, error) {
	c, ok := t.sequences.get(addr)
	if !ok {
		return model.SequenceCounter{}, model.ErrNotFound
	}
	return c, nil
}

func (t *memTx) CreateSequence(_ context.Context, c model.SequenceCounter) error {
	if _, ok := t.sequences.get(c.Address); ok {
		return model.ErrAlreadyExists
	}
	t.sequences.put(c.Address, c)
	return nil
}

func (t *memTx) UpdateSequence(_ context.Context, c model.SequenceCounter) error {
	if _, ok := t.sequences.get(c.Address); !ok {
		return model.ErrNotFound
	}
	t.sequences.put(c.Address, c)
	return nil
}

func (t *memTx) GetTrustee(_ context.Context, addr model.Address) (model.Trustee, error) {
	tr, ok := t.trustees.get(addr)
	if !ok {
		return model.Trustee{}, model.ErrNotFound
	}
	return tr, nil
}

func (t *memTx) PutTrustee(_ context.Context, tr model.Trustee) error {
	t.trustees.put(tr.Address, tr)
	return nil
}

func (t *memTx) GetGrant(_ context.Context, addr model.Address) (model.Grant, error) {
	g, ok := t.grants.get(addr)
	if !ok {
		return model.Grant{}, model.ErrNotFound
	}
	return g, nil
}

func (t *memTx) PutGrant(_ context.Context, g model.Grant) error {
	t.grants.put(g.Address, g)
	return nil
}

func (t *memTx) GetRecord(_ context.Context, addr model.Address) (model.Record, error) {
	r, ok := t.records.get(addr)
	if !ok {
		return model.Record{}, model.ErrNotFound
	}
	return cloneRecord(r), nil
}

func (t *memTx) CreateRecord(_ context.Context, r model.Record) error {
	if _, ok := t.records.get(r.Address); ok {
		return model.ErrAlreadyExists
	}
	t.records.put(r.Address, cloneRecord(r))
	return nil
}

func (t *memTx) AppendEvent(_ context.Context, ev model.Event) error {
	t.events = append(t.events, ev)
	return nil
}

func cloneRecord(r model.Record) model.Record {
	r.RootKey.Blob = bytes.Clone(r.RootKey.Blob)
	r.PatientKey.Blob = bytes.Clone(r.PatientKey.Blob)
	r.HospitalKey.Blob = bytes.Clone(r.HospitalKey.Blob)
	return r
}

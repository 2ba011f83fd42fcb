package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// Config administers the ledger singleton.
type Config struct {
	core
}

func NewConfig(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) *Config {
	return &Config{core: newCore(store, clock, sink, logger)}
}

// Initialize creates the singleton with caller as its authority.
func (s *Config) Initialize(ctx context.Context, caller model.Identity, namespace string) (model.LedgerConfig, error) {
	if err := requireIdentity("authority", caller); err != nil {
		return model.LedgerConfig{}, err
	}

	var cfg model.LedgerConfig
	err := s.execute(ctx, "config.initialize", func(tx model.Tx, now time.Time, emit emitFunc) error {
		_, err := tx.GetConfig(ctx)
		if err == nil {
			return model.ErrAlreadyInitialized
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to get config: %w", err)
		}

		ns, err := boundedString("namespace", namespace, model.MaxNamespaceLen, true)
		if err != nil {
			return err
		}

		cfg = model.LedgerConfig{
			Authority: caller,
			Paused:    false,
			Namespace: ns,
			CreatedAt: now,
		}
		if err := tx.CreateConfig(ctx, cfg); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				return model.ErrAlreadyInitialized
			}
			return fmt.Errorf("failed to create config: %w", err)
		}

		emit(model.ConfigInitialized{Authority: caller, Namespace: ns, CreatedAt: now})
		return nil
	})
	if err != nil {
		return model.LedgerConfig{}, err
	}

	s.logger.Info("Config service: config initialized", "authority", caller, "namespace", cfg.Namespace)
	return cfg, nil
}

// SetPaused toggles the pause switch. Setting the current value is a no-op.
func (s *Config) SetPaused(ctx context.Context, caller model.Identity, paused bool) (model.LedgerConfig, error) {
	var (
		cfg     model.LedgerConfig
		changed bool
	)
	err := s.execute(ctx, "config.set_paused", func(tx model.Tx, now time.Time, emit emitFunc) error {
		var err error
		cfg, err = tx.GetConfigForUpdate(ctx)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotInitialized
		}
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		if caller != cfg.Authority {
			return model.ErrUnauthorized
		}
		if cfg.Paused == paused {
			return nil
		}

		cfg.Paused = paused
		if err := tx.UpdateConfig(ctx, cfg); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		changed = true

		emit(model.ProgramPauseUpdated{Paused: paused, SetBy: caller, At: now})
		return nil
	})
	if err != nil {
		return model.LedgerConfig{}, err
	}

	if changed {
		s.logger.Info("Config service: pause updated", "paused", paused, "by", caller)
	}
	return cfg, nil
}

func (s *Config) Get(ctx context.Context) (model.LedgerConfig, error) {
	var cfg model.LedgerConfig
	err := s.view(ctx, func(tx model.Tx) error {
		var err error
		cfg, err = tx.GetConfig(ctx)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotInitialized
		}
		return err
	})
	if err != nil {
		return model.LedgerConfig{}, err
	}
	return cfg, nil
}

package handler

import (
	"context"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
)

// InitializeConfig creates the ledger config with the caller as authority.
func (h *Ledger) InitializeConfig(ctx context.Context, req *wire.InitializeConfigRequest) (*wire.ConfigResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := h.services.Config.Initialize(ctx, caller, req.Namespace)
	if err != nil {
		return nil, h.fail("initialize config", err, "caller", caller)
	}

	return &wire.ConfigResponse{Config: toWireConfig(cfg)}, nil
}

// SetPaused toggles the ledger pause switch.
func (h *Ledger) SetPaused(ctx context.Context, req *wire.SetPausedRequest) (*wire.ConfigResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := h.services.Config.SetPaused(ctx, caller, req.Paused)
	if err != nil {
		return nil, h.fail("set paused", err, "caller", caller, "paused", req.Paused)
	}

	return &wire.ConfigResponse{Config: toWireConfig(cfg)}, nil
}

func (h *Ledger) GetConfig(ctx context.Context, _ *wire.GetConfigRequest) (*wire.ConfigResponse, error) {
	cfg, err := h.services.Config.Get(ctx)
	if err != nil {
		return nil, h.fail("get config", err)
	}

	return &wire.ConfigResponse{Config: toWireConfig(cfg)}, nil
}

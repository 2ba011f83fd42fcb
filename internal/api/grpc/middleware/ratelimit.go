package middleware

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/ratelimit"
)

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (ratelimit.Decision, error)
}

// RateLimit is a unary interceptor limiting requests per caller identity, or
// per peer address for anonymous calls.
type RateLimit struct {
	limiter        Limiter
	contextManager model.ContextManager
	limit          int
	window         time.Duration
	logger         *logger.Logger
}

// NewRateLimit creates a new RateLimit middleware.
func NewRateLimit(limiter Limiter, contextManager model.ContextManager, limit int, window time.Duration, logger *logger.Logger) *RateLimit {
	return &RateLimit{
		limiter:        limiter,
		contextManager: contextManager,
		limit:          limit,
		window:         window,
		logger:         logger,
	}
}

// HandleGRPC rejects requests over the limit with ResourceExhausted. Limiter
// failures let the request through.
func (m *RateLimit) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	key := m.key(ctx)

	decision, err := m.limiter.Allow(ctx, key, m.limit, m.window)
	if err != nil {
		m.logger.Error("RateLimit: limiter failed", "key", key, "error", err.Error())
		return handler(ctx, req)
	}

	if decision.Limit > 0 {
		_ = grpc.SetHeader(ctx, metadata.Pairs(
			"x-ratelimit-limit", strconv.Itoa(decision.Limit),
			"x-ratelimit-remaining", strconv.Itoa(decision.Remaining),
		))
	}

	if !decision.Allowed {
		m.logger.Warn("RateLimit: request rejected", "key", key, "method", info.FullMethod, "reset_at", decision.ResetAt)
		return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded, retry after %s", decision.ResetAt.UTC().Format(time.RFC3339))
	}

	return handler(ctx, req)
}

func (m *RateLimit) key(ctx context.Context) string {
	if caller, ok := m.contextManager.GetCallerFromContext(ctx); ok {
		return "caller:" + caller.String()
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return "peer:" + p.Addr.String()
	}
	return "anonymous"
}

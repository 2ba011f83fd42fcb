package router

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/api/grpc/handler"
	"github.com/dtroode/carechain-server/internal/api/grpc/middleware"
	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// publicMethods are served without an identity token. They only read state.
var publicMethods = map[string]struct{}{
	wire.Ledger_GetConfig_FullMethodName:   {},
	wire.Ledger_GetHospital_FullMethodName: {},
	wire.Ledger_GetPatient_FullMethodName:  {},
	wire.Ledger_GetSequence_FullMethodName: {},
	wire.Ledger_GetTrustee_FullMethodName:  {},
	wire.Ledger_GetGrant_FullMethodName:    {},
}

// Tokens issues and verifies identity and consent tokens.
type Tokens interface {
	middleware.IdentityParser
	handler.ConsentVerifier
}

// RateLimit configures per-caller request limiting. A nil Limiter disables it.
type RateLimit struct {
	Limiter middleware.Limiter
	Limit   int
	Window  time.Duration
}

// Router represents a gRPC router for ledger operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services       handler.Services
	tokens         Tokens
	rateLimit      RateLimit
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	services handler.Services,
	tokens Tokens,
	rateLimit RateLimit,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		tokens:         tokens,
		rateLimit:      rateLimit,
		contextManager: contextManager,
		logger:         logger,
	}
}

func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	if c.Service == healthpb.Health_ServiceDesc.ServiceName {
		return false
	}
	_, public := publicMethods[c.FullMethod()]
	return !public
}

// Register registers all gRPC services and middleware.
// Interceptors run in order: panic recovery, request logging, authentication
// of non-public methods, then rate limiting.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	recoveryOpt := recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		r.logger.Error("gRPC handler panicked", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	unary := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recoveryOpt),
		logging.HandleGRPC,
		selector.UnaryServerInterceptor(
			auth.UnaryServerInterceptor(authenticate.AuthFunc),
			selector.MatchFunc(authRequired),
		),
	}
	if r.rateLimit.Limiter != nil {
		limit := middleware.NewRateLimit(r.rateLimit.Limiter, r.contextManager, r.rateLimit.Limit, r.rateLimit.Window, r.logger)
		unary = append(unary, limit.HandleGRPC)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
	r.registerLedgerRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

func (r *Router) registerLedgerRoutes(server *grpc.Server) {
	ledgerHandler := handler.NewLedger(r.services, r.tokens, r.contextManager, r.logger)
	wire.RegisterLedgerServer(server, ledgerHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus(wire.Ledger_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}

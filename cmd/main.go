package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/carechain-server/internal/api/grpc/context"
	"github.com/dtroode/carechain-server/internal/api/grpc/handler"
	"github.com/dtroode/carechain-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/carechain-server/internal/api/grpc/server"
	"github.com/dtroode/carechain-server/internal/config"
	"github.com/dtroode/carechain-server/internal/events"
	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/ratelimit"
	"github.com/dtroode/carechain-server/internal/repository/memory"
	"github.com/dtroode/carechain-server/internal/repository/postgres"
	"github.com/dtroode/carechain-server/internal/server"
	"github.com/dtroode/carechain-server/internal/service"
	storage "github.com/dtroode/carechain-server/internal/storage/minio"
	"github.com/dtroode/carechain-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStore()

	sink, archive, err := newEventSink(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize event sink", "error", err)
	}

	clock := model.SystemClock{}
	services := handler.Services{
		Config:    service.NewConfig(store, clock, sink, logger),
		Hospitals: service.NewHospitalRegistry(store, clock, sink, logger),
		Patients:  service.NewPatientRegistry(store, clock, sink, logger),
		Trustees:  service.NewTrusteeStore(store, clock, sink, logger),
		Grants:    service.NewGrantStore(store, clock, sink, logger),
		Records:   service.NewRecordLedger(store, clock, sink, logger),
	}

	tokenManager := token.NewJWT(
		cfg.JWT.Secret,
		token.WithIdentityTTL(cfg.JWT.IdentityTTL),
		token.WithConsentTTL(cfg.JWT.ConsentTTL),
	)

	rateLimit, closeLimiter, err := newRateLimit(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize rate limiter", "error", err)
	}
	defer closeLimiter()

	ctxMgr := grpcctx.NewManager()
	grpcServer := registerGRPCServer(services, tokenManager, rateLimit, ctxMgr, logger, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewSecurityLayer(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	if outbox, ok := store.(model.Outbox); ok && archive != nil {
		relay := events.NewRelay(outbox, archive, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			relay.Run(ctx, cfg.Storage.ReplayInterval)
		}()
	}

	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "store", cfg.StoreDriver, "rate_limit", cfg.RateLimit.Driver)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStore(ctx context.Context, cfg *config.Config) (model.Store, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		return memory.NewStore(), func() {}, nil
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewStore(db), func() { _ = db.Close() }, nil
}

// newEventSink returns the live sink and, when enabled, the archive that the
// outbox relay feeds as well.
func newEventSink(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.EventSink, *events.Archive, error) {
	sinks := events.Fanout{events.NewLogSink(logger)}
	if !cfg.Storage.Enabled {
		return sinks, nil, nil
	}

	objects, err := storage.Connect(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, nil, err
	}
	archive := events.NewArchive(objects, cfg.Storage.Prefix)
	return append(sinks, archive), archive, nil
}

func newRateLimit(ctx context.Context, cfg *config.Config) (router.RateLimit, func(), error) {
	rl := router.RateLimit{Limit: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window}

	switch cfg.RateLimit.Driver {
	case config.RateLimitMemory:
		rl.Limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{})
		return rl, func() {}, nil
	case config.RateLimitRedis:
		limiter, err := ratelimit.NewRedisLimiter(ratelimit.RedisLimiterConfig{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
			Prefix:   cfg.RateLimit.RedisPrefix,
		})
		if err != nil {
			return router.RateLimit{}, nil, err
		}
		if err := limiter.Ping(ctx); err != nil {
			_ = limiter.Close()
			return router.RateLimit{}, nil, err
		}
		rl.Limiter = limiter
		return rl, func() { _ = limiter.Close() }, nil
	default:
		return router.RateLimit{}, func() {}, nil
	}
}

func registerGRPCServer(
	services handler.Services,
	tokens router.Tokens,
	rateLimit router.RateLimit,
	ctxMgr model.ContextManager,
	logger *logger.Logger,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(services, tokens, rateLimit, ctxMgr, logger)
	return grpcServer.NewGRPCServer(r.Register(), addr)
}

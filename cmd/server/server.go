package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	characterorch "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	draftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-sheet/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort  int
	redisAddr string
	dataDir   string
	logLevel  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the rpg-sheet gRPC server. Settings come from SHEET_* environment
variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (SHEET_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (SHEET_REDIS_ADDR)")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "", "Reference data directory (SHEET_DATA_DIR)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (SHEET_LOG_LEVEL)")
}

// loadConfig reads the environment with the flags that were set taking
// precedence
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var overrides config.Overrides

	flags := cmd.Flags()
	if flags.Changed("port") {
		overrides.GRPCPort = &grpcPort
	}
	if flags.Changed("redis-addr") {
		overrides.RedisAddr = &redisAddr
	}
	if flags.Changed("data-dir") {
		overrides.DataDir = &dataDir
	}
	if flags.Changed("log-level") {
		overrides.LogLevel = &logLevel
	}

	return config.LoadWith(nil, overrides)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	tables, sheetEngine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	err = redis.Ping(pingCtx, redisClient)
	pingCancel()
	if err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	systemClock := clock.New()
	draftRepo, err := draftrepo.NewRedisRepository(&draftrepo.Config{
		Client: redisClient,
		Clock:  systemClock,
		TTL:    cfg.DraftTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create draft repository: %w", err)
	}

	orchestrator, err := characterorch.New(&characterorch.Config{
		CharacterDraftRepo: draftRepo,
		Engine:             sheetEngine,
		Catalog:            tables,
		DiceRoller:         dice.DefaultRoller,
		Clock:              systemClock,
		IDGenerator:        idgen.NewUUID("draft"),
		DraftTTL:           cfg.DraftTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: orchestrator,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := interceptorLogger(logger)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"redis", cfg.RedisAddr,
			"draft_ttl", cfg.DraftTTL,
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the grpc logging interceptor
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}

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
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Saichiiro/astoria-sub001/internal/config"
	"github.com/Saichiiro/astoria-sub001/internal/engine/stats"
	statsv1 "github.com/Saichiiro/astoria-sub001/internal/handlers/stats/v1"
	"github.com/Saichiiro/astoria-sub001/internal/orchestrators/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/pkg/clock"
	"github.com/Saichiiro/astoria-sub001/internal/pkg/idgen"
	"github.com/Saichiiro/astoria-sub001/internal/redis"
	inventoryrepo "github.com/Saichiiro/astoria-sub001/internal/repositories/inventory"
)

var (
	grpcPort  int
	redisAddr string
	logLevel  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the stats gRPC server. Settings come from ASTORIA_* environment
variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ASTORIA_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "redis address, comma separated for a cluster (overrides ASTORIA_REDIS_ADDR)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides ASTORIA_LOG_LEVEL)")
}

func loadServerConfig(cmd *cobra.Command) (*config.ServerConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	defer func() { _ = redisClient.Close() }()

	inventoryRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory repository: %w", err)
	}

	inventoryService, err := inventory.NewOrchestrator(&inventory.Config{
		Engine:        stats.New(&stats.Config{HiddenKeys: cfg.HiddenStats}),
		InventoryRepo: inventoryRepo,
		IDGenerator:   idgen.NewUUID("item"),
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory service: %w", err)
	}

	statsHandler, err := statsv1.NewHandler(&statsv1.HandlerConfig{InventoryService: inventoryService})
	if err != nil {
		return fmt.Errorf("failed to create stats handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	statsv1.RegisterStatsServiceServer(srv, statsHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(statsv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "redis", cfg.RedisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
			slog.Info("Server stopped gracefully")
		case <-time.After(cfg.ShutdownTimeout):
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop", "timeout", cfg.ShutdownTimeout)
			srv.Stop()
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// logFunc routes interceptor logs to the default slog logger.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

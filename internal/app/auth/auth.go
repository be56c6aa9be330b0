// Package auth собирает отдельный gRPC-сервис сессий.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/magabrotheeeer/health-subscriptions/internal/config"
	"github.com/magabrotheeeer/health-subscriptions/internal/grpc/server"
	"github.com/magabrotheeeer/health-subscriptions/internal/grpc/sessionpb"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	authservices "github.com/magabrotheeeer/health-subscriptions/internal/services/auth"
	"github.com/magabrotheeeer/health-subscriptions/internal/storage"
)

// App gRPC-приложение сервиса сессий.
type App struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	logger     *slog.Logger
	db         *storage.Storage
}

// New подключает хранилище, слушает адрес GRPCAuthAddress и регистрирует сервисы.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.auth.New"

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	authService := authservices.NewAuthService(db, jwtMaker)

	lis, err := net.Listen("tcp", cfg.GRPCAuthAddress)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(logger)))
	sessionpb.RegisterSessionServer(grpcServer, server.NewSessionServer(authService, logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(sessionpb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &App{
		grpcServer: grpcServer,
		health:     healthServer,
		listener:   lis,
		logger:     logger,
		db:         db,
	}, nil
}

// LoggingInterceptor пишет метод, код ответа и длительность каждого вызова.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log := logger.With(
			slog.String("method", info.FullMethod),
			slog.String("code", status.Code(err).String()),
			slog.Duration("duration", time.Since(start)),
		)
		if err != nil {
			log.Info("rpc failed", sl.Err(err))
		} else {
			log.Debug("rpc completed")
		}
		return resp, err
	}
}

// Run обслуживает вызовы до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("Auth gRPC service listening on", slog.String("address", a.listener.Addr().String()))
		errCh <- a.grpcServer.Serve(a.listener)
	}()

	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close storage", sl.Err(err))
		}
	}()

	select {
	case <-ctx.Done():
		a.health.Shutdown()
		a.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

package healthsub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	// Регистрация swagger-спецификации для /docs.
	_ "github.com/magabrotheeeer/health-subscriptions/docs"

	"github.com/magabrotheeeer/health-subscriptions/internal/cache"
	"github.com/magabrotheeeer/health-subscriptions/internal/config"
	"github.com/magabrotheeeer/health-subscriptions/internal/grpc/client"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/migrations"
	"github.com/magabrotheeeer/health-subscriptions/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/health-subscriptions/internal/services/auth"
	planservice "github.com/magabrotheeeer/health-subscriptions/internal/services/plans"
	subservice "github.com/magabrotheeeer/health-subscriptions/internal/services/subscription"
	"github.com/magabrotheeeer/health-subscriptions/internal/storage"
)

// App HTTP-приложение со всеми зависимостями.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []io.Closer
}

// remoteLogin регистрирует пользователей локально, а вход выполняет через сервис сессий.
type remoteLogin struct {
	*authservice.AuthService
	remote *client.SessionClient
}

func (r remoteLogin) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	return r.remote.Login(ctx, username, password)
}

// New поднимает хранилище, кеш, брокер и маршрутизатор по конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.healthsub.New"

	app := &App{logger: logger}

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	app.closers = append(app.closers, db)

	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var planCache planservice.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.InitServer(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis is unavailable, plan catalog is not cached", sl.Err(err))
		} else {
			// Каталог мог измениться миграциями
			if err := redisCache.Invalidate(ctx, planservice.CatalogCacheKey); err != nil {
				logger.Warn("failed to invalidate plan catalog cache", sl.Err(err))
			}
			planCache = redisCache
			app.closers = append(app.closers, redisCache)
		}
	}

	var publisher subservice.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			_ = conn.Close()
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, conn, ch)
		publisher = rabbitmq.NewPublisher(ch, cfg.RabbitMQ.Exchange)
	} else {
		logger.Info("rabbitmq url is empty, subscription events are not published")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	planService := planservice.NewPlanService(db, planCache, logger, cfg.Redis.PlansTTL, cfg.Pricing.CostPerVisit)

	logger.Info("services configured",
		slog.Duration("session_ttl", jwtMaker.TTL()),
		slog.Float64("cost_per_visit", planService.CostPerVisit()),
		slog.String("session_source", cfg.SessionSource),
	)

	var (
		auth     AuthService                    = authService
		sessions middlewarectx.SessionValidator = authService
	)
	if cfg.SessionSource == config.SessionSourceGRPC {
		sessionClient, err := client.NewSessionClient(cfg.GRPCAuthAddress)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, sessionClient)
		auth = remoteLogin{AuthService: authService, remote: sessionClient}
		sessions = sessionClient
	}

	router := chi.NewRouter()
	RegisterRoutes(router, Deps{
		Log:           logger,
		Auth:          auth,
		Sessions:      sessions,
		Plans:         planService,
		Subscriptions: subservice.NewSubscriptionService(db, publisher, logger),
		Health:        db,
		SecureCookie:  cfg.HTTPServer.SecureCookie,
		LoginRPS:      cfg.RateLimit.LoginRPS,
		LoginBurst:    cfg.RateLimit.LoginBurst,
	})

	app.server = &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
	return app, nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер за 15 секунд.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает ресурсы в обратном порядке открытия.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}

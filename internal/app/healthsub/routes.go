// Package healthsub собирает HTTP-приложение сервиса подписок.
package healthsub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/health"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/plans/compare"
	planlist "github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/plans/list"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/plans/read"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/plans/revenue"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/plans/simulate"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/subscription/cancel"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/handlers/subscription/renew"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/metrics"
)

// AuthService регистрация и вход.
type AuthService interface {
	signup.Service
	login.Service
}

// PlanService каталог и расчеты.
type PlanService interface {
	planlist.Service
	read.Service
	revenue.Service
	simulate.Service
	compare.Service
}

// SubscriptionService операции с подписками.
type SubscriptionService interface {
	create.Service
	sublist.Service
	renew.Service
	cancel.Service
}

// Deps зависимости маршрутов.
type Deps struct {
	Log           *slog.Logger
	Auth          AuthService
	Sessions      middlewarectx.SessionValidator
	Plans         PlanService
	Subscriptions SubscriptionService
	Health        health.Pinger
	SecureCookie  bool
	LoginRPS      float64
	LoginBurst    int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, d Deps) {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/signup", signup.New(d.Log, d.Auth).ServeHTTP)
		r.With(middlewarectx.RateLimitMiddleware(d.Log, d.LoginRPS, d.LoginBurst)).
			Post("/login", login.New(d.Log, d.Auth, d.SecureCookie).ServeHTTP)
		r.Post("/logout", logout.New(d.Log, d.SecureCookie).ServeHTTP)

		// Группа с проверкой сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(d.Sessions, d.Log))

			r.Get("/plans", planlist.New(d.Log, d.Plans).ServeHTTP)
			r.Get("/plans/compare", compare.New(d.Log, d.Plans).ServeHTTP)
			r.Get("/plans/{id}", read.New(d.Log, d.Plans).ServeHTTP)
			r.Get("/plans/{id}/revenue", revenue.New(d.Log, d.Plans).ServeHTTP)
			r.Get("/plans/{id}/simulate", simulate.New(d.Log, d.Plans).ServeHTTP)

			r.Post("/subscriptions", create.New(d.Log, d.Subscriptions).ServeHTTP)
			r.Get("/subscriptions", sublist.New(d.Log, d.Subscriptions).ServeHTTP)
			r.Post("/subscriptions/{id}/renew", renew.New(d.Log, d.Subscriptions).ServeHTTP)
			r.Delete("/subscriptions/{id}", cancel.New(d.Log, d.Subscriptions).ServeHTTP)
		})
	})

	r.Get("/health", health.New(d.Log, d.Health).ServeHTTP)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// Package services содержит бизнес-логику каталога планов и расчета прибыльности.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/metrics"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
	"github.com/magabrotheeeer/health-subscriptions/internal/pricing"
)

// CatalogCacheKey ключ, под которым в кеше лежит отсортированный каталог.
const CatalogCacheKey = "plans:catalog"

// PlanRepository описывает чтение планов из хранилища.
type PlanRepository interface {
	// ListPlans возвращает все планы.
	ListPlans(ctx context.Context) ([]models.Plan, error)
	// GetPlan возвращает план по ID или ошибку apperr.ErrNotFound.
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// PlanService отдает каталог и считает выручку планов.
type PlanService struct {
	repo         PlanRepository
	cache        Cache
	log          *slog.Logger
	cacheTTL     time.Duration
	costPerVisit float64
}

// NewPlanService создает PlanService. cache может быть nil.
// Отрицательная себестоимость заменяется значением по умолчанию, ноль допустим.
func NewPlanService(repo PlanRepository, cache Cache, log *slog.Logger, cacheTTL time.Duration, costPerVisit float64) *PlanService {
	if costPerVisit < 0 {
		costPerVisit = pricing.DefaultCostPerVisit
	}
	return &PlanService{
		repo:         repo,
		cache:        cache,
		log:          log,
		cacheTTL:     cacheTTL,
		costPerVisit: costPerVisit,
	}
}

// CostPerVisit возвращает себестоимость визита по умолчанию.
func (s *PlanService) CostPerVisit() float64 {
	return s.costPerVisit
}

// List возвращает каталог по возрастанию цены.
// Ошибки кеша только логируются, источником истины остается хранилище.
func (s *PlanService) List(ctx context.Context) ([]models.Plan, error) {
	const op = "services.plans.List"

	if s.cache != nil {
		var cached []models.Plan
		found, err := s.cache.Get(ctx, CatalogCacheKey, &cached)
		if err != nil {
			s.log.Warn("failed to read catalog from cache", slog.String("op", op), sl.Err(err))
		}
		if found {
			return cached, nil
		}
	}

	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	pricing.SortCatalog(plans)

	if s.cache != nil {
		if err := s.cache.Set(ctx, CatalogCacheKey, plans, s.cacheTTL); err != nil {
			s.log.Warn("failed to write catalog to cache", slog.String("op", op), sl.Err(err))
		}
	}
	return plans, nil
}

// Get возвращает план по ID.
func (s *PlanService) Get(ctx context.Context, id int) (models.Plan, error) {
	const op = "services.plans.Get"

	plan, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.Plan{}, fmt.Errorf("%w: plan %d not found", apperr.ErrNotFound, id)
		}
		return models.Plan{}, fmt.Errorf("%s: %w", op, err)
	}
	return *plan, nil
}

// Revenue считает выручку, себестоимость и прибыль плана id для visits визитов.
// costPerVisit == nil означает себестоимость по умолчанию.
func (s *PlanService) Revenue(ctx context.Context, id, visits int, costPerVisit *float64) (models.Revenue, error) {
	cost := s.cost(costPerVisit)
	if err := pricing.CheckInputs(visits, cost); err != nil {
		return models.Revenue{}, err
	}
	plan, err := s.Get(ctx, id)
	if err != nil {
		return models.Revenue{}, err
	}
	res, err := pricing.Compute(plan, visits, cost)
	if err != nil {
		return models.Revenue{}, err
	}
	metrics.RecordRevenue(plan.Name)
	return res, nil
}

// Simulate строит кривую прибыльности плана id до maxVisits визитов.
func (s *PlanService) Simulate(ctx context.Context, id, maxVisits int, costPerVisit *float64) (models.Simulation, error) {
	cost := s.cost(costPerVisit)
	if err := pricing.CheckSimulation(maxVisits, cost); err != nil {
		return models.Simulation{}, err
	}
	plan, err := s.Get(ctx, id)
	if err != nil {
		return models.Simulation{}, err
	}
	return pricing.Simulate(plan, maxVisits, cost)
}

// Compare считает выручку всех планов каталога при одинаковом числе визитов.
func (s *PlanService) Compare(ctx context.Context, visits int, costPerVisit *float64) ([]models.Revenue, error) {
	cost := s.cost(costPerVisit)
	if err := pricing.CheckInputs(visits, cost); err != nil {
		return nil, err
	}
	plans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.Compare(plans, visits, cost)
}

func (s *PlanService) cost(override *float64) float64 {
	if override != nil {
		return *override
	}
	return s.costPerVisit
}

// Package services содержит бизнес-логику покупки, продления и отмены подписок.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/metrics"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/month"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// Типы событий, публикуемых при изменении подписки. Совпадают с routing key.
const (
	EventPurchased = "subscription.purchased"
	EventRenewed   = "subscription.renewed"
	EventCancelled = "subscription.cancelled"
)

// MaxMonths ограничивает срок одной покупки или продления.
const MaxMonths = 36

// ErrAlreadyCancelled возвращается при изменении отмененной подписки.
var ErrAlreadyCancelled = fmt.Errorf("%w: subscription is cancelled", apperr.ErrConflict)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// GetSubscription возвращает подписку по ID.
	GetSubscription(ctx context.Context, id int) (*models.Subscription, error)
	// ListSubscriptionsByUser возвращает подписки пользователя.
	ListSubscriptionsByUser(ctx context.Context, userUID string) ([]models.Subscription, error)
	// UpdateSubscriptionEnd переносит дату окончания.
	UpdateSubscriptionEnd(ctx context.Context, id int, endDate time.Time) error
	// UpdateSubscriptionStatus меняет статус.
	UpdateSubscriptionStatus(ctx context.Context, id int, status string) error
	// GetPlan возвращает план по ID.
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
}

// EventPublisher отправляет события подписок в брокер.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo      SubscriptionRepository
	publisher EventPublisher
	log       *slog.Logger
	now       func() time.Time
}

// Option настраивает SubscriptionService.
type Option func(*SubscriptionService)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *SubscriptionService) {
		s.now = now
	}
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
// publisher может быть nil, тогда события не отправляются.
func NewSubscriptionService(repo SubscriptionRepository, publisher EventPublisher, log *slog.Logger, opts ...Option) *SubscriptionService {
	s := &SubscriptionService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Buy оформляет подписку пользователя на план с сегодняшнего дня на months месяцев.
func (s *SubscriptionService) Buy(ctx context.Context, userUID string, planID, months int) (models.Subscription, error) {
	const op = "services.subscription.Buy"

	if err := validateMonths(months); err != nil {
		return models.Subscription{}, err
	}
	if _, err := s.repo.GetPlan(ctx, planID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.Subscription{}, fmt.Errorf("%w: plan %d not found", apperr.ErrNotFound, planID)
		}
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	start := s.today()
	sub := models.Subscription{
		UserUID:   userUID,
		PlanID:    planID,
		StartDate: start,
		EndDate:   month.Extend(start, start, months),
		Status:    models.SubscriptionActive,
	}
	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	sub.ID = id

	s.publish(ctx, EventPurchased, sub)
	return sub, nil
}

// Renew продлевает подписку на months месяцев от более поздней из дат: окончания или сегодня.
func (s *SubscriptionService) Renew(ctx context.Context, userUID string, id, months int) (models.Subscription, error) {
	const op = "services.subscription.Renew"

	if err := validateMonths(months); err != nil {
		return models.Subscription{}, err
	}
	sub, err := s.owned(ctx, userUID, id)
	if err != nil {
		return models.Subscription{}, err
	}
	if sub.Status == models.SubscriptionCancelled {
		return models.Subscription{}, ErrAlreadyCancelled
	}

	sub.EndDate = month.Extend(sub.EndDate, s.today(), months)

	if err := s.repo.UpdateSubscriptionEnd(ctx, id, sub.EndDate); err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, EventRenewed, sub)
	return sub, nil
}

// Cancel отменяет подписку пользователя.
func (s *SubscriptionService) Cancel(ctx context.Context, userUID string, id int) (models.Subscription, error) {
	const op = "services.subscription.Cancel"

	sub, err := s.owned(ctx, userUID, id)
	if err != nil {
		return models.Subscription{}, err
	}
	if sub.Status == models.SubscriptionCancelled {
		return models.Subscription{}, ErrAlreadyCancelled
	}

	if err := s.repo.UpdateSubscriptionStatus(ctx, id, models.SubscriptionCancelled); err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	sub.Status = models.SubscriptionCancelled

	s.publish(ctx, EventCancelled, sub)
	return sub, nil
}

// List возвращает подписки пользователя, новые первыми.
func (s *SubscriptionService) List(ctx context.Context, userUID string) ([]models.Subscription, error) {
	const op = "services.subscription.List"

	subs, err := s.repo.ListSubscriptionsByUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	today := s.today()
	for i := range subs {
		if subs[i].Status == models.SubscriptionActive {
			subs[i].MonthsLeft = month.Remaining(subs[i].EndDate, today)
		}
	}
	return subs, nil
}

// owned возвращает подписку, только если она принадлежит пользователю.
// Чужая подписка неотличима от несуществующей.
func (s *SubscriptionService) owned(ctx context.Context, userUID string, id int) (models.Subscription, error) {
	const op = "services.subscription.owned"

	sub, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.Subscription{}, notFound(id)
		}
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	if sub.UserUID != userUID {
		return models.Subscription{}, notFound(id)
	}
	return *sub, nil
}

func (s *SubscriptionService) publish(ctx context.Context, eventType string, sub models.Subscription) {
	if s.publisher == nil {
		return
	}
	event := models.SubscriptionEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		OccurredAt:   s.now().UTC(),
		Subscription: sub,
	}
	if err := s.publisher.Publish(ctx, eventType, event); err != nil {
		s.log.Error("failed to publish subscription event",
			slog.String("type", eventType),
			slog.Int("subscription_id", sub.ID),
			sl.Err(err),
		)
		metrics.RecordSubscriptionEvent(eventType, false)
		return
	}
	metrics.RecordSubscriptionEvent(eventType, true)
}

func (s *SubscriptionService) today() time.Time {
	return month.Date(s.now())
}

func validateMonths(months int) error {
	if months < 1 || months > MaxMonths {
		return apperr.Validation("months must be in range [1, %d]", MaxMonths)
	}
	return nil
}

func notFound(id int) error {
	return fmt.Errorf("%w: subscription %d not found", apperr.ErrNotFound, id)
}

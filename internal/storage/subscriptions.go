package storage

import (
	"context"
	"time"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

const subscriptionColumns = `id, user_uid, plan_id, start_date, end_date, status`

func scanSubscription(row rowScanner) (models.Subscription, error) {
	var sub models.Subscription
	err := row.Scan(&sub.ID, &sub.UserUID, &sub.PlanID, &sub.StartDate, &sub.EndDate, &sub.Status)
	return sub, err
}

// CreateSubscription вставляет подписку и возвращает её ID.
// Несуществующий план или пользователь дают apperr.ErrNotFound.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	const op = "storage.CreateSubscription"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO subscriptions (user_uid, plan_id, start_date, end_date, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var id int
	if err := s.DB.QueryRowContext(ctx, query,
		sub.UserUID, sub.PlanID, sub.StartDate, sub.EndDate, sub.Status).Scan(&id); err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// GetSubscription возвращает подписку по ID.
func (s *Storage) GetSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(op, err)
	}
	return &sub, nil
}

// ListSubscriptionsByUser возвращает подписки пользователя, новые первыми.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userUID string) ([]models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE user_uid = $1
			  ORDER BY start_date DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		result = append(result, sub)
	}
	if err = rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return result, nil
}

// UpdateSubscriptionEnd переносит дату окончания активной подписки.
func (s *Storage) UpdateSubscriptionEnd(ctx context.Context, id int, endDate time.Time) error {
	const op = "storage.UpdateSubscriptionEnd"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `UPDATE subscriptions SET end_date = $1 WHERE id = $2 AND status = $3`
	return s.execOne(ctx, op, query, endDate, id, models.SubscriptionActive)
}

// UpdateSubscriptionStatus меняет статус подписки.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id int, status string) error {
	const op = "storage.UpdateSubscriptionStatus"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `UPDATE subscriptions SET status = $1 WHERE id = $2`
	return s.execOne(ctx, op, query, status, id)
}

func (s *Storage) execOne(ctx context.Context, op, query string, args ...any) error {
	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return mapError(op, err)
	}
	if n == 0 {
		return mapError(op, apperr.ErrNotFound)
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

const planColumns = `id, name, price, included_visits, extra_visit_price, services`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (models.Plan, error) {
	var (
		p        models.Plan
		included sql.NullInt64
		services []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &included, &p.ExtraVisitPrice, &services); err != nil {
		return models.Plan{}, err
	}
	// NULL в included_visits означает безлимит.
	if included.Valid {
		p.IncludedVisits = models.Limited(int(included.Int64))
	} else {
		p.IncludedVisits = models.Unlimited()
	}
	if err := json.Unmarshal(services, &p.Services); err != nil {
		return models.Plan{}, fmt.Errorf("decode services of plan %d: %w", p.ID, err)
	}
	return p, nil
}

// ListPlans возвращает весь каталог по возрастанию цены.
func (s *Storage) ListPlans(ctx context.Context) ([]models.Plan, error) {
	const op = "storage.ListPlans"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + planColumns + ` FROM plans ORDER BY price, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPlan возвращает план по ID или apperr.ErrNotFound.
func (s *Storage) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	const op = "storage.GetPlan"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`
	p, err := scanPlan(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(op, err)
	}
	return &p, nil
}

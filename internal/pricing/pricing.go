// Package pricing содержит расчёт выручки, себестоимости и прибыли тарифных планов.
//
// Все функции чистые: они не обращаются к хранилищу и безопасны
// для параллельного вызова.
package pricing

import (
	"math"
	"sort"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// DefaultCostPerVisit себестоимость одного визита для клиники.
const DefaultCostPerVisit = 10.0

// MaxSimulationVisits ограничивает длину кривой прибыльности.
const MaxSimulationVisits = 1000

// ExtraVisits возвращает число визитов сверх включённых в план.
// Для безлимитного плана всегда 0.
func ExtraVisits(plan models.Plan, visits int) int {
	included, limited := plan.IncludedVisits.Count()
	if !limited {
		return 0
	}
	return max(visits-included, 0)
}

// Compute рассчитывает выручку, себестоимость и прибыль плана для visits визитов.
//
// Отрицательные visits и costPerVisit являются нарушением контракта вызывающей
// стороной, значения не обрезаются. Прибыль может быть отрицательной.
func Compute(plan models.Plan, visits int, costPerVisit float64) (models.Revenue, error) {
	if err := CheckInputs(visits, costPerVisit); err != nil {
		return models.Revenue{}, err
	}

	extra := ExtraVisits(plan, visits)
	revenue := plan.Price + float64(extra)*plan.ExtraVisitPrice
	cost := float64(visits) * costPerVisit

	return models.Revenue{
		Plan:         plan.Name,
		Visits:       visits,
		ExtraVisits:  extra,
		CostPerVisit: costPerVisit,
		Revenue:      revenue,
		Cost:         cost,
		Profit:       revenue - cost,
	}, nil
}

// CheckInputs проверяет число визитов и себестоимость визита.
func CheckInputs(visits int, costPerVisit float64) error {
	if visits < 0 {
		return apperr.Validation("visits must be a non-negative integer, got %d", visits)
	}
	return checkCost(costPerVisit)
}

func checkCost(costPerVisit float64) error {
	if costPerVisit < 0 || math.IsNaN(costPerVisit) || math.IsInf(costPerVisit, 0) {
		return apperr.Validation("cost per visit must be a non-negative number")
	}
	return nil
}

// floorVisits округляет число визитов вниз. false, если результат не помещается в int.
func floorVisits(x float64) (int, bool) {
	x = math.Floor(x)
	if x >= math.MaxInt {
		return 0, false
	}
	return int(x), true
}

// BreakEven возвращает наибольшее число визитов, при котором прибыль
// плана ещё неотрицательна. nil означает, что прибыль не уходит в минус
// ни при каком числе визитов.
//
// Точка безубыточности за пределами int трактуется как ее отсутствие.
func BreakEven(plan models.Plan, costPerVisit float64) (*int, error) {
	if err := checkCost(costPerVisit); err != nil {
		return nil, err
	}
	if costPerVisit == 0 {
		return nil, nil
	}

	included, limited := plan.IncludedVisits.Count()
	if !limited || plan.Price-float64(included)*costPerVisit < 0 {
		v, ok := floorVisits(plan.Price / costPerVisit)
		if !ok {
			return nil, nil
		}
		return &v, nil
	}

	// Сверх лимита прибыль меняется на (extra - cost) за визит.
	margin := costPerVisit - plan.ExtraVisitPrice
	if margin <= 0 {
		return nil, nil
	}
	over, ok := floorVisits((plan.Price - float64(included)*costPerVisit) / margin)
	if !ok || over > math.MaxInt-included {
		return nil, nil
	}
	v := included + over
	return &v, nil
}

// Simulate строит кривую прибыльности для визитов 0..maxVisits включительно.
func Simulate(plan models.Plan, maxVisits int, costPerVisit float64) (models.Simulation, error) {
	if err := CheckSimulation(maxVisits, costPerVisit); err != nil {
		return models.Simulation{}, err
	}
	breakEven, err := BreakEven(plan, costPerVisit)
	if err != nil {
		return models.Simulation{}, err
	}

	points := make([]models.Revenue, 0, maxVisits+1)
	for v := 0; v <= maxVisits; v++ {
		r, err := Compute(plan, v, costPerVisit)
		if err != nil {
			return models.Simulation{}, err
		}
		points = append(points, r)
	}
	return models.Simulation{
		Plan:      plan.Name,
		MaxVisits: maxVisits,
		BreakEven: breakEven,
		Points:    points,
	}, nil
}

// CheckSimulation проверяет длину кривой и себестоимость визита.
func CheckSimulation(maxVisits int, costPerVisit float64) error {
	if maxVisits < 0 || maxVisits > MaxSimulationVisits {
		return apperr.Validation("max visits must be in range [0, %d]", MaxSimulationVisits)
	}
	return checkCost(costPerVisit)
}

// Compare считает выручку всех планов при одном и том же числе визитов,
// сохраняя порядок каталога.
func Compare(plans []models.Plan, visits int, costPerVisit float64) ([]models.Revenue, error) {
	out := make([]models.Revenue, 0, len(plans))
	for _, p := range plans {
		r, err := Compute(p, visits, costPerVisit)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// SortCatalog упорядочивает планы по возрастанию цены, при равной цене по ID.
func SortCatalog(plans []models.Plan) {
	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].Price != plans[j].Price {
			return plans[i].Price < plans[j].Price
		}
		return plans[i].ID < plans[j].ID
	})
}

package pricing

import "github.com/magabrotheeeer/health-subscriptions/internal/models"

// Catalog возвращает четыре фиксированных плана в порядке возрастания цены.
// Те же значения засеваются миграцией в таблицу plans.
func Catalog() []models.Plan {
	return []models.Plan{
		{
			ID:              1,
			Name:            "Lite Care Pack",
			Price:           25,
			IncludedVisits:  models.Limited(2),
			ExtraVisitPrice: 15,
			Services:        []string{"Basic check-ups"},
		},
		{
			ID:              2,
			Name:            "Standard Health Pack",
			Price:           45,
			IncludedVisits:  models.Limited(4),
			ExtraVisitPrice: 20,
			Services:        []string{"Basic check-ups", "Blood analysis"},
		},
		{
			ID:              3,
			Name:            "Chronic Care Pack",
			Price:           80,
			IncludedVisits:  models.Limited(8),
			ExtraVisitPrice: 18,
			Services:        []string{"Blood tests", "X-ray", "ECG"},
		},
		{
			ID:              4,
			Name:            "Unlimited Premium Pack",
			Price:           120,
			IncludedVisits:  models.Unlimited(),
			ExtraVisitPrice: 0,
			Services:        []string{"All diagnostics", "X-ray", "Ultrasound", "Full blood panel"},
		},
	}
}

// FindByName ищет план каталога по точному имени.
func FindByName(plans []models.Plan, name string) (models.Plan, bool) {
	for _, p := range plans {
		if p.Name == name {
			return p, true
		}
	}
	return models.Plan{}, false
}

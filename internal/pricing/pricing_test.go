package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

func planByName(t *testing.T, name string) models.Plan {
	t.Helper()
	p, ok := FindByName(Catalog(), name)
	require.True(t, ok, "plan %q must be in catalog", name)
	return p
}

func TestCompute_Examples(t *testing.T) {
	tests := []struct {
		name        string
		plan        string
		visits      int
		wantExtra   int
		wantRevenue float64
		wantCost    float64
		wantProfit  float64
	}{
		{
			name:        "chronic over the limit",
			plan:        "Chronic Care Pack",
			visits:      10,
			wantExtra:   2,
			wantRevenue: 116,
			wantCost:    100,
			wantProfit:  16,
		},
		{
			name:        "lite under the limit",
			plan:        "Lite Care Pack",
			visits:      1,
			wantExtra:   0,
			wantRevenue: 25,
			wantCost:    10,
			wantProfit:  15,
		},
		{
			name:        "unlimited makes a loss",
			plan:        "Unlimited Premium Pack",
			visits:      50,
			wantExtra:   0,
			wantRevenue: 120,
			wantCost:    500,
			wantProfit:  -380,
		},
		{
			name:        "standard exactly at the limit",
			plan:        "Standard Health Pack",
			visits:      4,
			wantExtra:   0,
			wantRevenue: 45,
			wantCost:    40,
			wantProfit:  5,
		},
		{
			name:        "zero visits",
			plan:        "Chronic Care Pack",
			visits:      0,
			wantExtra:   0,
			wantRevenue: 80,
			wantCost:    0,
			wantProfit:  80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(planByName(t, tt.plan), tt.visits, DefaultCostPerVisit)
			require.NoError(t, err)

			assert.Equal(t, tt.plan, got.Plan)
			assert.Equal(t, tt.visits, got.Visits)
			assert.Equal(t, tt.wantExtra, got.ExtraVisits)
			assert.Equal(t, tt.wantRevenue, got.Revenue)
			assert.Equal(t, tt.wantCost, got.Cost)
			assert.Equal(t, tt.wantProfit, got.Profit)
		})
	}
}

func TestCompute_ExtraVisitsProperty(t *testing.T) {
	for _, plan := range Catalog() {
		included, limited := plan.IncludedVisits.Count()
		for v := 0; v <= 100; v++ {
			got, err := Compute(plan, v, DefaultCostPerVisit)
			require.NoError(t, err)

			switch {
			case !limited:
				assert.Zero(t, got.ExtraVisits, "%s v=%d", plan.Name, v)
			case v >= included:
				assert.Equal(t, v-included, got.ExtraVisits, "%s v=%d", plan.Name, v)
			default:
				assert.Zero(t, got.ExtraVisits, "%s v=%d", plan.Name, v)
			}
			assert.Equal(t, got.Revenue-got.Cost, got.Profit)
		}
	}
}

func TestCompute_UnlimitedIgnoresExtraPrice(t *testing.T) {
	plan := planByName(t, "Unlimited Premium Pack")
	plan.ExtraVisitPrice = 999

	got, err := Compute(plan, 1_000_000, DefaultCostPerVisit)
	require.NoError(t, err)

	assert.Zero(t, got.ExtraVisits)
	assert.Equal(t, 120.0, got.Revenue)
	assert.Equal(t, 10_000_000.0, got.Cost)
}

func TestCompute_FractionalPrices(t *testing.T) {
	plan := models.Plan{Name: "Custom", Price: 19.5, IncludedVisits: models.Limited(1), ExtraVisitPrice: 7.25}

	got, err := Compute(plan, 3, 2.5)
	require.NoError(t, err)

	assert.Equal(t, 2, got.ExtraVisits)
	assert.Equal(t, 34.0, got.Revenue)
	assert.Equal(t, 7.5, got.Cost)
	assert.Equal(t, 26.5, got.Profit)
}

func TestCompute_RejectsInvalidInput(t *testing.T) {
	plan := planByName(t, "Lite Care Pack")

	_, err := Compute(plan, -1, DefaultCostPerVisit)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = Compute(plan, 1, -0.01)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestBreakEven(t *testing.T) {
	ptr := func(v int) *int { return &v }

	tests := []struct {
		name string
		plan models.Plan
		cost float64
		want *int
	}{
		{name: "unlimited", plan: planByName(t, "Unlimited Premium Pack"), cost: 10, want: ptr(12)},
		{name: "chronic extra price covers cost", plan: planByName(t, "Chronic Care Pack"), cost: 10, want: nil},
		{name: "lite with expensive visits", plan: planByName(t, "Lite Care Pack"), cost: 20, want: ptr(1)},
		{name: "zero cost never loses", plan: planByName(t, "Unlimited Premium Pack"), cost: 0, want: nil},
		{
			name: "loses beyond the limit",
			plan: models.Plan{Price: 45, IncludedVisits: models.Limited(4), ExtraVisitPrice: 5},
			cost: 10,
			want: ptr(5),
		},
		{name: "tiny cost beyond int range", plan: planByName(t, "Unlimited Premium Pack"), cost: 1e-300, want: nil},
		{
			name: "tiny margin beyond int range",
			plan: models.Plan{Price: 100, IncludedVisits: models.Limited(1), ExtraVisitPrice: 1e-300},
			cost: 2e-300,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BreakEven(tt.plan, tt.cost)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if got != nil {
				at, err := Compute(tt.plan, *got, tt.cost)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, at.Profit, 0.0)

				next, err := Compute(tt.plan, *got+1, tt.cost)
				require.NoError(t, err)
				assert.Less(t, next.Profit, 0.0)
			}
		})
	}
}

func TestCheckInputs(t *testing.T) {
	assert.NoError(t, CheckInputs(0, 0))
	assert.NoError(t, CheckInputs(5, 10))
	assert.ErrorIs(t, CheckInputs(-1, 10), apperr.ErrValidation)
	assert.ErrorIs(t, CheckInputs(1, -1), apperr.ErrValidation)
	assert.ErrorIs(t, CheckInputs(1, math.Inf(1)), apperr.ErrValidation)

	assert.NoError(t, CheckSimulation(MaxSimulationVisits, 0))
	assert.ErrorIs(t, CheckSimulation(MaxSimulationVisits+1, 10), apperr.ErrValidation)
	assert.ErrorIs(t, CheckSimulation(5, math.NaN()), apperr.ErrValidation)
}

func TestSimulate_TinyCostHasNoBreakEven(t *testing.T) {
	sim, err := Simulate(planByName(t, "Unlimited Premium Pack"), 3, 1e-300)
	require.NoError(t, err)
	assert.Nil(t, sim.BreakEven)
}

func TestSimulate(t *testing.T) {
	plan := planByName(t, "Unlimited Premium Pack")

	sim, err := Simulate(plan, 20, DefaultCostPerVisit)
	require.NoError(t, err)

	assert.Equal(t, plan.Name, sim.Plan)
	assert.Len(t, sim.Points, 21)
	require.NotNil(t, sim.BreakEven)
	assert.Equal(t, 12, *sim.BreakEven)
	for i, p := range sim.Points {
		assert.Equal(t, i, p.Visits)
	}
	assert.Equal(t, -80.0, sim.Points[20].Profit)

	_, err = Simulate(plan, MaxSimulationVisits+1, DefaultCostPerVisit)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = Simulate(plan, -1, DefaultCostPerVisit)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCompare_KeepsCatalogOrder(t *testing.T) {
	got, err := Compare(Catalog(), 10, DefaultCostPerVisit)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Lite Care Pack", got[0].Plan)
	assert.Equal(t, 145.0, got[0].Revenue)
	assert.Equal(t, "Standard Health Pack", got[1].Plan)
	assert.Equal(t, 165.0, got[1].Revenue)
	assert.Equal(t, "Chronic Care Pack", got[2].Plan)
	assert.Equal(t, 116.0, got[2].Revenue)
	assert.Equal(t, "Unlimited Premium Pack", got[3].Plan)
	assert.Equal(t, 120.0, got[3].Revenue)

	_, err = Compare(Catalog(), -3, DefaultCostPerVisit)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSortCatalog(t *testing.T) {
	plans := Catalog()
	plans[0], plans[3] = plans[3], plans[0]
	plans = append(plans, models.Plan{ID: 0, Name: "Promo", Price: 45})

	SortCatalog(plans)

	names := make([]string, 0, len(plans))
	for _, p := range plans {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Lite Care Pack", "Promo", "Standard Health Pack", "Chronic Care Pack", "Unlimited Premium Pack",
	}, names)
}

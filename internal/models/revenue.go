package models

// Revenue результат расчёта выручки и прибыли плана при заданном числе визитов.
type Revenue struct {
	Plan         string  `json:"plan"`
	Visits       int     `json:"visits"`
	ExtraVisits  int     `json:"extra_visits"`
	CostPerVisit float64 `json:"cost_per_visit"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	Profit       float64 `json:"profit"`
}

// Simulation кривая прибыльности плана для визитов 0..MaxVisits.
type Simulation struct {
	Plan      string    `json:"plan"`
	MaxVisits int       `json:"max_visits"`
	BreakEven *int      `json:"break_even_visits"`
	Points    []Revenue `json:"points"`
}

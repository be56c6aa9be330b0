package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnlimitedMarker представление безлимитного числа визитов во внешнем формате.
const UnlimitedMarker = "Unlimited"

// Visits число включённых в план визитов: либо конечное значение,
// либо безлимит. Нулевое значение означает ограничение в 0 визитов.
type Visits struct {
	n         int
	unlimited bool
}

// Limited возвращает ограниченное число визитов.
func Limited(n int) Visits {
	return Visits{n: n}
}

// Unlimited возвращает безлимитное число визитов.
func Unlimited() Visits {
	return Visits{unlimited: true}
}

// IsUnlimited сообщает, что план не ограничивает число визитов.
func (v Visits) IsUnlimited() bool {
	return v.unlimited
}

// Count возвращает число визитов и false для безлимита.
func (v Visits) Count() (int, bool) {
	if v.unlimited {
		return 0, false
	}
	return v.n, true
}

func (v Visits) String() string {
	if v.unlimited {
		return UnlimitedMarker
	}
	return fmt.Sprintf("%d", v.n)
}

// MarshalJSON кодирует безлимит как строку "Unlimited", а лимит как число.
func (v Visits) MarshalJSON() ([]byte, error) {
	if v.unlimited {
		return json.Marshal(UnlimitedMarker)
	}
	return json.Marshal(v.n)
}

// UnmarshalJSON принимает неотрицательное целое или строку "Unlimited".
// null оставляет значение без изменений.
func (v *Visits) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != UnlimitedMarker {
			return fmt.Errorf("models.Visits: unexpected marker %q", s)
		}
		*v = Unlimited()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("models.Visits: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("models.Visits: negative value %d", n)
	}
	*v = Limited(n)
	return nil
}

// Plan неизменяемый тарифный план.
//
// Для безлимитного плана ExtraVisitPrice хранится, но никогда не применяется.
type Plan struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	IncludedVisits  Visits   `json:"included_visits"`
	ExtraVisitPrice float64  `json:"extra_visit_price"`
	Services        []string `json:"services"`
}

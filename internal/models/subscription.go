package models

import "time"

// Статусы подписки.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
)

// Subscription связывает пользователя с планом на интервал дат.
// EndDate не включается в период действия.
type Subscription struct {
	ID        int       `json:"id"`
	UserUID   string    `json:"user_uid"`
	PlanID    int       `json:"plan_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`

	// MonthsLeft полных месяцев до окончания, заполняется только при выдаче списка.
	MonthsLeft int `json:"months_left"`
}

// SubscriptionEvent публикуется в брокер при изменении подписки.
type SubscriptionEvent struct {
	EventID      string       `json:"event_id"`
	Type         string       `json:"type"`
	OccurredAt   time.Time    `json:"occurred_at"`
	Subscription Subscription `json:"subscription"`
}

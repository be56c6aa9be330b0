// Package month содержит календарную арифметику сроков подписки.
package month

import (
	"time"
)

// Date отбрасывает время суток и переводит t в UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Extend продлевает срок на months месяцев от более поздней из дат end и today.
// Переполнение дня месяца нормализуется как в time.AddDate: 31 января + 1 месяц = 3 марта.
func Extend(end, today time.Time, months int) time.Time {
	base := end
	if today.After(base) {
		base = today
	}
	return base.AddDate(0, months, 0)
}

// Remaining считает полные месяцы от today до end. Для истекшего срока 0.
func Remaining(end, today time.Time) int {
	if !today.Before(end) {
		return 0
	}

	monthsDiff := (end.Year()-today.Year())*12 + int(end.Month()) - int(today.Month())

	// Неполный последний месяц не считается, AddDate может перешагнуть end
	for monthsDiff > 0 && today.AddDate(0, monthsDiff, 0).After(end) {
		monthsDiff--
	}
	return monthsDiff
}

package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDate(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	assert.Equal(t, date(2025, 1, 31), Date(time.Date(2025, 1, 31, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, date(2025, 1, 31), Date(time.Date(2025, 2, 1, 1, 0, 0, 0, msk)))
}

func TestExtend_TableTests(t *testing.T) {
	tests := []struct {
		name   string
		end    time.Time
		today  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "new subscription starts today",
			end:    date(2025, 3, 10),
			today:  date(2025, 3, 10),
			months: 3,
			want:   date(2025, 6, 10),
		},
		{
			name:   "active subscription extends from end",
			end:    date(2025, 6, 10),
			today:  date(2025, 3, 10),
			months: 1,
			want:   date(2025, 7, 10),
		},
		{
			name:   "expired subscription extends from today",
			end:    date(2024, 12, 1),
			today:  date(2025, 3, 10),
			months: 2,
			want:   date(2025, 5, 10),
		},
		{
			name:   "day overflow is normalized",
			end:    date(2025, 1, 31),
			today:  date(2025, 1, 31),
			months: 1,
			want:   date(2025, 3, 3),
		},
		{
			name:   "year boundary",
			end:    date(2025, 11, 15),
			today:  date(2025, 1, 1),
			months: 3,
			want:   date(2026, 2, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extend(tt.end, tt.today, tt.months))
		})
	}
}

func TestRemaining_TableTests(t *testing.T) {
	tests := []struct {
		name  string
		end   time.Time
		today time.Time
		want  int
	}{
		{"expired", date(2025, 1, 1), date(2025, 2, 1), 0},
		{"ends today", date(2025, 2, 1), date(2025, 2, 1), 0},
		{"less than a month", date(2025, 2, 20), date(2025, 2, 1), 0},
		{"exactly one month", date(2025, 3, 1), date(2025, 2, 1), 1},
		{"partial second month", date(2025, 3, 15), date(2025, 1, 20), 1},
		{"across year", date(2026, 2, 15), date(2025, 11, 15), 3},
		{"month end overflow", date(2025, 3, 1), date(2025, 1, 31), 0},
		{"month end overflow keeps earlier months", date(2025, 5, 1), date(2025, 1, 31), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(tt.end, tt.today))
		})
	}
}

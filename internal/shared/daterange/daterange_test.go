package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rikimaka/internal/shared/daterange"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	periodStart := date("2024-07-01")
	periodEnd := date("2024-07-15")

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"candidate enters period from the left", "2024-06-25", "2024-07-02", true},
		{"candidate starts after period ends", "2024-07-16", "2024-07-20", false},
		{"candidate fully inside period", "2024-07-05", "2024-07-10", true},
		{"candidate contains period", "2024-06-01", "2024-08-01", true},
		{"candidate ends exactly on period start", "2024-06-20", "2024-07-01", true},
		{"candidate starts exactly on period end", "2024-07-15", "2024-07-30", true},
		{"candidate ends the day before period", "2024-06-20", "2024-06-30", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := daterange.Overlaps(date(tc.start), date(tc.end), periodStart, periodEnd)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOverlapsIgnoresTimeComponents(t *testing.T) {
	// 23:59 on the period's last day still conflicts.
	start := time.Date(2024, 7, 15, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 7, 20, 1, 0, 0, 0, time.UTC)

	assert.True(t, daterange.Overlaps(start, end, date("2024-07-01"), date("2024-07-15")))
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"three day span", "2024-06-10", "2024-06-12", 3},
		{"single day", "2024-06-10", "2024-06-10", 1},
		{"two weeks", "2024-07-01", "2024-07-14", 14},
		{"across month boundary", "2024-06-28", "2024-07-02", 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, daterange.InclusiveDays(date(tc.start), date(tc.end)))
		})
	}
}

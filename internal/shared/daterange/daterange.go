// Package daterange holds the day-granularity interval arithmetic shared by
// the vacation workflow and the calendar feed. Bounds are always inclusive.
package daterange

import (
	"math"
	"time"
)

// Day zeroes the time components, keeping year/month/day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether [start,end] intersects [periodStart,periodEnd]
// with closed-interval semantics: start <= periodEnd && end >= periodStart.
// Adjacent ranges that share no day do not overlap.
func Overlaps(start, end, periodStart, periodEnd time.Time) bool {
	s, e := Day(start), Day(end)
	ps, pe := Day(periodStart), Day(periodEnd)
	return !s.After(pe) && !e.Before(ps)
}

// InclusiveDays is the day count of [start,end], both ends included:
// ceil((end-start)/1d) + 1. A single-day range counts as 1.
func InclusiveDays(start, end time.Time) int {
	diff := Day(end).Sub(Day(start))
	return int(math.Ceil(diff.Hours()/24)) + 1
}

package youversion

import (
	"fmt"
	"time"
)

// Day-of-year helpers for picking a verse-of-the-day argument.

// DayOfYear returns the day of the year for t, 1..366.
func DayOfYear(t time.Time) int { return t.YearDay() }

// CurrentDayOfYear returns today's day of the year.
func CurrentDayOfYear() int { return time.Now().YearDay() }

// DayOfYearFromUnix returns the day of the year for a Unix timestamp,
// interpreted in local time.
func DayOfYearFromUnix(sec int64) int { return time.Unix(sec, 0).YearDay() }

// dayLayouts are tried in order by DayOfYearFromISO.
var dayLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// DayOfYearFromISO returns the day of the year for an ISO 8601 date or
// timestamp string ("2024-03-30", "2024-03-30T12:00:00Z").
func DayOfYearFromISO(s string) (int, error) {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.YearDay(), nil
		}
	}
	return 0, fmt.Errorf("not an ISO date: %q", s)
}

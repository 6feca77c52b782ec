// utils/dates.go
package utils

import (
	"strconv"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// MonthRangeUTC returns the inclusive window covering one calendar month,
// from the first day at 00:00:00.000 UTC to the last day at 23:59:59.999 UTC.
// month0 is zero-based (0 = January), matching how the wire month numbers are
// converted before range math.
func MonthRangeUTC(year, month0 int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// YearRangeUTC returns the inclusive window covering a whole calendar year.
func YearRangeUTC(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999000000, time.UTC)
	return start, end
}

// ParseDate accepts the two date shapes the client sends: a bare calendar
// date from <input type="date"> and a full RFC 3339 timestamp. The result is
// normalized to UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// BirthdayInMonth reports whether the month segment of a YYYY-MM-DD date
// string numerically equals the filter month ("7" and "07" both match July).
// An empty or malformed filter never matches.
func BirthdayInMonth(dob, month string) bool {
	if month == "" || len(dob) < 8 {
		return false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	dm, err := strconv.Atoi(dob[5:7])
	return err == nil && dm == m
}

// MonthSegment converts a 1-12 month parameter into the zero-padded segment
// used by date-of-birth matching ("7" -> "07"). ok is false for anything that
// does not parse as a valid month, which callers treat as "no filter".
func MonthSegment(month string) (string, bool) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	if m < 10 {
		return "0" + strconv.Itoa(m), true
	}
	return strconv.Itoa(m), true
}

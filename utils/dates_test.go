package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBirthdayInMonth(t *testing.T) {
	cases := []struct {
		dob, month string
		want       bool
	}{
		{"1990-07-15", "7", true},
		{"1990-07-15", "07", true},
		{"1990-07-15", "6", false},
		{"1990-07-15", "", false},
		{"1990-07-15", "13", false},
		{"1990-07-15", "0", false},
		{"1990-07-15", "abc", false},
		{"1990-12-01", "12", true},
		{"", "7", false},
		{"07", "7", false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, BirthdayInMonth(tc.dob, tc.month), "dob=%q month=%q", tc.dob, tc.month)
	}
}

func TestMonthSegment(t *testing.T) {
	seg, ok := MonthSegment("7")
	assert.True(t, ok)
	assert.Equal(t, "07", seg)

	seg, ok = MonthSegment("12")
	assert.True(t, ok)
	assert.Equal(t, "12", seg)

	for _, bad := range []string{"", "0", "13", "x"} {
		_, ok := MonthSegment(bad)
		assert.Falsef(t, ok, "month=%q", bad)
	}
}

func TestMonthRangeUTC(t *testing.T) {
	start, end := MonthRangeUTC(2024, 1) // February, leap year
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), end)

	start, end = MonthRangeUTC(2024, 11)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestYearRangeUTC(t *testing.T) {
	start, end := YearRangeUTC(2024)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-03-05")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseDate("2024-03-05T14:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC), got)

	_, ok = ParseDate("05/03/2024")
	assert.False(t, ok)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.May, 13, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

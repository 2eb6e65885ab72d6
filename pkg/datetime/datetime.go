// Package datetime provides date and time utility functions.
package datetime

import (
	"math"
	"time"

	"github.com/loantools/payoff-planner/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the
	// output date format for monthly ledger entries.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParsePeriod parses a year-month string such as "2024-01".
func ParsePeriod(date string) (time.Time, error) {
	return time.Parse(DateTimeLayout, date)
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// SameYearMonth reports whether two dates fall in the same calendar year and
// month. Two bi-weekly periods can share a month, so both components must be
// compared.
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ApproxMonthsBetween returns the approximate number of calendar months from
// first to second, using an average month length of 30.44 days. The result is
// negative when second is before first.
func ApproxMonthsBetween(first, second time.Time) int {
	days := second.Sub(first).Hours() / 24
	return int(math.Round(days / constants.DaysPerMonth))
}

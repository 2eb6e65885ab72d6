package datetime

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "Valid year-month", input: "2024-01", expectErr: false},
		{name: "Valid December", input: "2053-12", expectErr: false},
		{name: "Full date rejected", input: "2024-01-15", expectErr: true},
		{name: "Month name rejected", input: "January 2024", expectErr: true},
		{name: "Empty string rejected", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePeriod(tt.input)
			if (err != nil) != tt.expectErr {
				t.Errorf("ParsePeriod(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
		})
	}
}

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
	}{
		{name: "Forward one month", date: "2024-01", months: 1, expected: "2024-02"},
		{name: "Across year boundary", date: "2024-12", months: 1, expected: "2025-01"},
		{name: "Backward one month", date: "2024-01", months: -1, expected: "2023-12"},
		{name: "Two years forward", date: "2024-03", months: 24, expected: "2026-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if err != nil {
				t.Fatalf("OffsetDate() returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("OffsetDate(%q, %d) = %q, want %q", tt.date, tt.months, got, tt.expected)
			}
		})
	}
}

func TestSameYearMonth(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{name: "Same month", a: "2024-01-01", b: "2024-01-29", expected: true},
		{name: "Same month different year", a: "2024-01-01", b: "2025-01-01", expected: false},
		{name: "Adjacent months", a: "2024-01-29", b: "2024-02-12", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseTime("2006-01-02", tt.a)
			b := MustParseTime("2006-01-02", tt.b)
			if got := SameYearMonth(a, b); got != tt.expected {
				t.Errorf("SameYearMonth(%v, %v) = %v, want %v", a, b, got, tt.expected)
			}
		})
	}
}

func TestApproxMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected int
	}{
		{name: "One year", first: "2049-01", second: "2050-01", expected: 12},
		{name: "Four years one month", first: "2049-11", second: "2053-12", expected: 49},
		{name: "Five months", first: "2049-01", second: "2049-06", expected: 5},
		{name: "Same date", first: "2049-01", second: "2049-01", expected: 0},
		{name: "Negative when reversed", first: "2050-01", second: "2049-01", expected: -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := MustParseTime(DateTimeLayout, tt.first)
			second := MustParseTime(DateTimeLayout, tt.second)
			if got := ApproxMonthsBetween(first, second); got != tt.expected {
				t.Errorf("ApproxMonthsBetween(%s, %s) = %d, want %d", tt.first, tt.second, got, tt.expected)
			}
		})
	}
}

func TestMustParseTimePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParseTime with a bad date should panic")
		}
	}()
	MustParseTime(DateTimeLayout, "not-a-date")
}

func TestParsePeriodFirstOfMonth(t *testing.T) {
	got, err := ParsePeriod("2024-03")
	if err != nil {
		t.Fatalf("ParsePeriod() returned error: %v", err)
	}
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParsePeriod(\"2024-03\") = %v, want %v", got, want)
	}
}

package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-08-01", "2026-08-10", 9},
		{"2026-08-01", "2026-08-01", 0},
		{"2026-08-10", "2026-08-01", 0},
	}
	for _, tc := range cases {
		s, _ := ParseDate(tc.start)
		e, _ := ParseDate(tc.end)
		if got := DaysBetween(s, e); got != tc.want {
			t.Fatalf("DaysBetween(%s,%s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDaysBetweenAcrossDSTShift(t *testing.T) {
	// A spring-forward night is only 23 wall-clock hours; the count must
	// still be a full calendar day.
	est := time.FixedZone("UTC-5", -5*3600)
	edt := time.FixedZone("UTC-4", -4*3600)
	start := time.Date(2026, time.March, 8, 0, 0, 0, 0, est)
	end := time.Date(2026, time.March, 9, 0, 0, 0, 0, edt)

	if got := DaysBetween(start, end); got != 1 {
		t.Fatalf("DaysBetween across offset change = %d, want 1", got)
	}
	if got := DaysInclusive(start, end); got != 2 {
		t.Fatalf("DaysInclusive across offset change = %d, want 2", got)
	}
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-08-01", "2026-08-05", 5},
		{"2026-08-01", "2026-08-01", 1},
		{"2026-08-05", "2026-08-01", 0},
	}
	for _, tc := range cases {
		s, err := ParseDate(tc.start)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.start, err)
		}
		e, err := ParseDate(tc.end)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.end, err)
		}
		if got := DaysInclusive(s, e); got != tc.want {
			t.Fatalf("DaysInclusive(%s,%s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestOverlapDays(t *testing.T) {
	aStart, _ := ParseDate("2026-07-28")
	aEnd, _ := ParseDate("2026-08-03")
	bStart, bEnd := MonthBounds(8, 2026)

	if got := OverlapDays(aStart, aEnd, bStart, bEnd); got != 3 {
		t.Fatalf("overlap = %d, want 3", got)
	}

	cStart, _ := ParseDate("2026-06-01")
	cEnd, _ := ParseDate("2026-06-10")
	if got := OverlapDays(cStart, cEnd, bStart, bEnd); got != 0 {
		t.Fatalf("disjoint overlap = %d, want 0", got)
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2, 2024)
	if FormatDate(first) != "2024-02-01" {
		t.Fatalf("first = %s", FormatDate(first))
	}
	if FormatDate(last) != "2024-02-29" {
		t.Fatalf("last = %s", FormatDate(last))
	}
}

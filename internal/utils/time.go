package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// DaysBetween returns end-start in whole calendar days, never negative.
// Both ends are normalized to their date so clock times and DST offset
// shifts cannot skew the count.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	d := int(e.Sub(s).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// DaysInclusive counts booked days including both endpoints. A same-day
// booking occupies one day.
func DaysInclusive(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return DaysBetween(start, end) + 1
}

// OverlapDays counts days of [aStart,aEnd] that fall inside [bStart,bEnd],
// both ranges inclusive.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	if aStart.Before(bStart) {
		aStart = bStart
	}
	if aEnd.After(bEnd) {
		aEnd = bEnd
	}
	return DaysInclusive(aStart, aEnd)
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Package period implements the calendar arithmetic behind budget periods.
// Every function here is pure: the same inputs always give the same date.
package period

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the length of one budget period step.
type Unit string

const (
	Days   Unit = "DAYS"
	Weeks  Unit = "WEEKS"
	Months Unit = "MONTHS"
	Years  Unit = "YEARS"
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	switch u {
	case Days, Weeks, Months, Years:
		return true
	}
	return false
}

// ParseUnit parses a unit name case-insensitively. An empty string yields
// the empty (absent) unit.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return "", nil
	}
	u := Unit(strings.ToUpper(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("unknown period unit %q", s)
	}
	return u, nil
}

// EndDate returns the inclusive last day of a period that starts on start
// and spans count units. It returns false when start is zero, the unit is
// absent or unknown, or count is not positive.
//
// DAYS adds count-1 days. WEEKS, MONTHS and YEARS add count units and step
// back one day. Month and year steps clamp to the last day of the target
// month, so Jan 31 + 1 month lands on Feb 28 (or 29).
func EndDate(start Date, unit Unit, count int) (Date, bool) {
	if start.IsZero() || count <= 0 {
		return Date{}, false
	}
	switch unit {
	case Days:
		return start.AddDays(count - 1), true
	case Weeks:
		return start.AddDays(7*count - 1), true
	case Months:
		return AddMonths(start, count).AddDays(-1), true
	case Years:
		return AddMonths(start, 12*count).AddDays(-1), true
	default:
		return Date{}, false
	}
}

// TotalDays returns the inclusive number of days from start to end, or 0
// when either bound is absent.
func TotalDays(start, end Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return DaysInclusive(start, end)
}

// DaysInclusive returns end - start + 1. It is not clamped, so an end
// before start yields zero or a negative count.
func DaysInclusive(start, end Date) int {
	return start.DaysUntil(end) + 1
}

// AddMonths moves d by n calendar months, clamping the day to the length of
// the target month.
func AddMonths(d Date, n int) Date {
	total := int(d.Month()) - 1 + n
	year := d.Year() + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	day := d.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

// MonthRange returns the first and last day of a calendar month.
func MonthRange(year int, month time.Month) (Date, Date) {
	first := NewDate(year, month, 1)
	return first, NewDate(year, month, daysIn(year, month))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package dateutil

import "time"

// MonthNames holds display names indexed by month-1
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WeekdayNames holds short names in grid order (Monday first)
var WeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// IsLeapYear applies the Gregorian leap year rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
// Months outside 1..12 fall through to 31, like any other long month.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// IsValidDate reports whether year/month/day names a real calendar date
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// WeekdayOf returns the weekday of the given date.
// ok is false when the date does not exist; callers treat that as an unknown weekday.
func WeekdayOf(year, month, day int) (weekday time.Weekday, ok bool) {
	if !IsValidDate(year, month, day) {
		return 0, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).Weekday(), true
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(year, month, day int) bool {
	weekday, ok := WeekdayOf(year, month, day)
	return ok && weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(year, month, day int) bool {
	weekday, ok := WeekdayOf(year, month, day)
	return ok && (weekday == time.Saturday || weekday == time.Sunday)
}

// FirstWeekdayOccurrence returns the smallest day of the month falling on target.
// ok is false if no day of the month could be resolved.
func FirstWeekdayOccurrence(year, month int, target time.Weekday) (day int, ok bool) {
	for d := 1; d <= DaysInMonth(year, month); d++ {
		if weekday, valid := WeekdayOf(year, month, d); valid && weekday == target {
			return d, true
		}
	}
	return 0, false
}

// WeekdayOffsetFromMonday maps Monday to 0 and Sunday to 6
func WeekdayOffsetFromMonday(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// LeadingBlanks returns how many empty cells precede day 1 in a Monday-first grid
func LeadingBlanks(year, month int) int {
	weekday, ok := WeekdayOf(year, month, 1)
	if !ok {
		return 0
	}
	return WeekdayOffsetFromMonday(weekday)
}

// MonthName returns the English month name, or "Invalid Month"
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Invalid Month"
	}
	return MonthNames[month-1]
}

// NextMonth returns the month following year/month
func NextMonth(year, month int) (int, int) {
	if month >= 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// PrevMonth returns the month preceding year/month
func PrevMonth(year, month int) (int, int) {
	if month <= 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// ParseMonth parses a "YYYY-MM" string
func ParseMonth(s string) (year, month int, err error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()), nil
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

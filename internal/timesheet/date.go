package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/friday-calendar/pkg/dateutil"
)

// CalendarDate identifies a day. Validity is not enforced on construction.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// NewCalendarDate builds a CalendarDate
func NewCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// DateFromTime takes the calendar fields of t
func DateFromTime(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseCalendarDate accepts the formats understood by dateutil.ParseDate
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := dateutil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateFromTime(t), nil
}

// Valid reports whether the date exists in the Gregorian calendar
func (d CalendarDate) Valid() bool {
	return dateutil.IsValidDate(d.Year, d.Month, d.Day)
}

// Weekday returns the weekday; ok is false for impossible dates
func (d CalendarDate) Weekday() (time.Weekday, bool) {
	return dateutil.WeekdayOf(d.Year, d.Month, d.Day)
}

// InMonth reports whether the date belongs to year/month
func (d CalendarDate) InMonth(year, month int) bool {
	return d.Year == year && d.Month == month
}

// Before orders dates chronologically
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DialogTitle is the heading of the time entry dialog
func DialogTitle(d CalendarDate) string {
	return fmt.Sprintf("Enter hours for %s %d, %d", dateutil.MonthName(d.Month), d.Day, d.Year)
}

// ParseTimeField reads an hours or minutes field.
// Empty text means zero; unparsable or negative text keeps the previous value.
func ParseTimeField(text string, previous int) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return previous
	}
	return v
}

// ParseDuration reads "H:MM" or decimal hours ("7.5")
func ParseDuration(s string) (DayData, error) {
	s = strings.TrimSpace(s)
	if h, m, found := strings.Cut(s, ":"); found {
		hours, err := strconv.Atoi(h)
		if err != nil || hours < 0 {
			return DayData{}, fmt.Errorf("invalid hours in %q", s)
		}
		minutes, err := strconv.Atoi(m)
		if err != nil || minutes < 0 {
			return DayData{}, fmt.Errorf("invalid minutes in %q", s)
		}
		return NewDayData(hours, minutes), nil
	}

	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return DayData{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return DayDataFromHours(hours), nil
}

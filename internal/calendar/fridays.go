package calendar

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/username/friday-calendar/pkg/dateutil"
)

// FirstFriday returns the day of month of the first Friday
func FirstFriday(year, month int) (int, bool) {
	return dateutil.FirstWeekdayOccurrence(year, month, time.Friday)
}

// IsFriday reports whether the date exists and falls on a Friday
func IsFriday(year, month, day int) bool {
	weekday, ok := dateutil.WeekdayOf(year, month, day)
	return ok && weekday == time.Friday
}

// IsDefaultWorking applies the alternating rule to a Friday.
// Weeks 0, 2, 4... after the first Friday are working.
func IsDefaultWorking(firstFridayDay, day int) bool {
	if firstFridayDay <= 0 || day < firstFridayDay {
		return false
	}
	return ((day-firstFridayDay)/7)%2 == 0
}

// IsDefaultWorkingFriday checks the Friday and the alternating rule in one go
func IsDefaultWorkingFriday(year, month, day int) bool {
	if !IsFriday(year, month, day) {
		return false
	}
	first, ok := FirstFriday(year, month)
	if !ok {
		return false
	}
	return IsDefaultWorking(first, day)
}

// Classify returns the day type and target hours given a working-Friday predicate.
// The predicate is only consulted for Fridays.
func Classify(year, month, day int, workingFriday func(day int) bool) (DayType, float64) {
	weekday, ok := dateutil.WeekdayOf(year, month, day)
	if !ok {
		return DayTypeUnknown, 0
	}

	switch weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return DayTypeWorkday, HoursPerWorkday
	case time.Friday:
		if workingFriday(day) {
			return DayTypeWorkingFriday, HoursPerWorkday
		}
		return DayTypeNonWorkingFriday, 0
	default:
		return DayTypeWeekend, 0
	}
}

// Fridays lists every Friday of the month
func Fridays(year, month int) []int {
	first, ok := FirstFriday(year, month)
	if !ok {
		return nil
	}
	return fridaySeries(year, month, first, 1)
}

// WorkingFridays lists the Fridays the alternating rule marks as working
func WorkingFridays(year, month int) []int {
	first, ok := FirstFriday(year, month)
	if !ok {
		return nil
	}
	return fridaySeries(year, month, first, 2)
}

// fridaySeries expands FREQ=WEEKLY;BYDAY=FR from the first Friday to the end of the month
func fridaySeries(year, month, first, interval int) []int {
	last := dateutil.DaysInMonth(year, month)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  interval,
		Byweekday: []rrule.Weekday{rrule.FR},
		Dtstart:   time.Date(year, time.Month(month), first, 0, 0, 0, 0, time.UTC),
		Until:     time.Date(year, time.Month(month), last, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		days := []int{}
		for day := first; day <= last; day += 7 * interval {
			days = append(days, day)
		}
		return days
	}

	occurrences := r.All()
	days := make([]int, 0, len(occurrences))
	for _, occ := range occurrences {
		days = append(days, occ.Day())
	}
	return days
}

package timesheet

import (
	"fmt"
	"math"
)

// MaxTotalMinutes caps a DayData; larger input saturates here instead of overflowing
const MaxTotalMinutes = math.MaxInt32

// DayData is a recorded duration for one day, always with minutes in [0, 59]
type DayData struct {
	hours   int
	minutes int
}

// NewDayData folds minutes beyond 59 into hours. Negative parts count as zero
// and totals above MaxTotalMinutes saturate.
func NewDayData(hours, minutes int) DayData {
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}
	if minutes >= MaxTotalMinutes || hours > (MaxTotalMinutes-minutes)/60 {
		return fromTotalMinutes(MaxTotalMinutes)
	}
	return fromTotalMinutes(hours*60 + minutes)
}

// DayDataFromHours converts decimal hours, rounding to the nearest minute.
// Negative and NaN input yields a zero duration; huge input saturates at MaxTotalMinutes.
func DayDataFromHours(hours float64) DayData {
	if hours < 0 || math.IsNaN(hours) {
		return DayData{}
	}
	total := math.Round(hours * 60)
	if total >= MaxTotalMinutes {
		return fromTotalMinutes(MaxTotalMinutes)
	}
	return fromTotalMinutes(int(total))
}

func fromTotalMinutes(total int) DayData {
	return DayData{
		hours:   total / 60,
		minutes: total % 60,
	}
}

// Hours returns the hours component
func (d DayData) Hours() int {
	return d.hours
}

// Minutes returns the minutes component
func (d DayData) Minutes() int {
	return d.minutes
}

// TotalMinutes returns the whole duration in minutes
func (d DayData) TotalMinutes() int {
	return d.hours*60 + d.minutes
}

// DecimalHours converts to fractional hours
func (d DayData) DecimalHours() float64 {
	return float64(d.hours) + float64(d.minutes)/60
}

// IsZero reports a 0:00 duration
func (d DayData) IsZero() bool {
	return d.hours == 0 && d.minutes == 0
}

// Format renders H:MM, e.g. 9:05
func (d DayData) Format() string {
	return fmt.Sprintf("%d:%02d", d.hours, d.minutes)
}

func (d DayData) String() string {
	return d.Format()
}

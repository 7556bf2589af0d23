package calendar

import "time"

// HoursPerWorkday is the target for every counted working day
const HoursPerWorkday = 8.0

// DayType represents the type of day
type DayType int

const (
	DayTypeUnknown DayType = iota
	DayTypeWorkday
	DayTypeWeekend
	DayTypeWorkingFriday
	DayTypeNonWorkingFriday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeWorkingFriday:
		return "working-friday"
	case DayTypeNonWorkingFriday:
		return "non-working-friday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Year         int
	Month        int
	Day          int
	Weekday      time.Weekday
	Type         DayType
	WorkingHours float64
	IsWorkday    bool
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year              int
	Month             int
	FirstFriday       int     // 0 when unresolved
	WorkingHours      float64 // Total target hours in the month
	WorkDays          int
	Weekends          int
	NonWorkingFridays int
	Days              []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year, month int) *MonthInfo

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(year, month, day int) DayInfo
}

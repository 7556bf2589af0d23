package calendar

import (
	"go.uber.org/zap"
)

// FridayDecider answers whether a Friday is currently marked as working
type FridayDecider func(year, month, day int) bool

// OverrideCalendar lays the user's working Friday marks over a base Calendar
// Base: weekday geometry (usually AlternatingCalendar)
// Fridays: decider (explicit working-Friday marks)
type OverrideCalendar struct {
	base    Calendar
	decider FridayDecider
	logger  *zap.Logger
}

// NewOverrideCalendar creates a new OverrideCalendar
func NewOverrideCalendar(base Calendar, decider FridayDecider, logger *zap.Logger) *OverrideCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverrideCalendar{
		base:    base,
		decider: decider,
		logger:  logger,
	}
}

// GetMonthInfo returns calendar info for the entire month.
// Days come from the base calendar; only Fridays are re-decided.
func (oc *OverrideCalendar) GetMonthInfo(year, month int) *MonthInfo {
	base := oc.base.GetMonthInfo(year, month)

	info := &MonthInfo{
		Year:        base.Year,
		Month:       base.Month,
		FirstFriday: base.FirstFriday,
		Days:        make([]DayInfo, 0, len(base.Days)),
	}
	for _, day := range base.Days {
		info.Days = append(info.Days, oc.decide(day))
	}
	tally(info)

	oc.logger.Debug("Month info with overrides computed",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Float64("base_hours", base.WorkingHours),
		zap.Float64("working_hours", info.WorkingHours))

	return info
}

func (oc *OverrideCalendar) decide(info DayInfo) DayInfo {
	if info.Type != DayTypeWorkingFriday && info.Type != DayTypeNonWorkingFriday {
		return info
	}

	if oc.decider(info.Year, info.Month, info.Day) {
		info.Type = DayTypeWorkingFriday
		info.WorkingHours = HoursPerWorkday
		info.IsWorkday = true
	} else {
		info.Type = DayTypeNonWorkingFriday
		info.WorkingHours = 0
		info.IsWorkday = false
	}
	return info
}

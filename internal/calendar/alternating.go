package calendar

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/username/friday-calendar/pkg/dateutil"
)

// AlternatingCalendar implements Calendar using the alternating working Friday rule.
// Month geometry is deterministic, so computed months are cached without expiry.
type AlternatingCalendar struct {
	logger  *zap.Logger
	cache   map[string]*MonthInfo
	cacheMu sync.RWMutex
}

// NewAlternatingCalendar creates a new AlternatingCalendar
func NewAlternatingCalendar(logger *zap.Logger) *AlternatingCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlternatingCalendar{
		logger: logger,
		cache:  make(map[string]*MonthInfo),
	}
}

// GetDayInfo returns detailed info for a specific day
func (ac *AlternatingCalendar) GetDayInfo(year, month, day int) DayInfo {
	if !dateutil.IsValidDate(year, month, day) {
		ac.logger.Debug("Day outside calendar",
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Int("day", day))
		return DayInfo{Year: year, Month: month, Day: day, Type: DayTypeUnknown}
	}
	return ac.GetMonthInfo(year, month).Days[day-1]
}

// GetMonthInfo returns calendar info for the entire month.
// The result is shared through the cache and must not be modified.
func (ac *AlternatingCalendar) GetMonthInfo(year, month int) *MonthInfo {
	cacheKey := fmt.Sprintf("%d-%02d", year, month)

	ac.cacheMu.RLock()
	if cached, ok := ac.cache[cacheKey]; ok {
		ac.cacheMu.RUnlock()
		return cached
	}
	ac.cacheMu.RUnlock()

	first, _ := FirstFriday(year, month)
	info := BuildMonthInfo(year, month, first, func(day int) bool {
		return IsDefaultWorking(first, day)
	})

	ac.cacheMu.Lock()
	ac.cache[cacheKey] = info
	ac.cacheMu.Unlock()

	ac.logger.Debug("Month info computed",
		zap.String("month", cacheKey),
		zap.Int("first_friday", first),
		zap.Float64("working_hours", info.WorkingHours))

	return info
}

// BuildMonthInfo classifies every day of the month and accumulates statistics
func BuildMonthInfo(year, month, firstFriday int, workingFriday func(day int) bool) *MonthInfo {
	days := dateutil.DaysInMonth(year, month)
	info := &MonthInfo{
		Year:        year,
		Month:       month,
		FirstFriday: firstFriday,
		Days:        make([]DayInfo, 0, days),
	}

	for day := 1; day <= days; day++ {
		dayType, hours := Classify(year, month, day, workingFriday)
		weekday, _ := dateutil.WeekdayOf(year, month, day)
		dayInfo := DayInfo{
			Year:         year,
			Month:        month,
			Day:          day,
			Weekday:      weekday,
			Type:         dayType,
			WorkingHours: hours,
			IsWorkday:    hours > 0,
		}
		info.Days = append(info.Days, dayInfo)
	}

	tally(info)
	return info
}

// tally recomputes the month totals from Days
func tally(info *MonthInfo) {
	info.WorkingHours = 0
	info.WorkDays = 0
	info.Weekends = 0
	info.NonWorkingFridays = 0

	for _, day := range info.Days {
		switch day.Type {
		case DayTypeWorkday, DayTypeWorkingFriday:
			info.WorkDays++
			info.WorkingHours += day.WorkingHours
		case DayTypeWeekend:
			info.Weekends++
		case DayTypeNonWorkingFriday:
			info.NonWorkingFridays++
		}
	}
}

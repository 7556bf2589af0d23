package calendar

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestIsDefaultWorking(t *testing.T) {
	tests := []struct {
		name  string
		first int
		day   int
		want  bool
	}{
		{"First Friday", 5, 5, true},
		{"Second Friday", 5, 12, false},
		{"Third Friday", 5, 19, true},
		{"Fourth Friday", 5, 26, false},
		{"Before first Friday", 5, 1, false},
		{"Unresolved first Friday", 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDefaultWorking(tt.first, tt.day); got != tt.want {
				t.Errorf("IsDefaultWorking(%d, %d) = %v, want %v", tt.first, tt.day, got, tt.want)
			}
		})
	}
}

func TestIsDefaultWorkingFriday(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  bool
	}{
		{"May 2023 first Friday", 2023, 5, 5, true},
		{"May 2023 second Friday", 2023, 5, 12, false},
		{"May 2023 third Friday", 2023, 5, 19, true},
		{"May 2023 fourth Friday", 2023, 5, 26, false},
		{"Thursday is never a working Friday", 2023, 5, 4, false},
		{"Invalid date", 2023, 2, 30, false},
		{"Fifth Friday January 2025", 2025, 1, 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDefaultWorkingFriday(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsDefaultWorkingFriday(%d-%02d-%02d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestWorkingFridays(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       int
		wantAll     []int
		wantWorking []int
	}{
		{"May 2023", 2023, 5, []int{5, 12, 19, 26}, []int{5, 19}},
		{"September 2023", 2023, 9, []int{1, 8, 15, 22, 29}, []int{1, 15, 29}},
		{"January 2025", 2025, 1, []int{3, 10, 17, 24, 31}, []int{3, 17, 31}},
		{"June 2024", 2024, 6, []int{7, 14, 21, 28}, []int{7, 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fridays(tt.year, tt.month); !reflect.DeepEqual(got, tt.wantAll) {
				t.Errorf("Fridays() = %v, want %v", got, tt.wantAll)
			}
			got := WorkingFridays(tt.year, tt.month)
			if !reflect.DeepEqual(got, tt.wantWorking) {
				t.Errorf("WorkingFridays() = %v, want %v", got, tt.wantWorking)
			}
			for _, day := range got {
				if !IsDefaultWorkingFriday(tt.year, tt.month, day) {
					t.Errorf("WorkingFridays() returned %d which the rule rejects", day)
				}
			}
		})
	}
}

func TestAlternatingCalendar_GetMonthInfo(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cal := NewAlternatingCalendar(logger)

	tests := []struct {
		name          string
		year          int
		month         int
		wantHours     float64
		wantWork      int
		wantWeekends  int
		wantNonWorkFr int
	}{
		{
			name:          "June 2024",
			year:          2024,
			month:         6,
			wantHours:     144, // 16 Mon-Thu + 2 working Fridays
			wantWork:      18,
			wantWeekends:  10,
			wantNonWorkFr: 2,
		},
		{
			name:          "September 2023",
			year:          2023,
			month:         9,
			wantHours:     152, // 16 Mon-Thu + 3 working Fridays
			wantWork:      19,
			wantWeekends:  9,
			wantNonWorkFr: 2,
		},
		{
			name:          "May 2023",
			year:          2023,
			month:         5,
			wantHours:     168, // 19 Mon-Thu + 2 working Fridays
			wantWork:      21,
			wantWeekends:  8,
			wantNonWorkFr: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := cal.GetMonthInfo(tt.year, tt.month)

			if info.WorkingHours != tt.wantHours {
				t.Errorf("WorkingHours = %v, want %v", info.WorkingHours, tt.wantHours)
			}
			if info.WorkDays != tt.wantWork {
				t.Errorf("WorkDays = %d, want %d", info.WorkDays, tt.wantWork)
			}
			if info.Weekends != tt.wantWeekends {
				t.Errorf("Weekends = %d, want %d", info.Weekends, tt.wantWeekends)
			}
			if info.NonWorkingFridays != tt.wantNonWorkFr {
				t.Errorf("NonWorkingFridays = %d, want %d", info.NonWorkingFridays, tt.wantNonWorkFr)
			}
		})
	}
}

func TestAlternatingCalendar_GetDayInfo(t *testing.T) {
	cal := NewAlternatingCalendar(nil)

	tests := []struct {
		name      string
		day       int
		wantType  DayType
		wantHours float64
	}{
		{"Monday", 1, DayTypeWorkday, 8},
		{"Working Friday", 5, DayTypeWorkingFriday, 8},
		{"Saturday", 6, DayTypeWeekend, 0},
		{"Non-working Friday", 12, DayTypeNonWorkingFriday, 0},
		{"Out of range", 32, DayTypeUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := cal.GetDayInfo(2023, 5, tt.day)
			if info.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", info.Type, tt.wantType)
			}
			if info.WorkingHours != tt.wantHours {
				t.Errorf("WorkingHours = %v, want %v", info.WorkingHours, tt.wantHours)
			}
			if info.IsWorkday != (tt.wantHours > 0) {
				t.Errorf("IsWorkday = %v, want %v", info.IsWorkday, tt.wantHours > 0)
			}
		})
	}
}

func TestAlternatingCalendar_Cache(t *testing.T) {
	cal := NewAlternatingCalendar(zap.NewNop())

	first := cal.GetMonthInfo(2025, 1)
	second := cal.GetMonthInfo(2025, 1)
	if first != second {
		t.Error("GetMonthInfo() did not reuse cached month")
	}

	if other := cal.GetMonthInfo(2025, 2); other == first {
		t.Error("GetMonthInfo() shared a cache entry between months")
	}
}

func TestOverrideCalendar(t *testing.T) {
	base := NewAlternatingCalendar(zap.NewNop())
	marked := map[int]bool{12: true}
	cal := NewOverrideCalendar(base, func(year, month, day int) bool {
		return marked[day]
	}, zap.NewNop())

	info := cal.GetMonthInfo(2023, 5)

	tests := []struct {
		day       int
		wantType  DayType
		wantHours float64
	}{
		{1, DayTypeWorkday, 8},
		{5, DayTypeNonWorkingFriday, 0}, // default working, not marked
		{12, DayTypeWorkingFriday, 8},
		{13, DayTypeWeekend, 0},
	}
	for _, tt := range tests {
		day := info.Days[tt.day-1]
		if day.Type != tt.wantType || day.WorkingHours != tt.wantHours {
			t.Errorf("day %d = (%v, %v), want (%v, %v)", tt.day, day.Type, day.WorkingHours, tt.wantType, tt.wantHours)
		}
	}

	// 19 Mon-Thu plus the single marked Friday
	if info.WorkingHours != 160 {
		t.Errorf("WorkingHours = %v, want 160", info.WorkingHours)
	}
	if info.WorkDays != 20 || info.NonWorkingFridays != 3 || info.Weekends != 8 {
		t.Errorf("totals = (%d work, %d fridays off, %d weekends), want (20, 3, 8)",
			info.WorkDays, info.NonWorkingFridays, info.Weekends)
	}
}

func TestOverrideCalendar_LeavesBaseCacheIntact(t *testing.T) {
	base := NewAlternatingCalendar(zap.NewNop())
	cached := base.GetMonthInfo(2023, 5)

	cal := NewOverrideCalendar(base, func(year, month, day int) bool { return false }, nil)
	if got := cal.GetMonthInfo(2023, 5).WorkingHours; got != 152 {
		t.Errorf("override WorkingHours = %v, want 152", got)
	}

	if base.GetMonthInfo(2023, 5) != cached {
		t.Error("base month was recomputed instead of served from cache")
	}
	if cached.WorkingHours != 168 || cached.Days[4].Type != DayTypeWorkingFriday {
		t.Errorf("base month modified: hours %v, May 5 %v", cached.WorkingHours, cached.Days[4].Type)
	}
}

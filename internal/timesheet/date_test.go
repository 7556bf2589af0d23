package timesheet

import (
	"testing"
	"time"
)

func TestCalendarDate_Weekday(t *testing.T) {
	if wd, ok := NewCalendarDate(2023, 5, 5).Weekday(); !ok || wd != time.Friday {
		t.Errorf("Weekday() = (%v, %v), want (Friday, true)", wd, ok)
	}
	if _, ok := NewCalendarDate(2023, 2, 29).Weekday(); ok {
		t.Error("Weekday() resolved 2023-02-29")
	}
	if NewCalendarDate(2023, 4, 31).Valid() {
		t.Error("Valid() = true for 2023-04-31")
	}
}

func TestCalendarDate_Before(t *testing.T) {
	tests := []struct {
		name string
		a, b CalendarDate
		want bool
	}{
		{"Earlier day", NewCalendarDate(2023, 5, 5), NewCalendarDate(2023, 5, 19), true},
		{"Later month", NewCalendarDate(2023, 9, 1), NewCalendarDate(2023, 5, 19), false},
		{"Same date", NewCalendarDate(2023, 5, 5), NewCalendarDate(2023, 5, 5), false},
		{"Negative years", NewCalendarDate(-10, 1, 1), NewCalendarDate(-1, 1, 1), true},
		{"Negative before positive", NewCalendarDate(-1, 12, 31), NewCalendarDate(1, 1, 1), true},
		{"Four-digit against five-digit", NewCalendarDate(9999, 1, 1), NewCalendarDate(10000, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		input   string
		want    CalendarDate
		wantErr bool
	}{
		{"2023-05-05", NewCalendarDate(2023, 5, 5), false},
		{"19.05.2023", NewCalendarDate(2023, 5, 19), false},
		{" 2024-02-29 ", NewCalendarDate(2024, 2, 29), false},
		{"2023-02-30", CalendarDate{}, true},
		{"tomorrow", CalendarDate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCalendarDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCalendarDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimeField(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		previous int
		want     int
	}{
		{"Number", "7", 3, 7},
		{"Empty is zero", "", 3, 0},
		{"Whitespace is zero", "  ", 3, 0},
		{"Garbage keeps previous", "7a", 3, 3},
		{"Negative keeps previous", "-2", 3, 3},
		{"Decimal keeps previous", "1.5", 4, 4},
		{"Large minutes accepted", "90", 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTimeField(tt.text, tt.previous); got != tt.want {
				t.Errorf("ParseTimeField(%q, %d) = %d, want %d", tt.text, tt.previous, got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    DayData
		wantErr bool
	}{
		{"8:30", NewDayData(8, 30), false},
		{"1:75", NewDayData(2, 15), false},
		{"7.5", NewDayData(7, 30), false},
		{"6", NewDayData(6, 0), false},
		{"x:10", DayData{}, true},
		{"8:y", DayData{}, true},
		{"eight", DayData{}, true},
		{"200000000000000000:00", NewDayData(0, MaxTotalMinutes), false},
		{"1e300", NewDayData(0, MaxTotalMinutes), false},
		{"99999999999999999999:00", DayData{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDialogTitle(t *testing.T) {
	want := "Enter hours for May 5, 2023"
	if got := DialogTitle(NewCalendarDate(2023, 5, 5)); got != want {
		t.Errorf("DialogTitle() = %q, want %q", got, want)
	}
}

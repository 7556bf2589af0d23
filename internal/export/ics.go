package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/username/friday-calendar/internal/timesheet"
	"github.com/username/friday-calendar/pkg/dateutil"
)

// MonthSource is the read model an export needs
type MonthSource interface {
	ViewedMonth() (year, month int)
	Entries() map[timesheet.CalendarDate]timesheet.DayData
	WorkingFridays() []timesheet.CalendarDate
	MonthlyTargetHours() float64
}

// Exporter writes the viewed month as an iCalendar file
type Exporter struct {
	productID string
	logger    *zap.Logger
	now       func() time.Time
}

// NewExporter creates a new Exporter
func NewExporter(productID string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		productID: productID,
		logger:    logger,
		now:       time.Now,
	}
}

// Build creates the calendar: one all-day event per logged day and per marked working Friday
func (e *Exporter) Build(src MonthSource) *ics.Calendar {
	year, month := src.ViewedMonth()
	stamp := e.now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(e.productID)
	cal.SetXWRCalName(fmt.Sprintf("Working hours %s %d (target %.1fh)",
		dateutil.MonthName(month), year, src.MonthlyTargetHours()))

	entries := src.Entries()
	dates := make([]timesheet.CalendarDate, 0, len(entries))
	for date := range entries {
		if date.InMonth(year, month) && date.Valid() {
			dates = append(dates, date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Day < dates[j].Day })

	for _, date := range dates {
		d := entries[date]
		event := cal.AddEvent(fmt.Sprintf("hours-%s@friday-calendar", date))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(dayStart(date))
		event.SetAllDayEndAt(dayStart(date).AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Worked %s", d.Format()))
		event.SetDescription(fmt.Sprintf("%.2f hours", d.DecimalHours()))
	}

	fridays := 0
	for _, date := range src.WorkingFridays() {
		if !date.InMonth(year, month) {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("working-friday-%s@friday-calendar", date))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(dayStart(date))
		event.SetAllDayEndAt(dayStart(date).AddDate(0, 0, 1))
		event.SetSummary("Working Friday")
		fridays++
	}

	e.logger.Debug("Calendar built",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("entries", len(dates)),
		zap.Int("working_fridays", fridays))

	return cal
}

// Write serializes the calendar to w
func (e *Exporter) Write(w io.Writer, src MonthSource) error {
	if _, err := io.WriteString(w, e.Build(src).Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// WriteFile writes the calendar into dir and returns the file path
func (e *Exporter) WriteFile(dir string, src MonthSource) (string, error) {
	year, month := src.ViewedMonth()
	path := filepath.Join(dir, FileName(year, month))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".friday-calendar-*.ics")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := e.Write(tmp, src); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to set export permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to move calendar into place: %w", err)
	}

	e.logger.Info("Calendar exported",
		zap.String("file", path),
		zap.Int("year", year),
		zap.Int("month", month))

	return path, nil
}

// FileName is the export file name for a month
func FileName(year, month int) string {
	return fmt.Sprintf("friday-calendar_%04d-%02d.ics", year, month)
}

func dayStart(d timesheet.CalendarDate) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

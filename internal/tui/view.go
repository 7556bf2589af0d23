package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/username/friday-calendar/internal/calendar"
	"github.com/username/friday-calendar/internal/timesheet"
	"github.com/username/friday-calendar/pkg/dateutil"
)

const cellWidth = 9

// CellKind is how a day cell is drawn
type CellKind int

const (
	CellWorkday CellKind = iota
	CellToday
	CellWeekend
	CellNonWorkingFriday
	CellUnknown
)

// ClassifyCell picks the cell kind; today wins over everything else
func ClassifyCell(info calendar.DayInfo, isToday bool) CellKind {
	if isToday {
		return CellToday
	}
	switch info.Type {
	case calendar.DayTypeWeekend:
		return CellWeekend
	case calendar.DayTypeNonWorkingFriday:
		return CellNonWorkingFriday
	case calendar.DayTypeUnknown:
		return CellUnknown
	default:
		return CellWorkday
	}
}

// Styles holds the lipgloss styles for the grid
type Styles struct {
	Title            lipgloss.Style
	Header           lipgloss.Style
	Workday          lipgloss.Style
	Today            lipgloss.Style
	Weekend          lipgloss.Style
	NonWorkingFriday lipgloss.Style
	HasHours         lipgloss.Style
	Cursor           lipgloss.Style
	Dialog           lipgloss.Style
	Footer           lipgloss.Style
	Help             lipgloss.Style
}

// NewStyles builds the grid styles; plain disables all colors and borders
func NewStyles(plain bool) Styles {
	if plain {
		base := lipgloss.NewStyle()
		cell := base.Width(cellWidth)
		return Styles{
			Title:            base,
			Header:           cell,
			Workday:          cell,
			Today:            cell,
			Weekend:          cell,
			NonWorkingFriday: cell,
			HasHours:         base,
			Cursor:           base,
			Dialog:           base,
			Footer:           base,
			Help:             base,
		}
	}

	cell := lipgloss.NewStyle().Width(cellWidth)
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		Header:           cell.Bold(true).Foreground(lipgloss.Color("#4A90E2")),
		Workday:          cell,
		Today:            cell.Bold(true).Foreground(lipgloss.Color("#F7DC6F")),
		Weekend:          cell.Foreground(lipgloss.Color("#626262")),
		NonWorkingFriday: cell.Foreground(lipgloss.Color("#FF6B6B")),
		HasHours:         lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Cursor:           lipgloss.NewStyle().Reverse(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

func (s Styles) cell(kind CellKind) lipgloss.Style {
	switch kind {
	case CellToday:
		return s.Today
	case CellWeekend:
		return s.Weekend
	case CellNonWorkingFriday:
		return s.NonWorkingFriday
	default:
		return s.Workday
	}
}

// RenderMonth draws the viewed month of state as a Monday-first grid.
// cursor is a day of month to highlight, 0 for none.
func RenderMonth(state *timesheet.State, today timesheet.CalendarDate, cursor int, st Styles) string {
	year, month := state.ViewedMonth()
	info := state.MonthInfo()

	var b strings.Builder
	b.WriteString(st.Title.Render(fmt.Sprintf("%s %d", dateutil.MonthName(month), year)))
	b.WriteString("\n\n")

	headers := make([]string, 0, len(dateutil.WeekdayNames))
	for _, name := range dateutil.WeekdayNames {
		headers = append(headers, st.Header.Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	row := make([]string, 0, 7)
	for i := 0; i < dateutil.LeadingBlanks(year, month); i++ {
		row = append(row, st.Workday.Render(""))
	}

	for _, day := range info.Days {
		date := timesheet.NewCalendarDate(year, month, day.Day)
		kind := ClassifyCell(day, date == today)

		label := fmt.Sprintf("%2d", day.Day)
		if d, ok := state.DayData(date); ok {
			label += " " + st.HasHours.Render(d.Format())
		}
		if day.Day == cursor {
			label = st.Cursor.Render(label)
		}
		row = append(row, st.cell(kind).Render(label))

		if len(row) == 7 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
			b.WriteString("\n")
			row = row[:0]
		}
	}
	if len(row) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Footer.Render(FormatStatus(state.Status())))
	return b.String()
}

// FormatStatus renders the one-line monthly summary
func FormatStatus(status timesheet.MonthlyStatus) string {
	remaining := status.RemainingHours()
	label := "Remaining"
	if remaining < 0 {
		label = "Overage"
		remaining = -remaining
	}
	return fmt.Sprintf("Target: %.1fh  Logged: %.1fh (%.0f%%)  %s: %.1fh",
		status.TargetHours, status.LoggedHours, status.ProgressPercent(), label, remaining)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/username/friday-calendar/internal/timesheet"
	"github.com/username/friday-calendar/pkg/dateutil"
)

type field int

const (
	fieldHours field = iota
	fieldMinutes
)

// Model is the bubbletea adapter around timesheet.State.
// It renders the read model and forwards key presses as intents.
type Model struct {
	state  *timesheet.State
	today  timesheet.CalendarDate
	styles Styles
	logger *zap.Logger

	cursor int

	hours   textinput.Model
	minutes textinput.Model
	focus   field

	// last valid parsed values of the dialog fields
	hoursVal   int
	minutesVal int

	grid        string
	gridCursor  int
	gridStale   bool
	unsubscribe func()
}

// NewModel creates the adapter. The cursor starts on today when it is in the viewed month.
func NewModel(state *timesheet.State, today timesheet.CalendarDate, styles Styles, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		state:     state,
		today:     today,
		styles:    styles,
		logger:    logger,
		cursor:    1,
		hours:     newTimeInput("Hours:   "),
		minutes:   newTimeInput("Minutes: "),
		gridStale: true,
	}

	if year, month := state.ViewedMonth(); today.InMonth(year, month) {
		m.cursor = today.Day
	}

	m.unsubscribe = state.Subscribe(func(timesheet.Change) {
		m.gridStale = true
	})

	return m
}

func newTimeInput(prompt string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 4
	ti.Placeholder = "0"
	return ti
}

// Close detaches the model from the state
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Cursor returns the highlighted day of month
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state.ModalVisible() {
		return m, m.handleDialogKey(key)
	}
	return m, m.handleGridKey(key)
}

func (m *Model) handleGridKey(key tea.KeyMsg) tea.Cmd {
	year, month := m.state.ViewedMonth()
	days := dateutil.DaysInMonth(year, month)

	switch key.String() {
	case "ctrl+c", "q":
		m.Close()
		return tea.Quit
	case "left", "h":
		m.moveCursor(-1, days)
	case "right", "l":
		m.moveCursor(1, days)
	case "up", "k":
		m.moveCursor(-7, days)
	case "down", "j":
		m.moveCursor(7, days)
	case "n", "]":
		m.switchMonth(dateutil.NextMonth(year, month))
	case "p", "[":
		m.switchMonth(dateutil.PrevMonth(year, month))
	case "enter", " ":
		return m.openDialog(timesheet.NewCalendarDate(year, month, m.cursor))
	}
	return nil
}

func (m *Model) moveCursor(delta, days int) {
	next := m.cursor + delta
	if next < 1 || next > days {
		return
	}
	m.cursor = next
}

func (m *Model) switchMonth(year, month int) {
	m.state.SetViewedMonth(year, month)
	if days := dateutil.DaysInMonth(year, month); m.cursor > days {
		m.cursor = days
	}
}

func (m *Model) openDialog(date timesheet.CalendarDate) tea.Cmd {
	m.state.SelectDate(date)

	prefill := m.state.SelectedDayData()
	m.hoursVal = prefill.Hours()
	m.minutesVal = prefill.Minutes()
	m.hours.SetValue(fmt.Sprint(m.hoursVal))
	m.minutes.SetValue(fmt.Sprint(m.minutesVal))
	m.hours.CursorEnd()
	m.minutes.CursorEnd()

	m.focus = fieldHours
	m.minutes.Blur()
	return m.hours.Focus()
}

func (m *Model) handleDialogKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.state.CloseModal()
		return nil
	case "enter":
		m.logger.Debug("Saving dialog values",
			zap.Int("hours", m.hoursVal),
			zap.Int("minutes", m.minutesVal))
		m.state.SaveSelected(m.hoursVal, m.minutesVal)
		return nil
	case "ctrl+f":
		if m.state.ShowWorkingFridayToggle() {
			m.state.ToggleWorkingFridayForSelected()
		}
		return nil
	case "tab", "shift+tab", "up", "down":
		return m.switchField()
	}

	var cmd tea.Cmd
	if m.focus == fieldHours {
		m.hours, cmd = m.hours.Update(key)
		m.hoursVal = timesheet.ParseTimeField(m.hours.Value(), m.hoursVal)
	} else {
		m.minutes, cmd = m.minutes.Update(key)
		m.minutesVal = timesheet.ParseTimeField(m.minutes.Value(), m.minutesVal)
	}
	return cmd
}

func (m *Model) switchField() tea.Cmd {
	if m.focus == fieldHours {
		m.focus = fieldMinutes
		m.hours.Blur()
		return m.minutes.Focus()
	}
	m.focus = fieldHours
	m.minutes.Blur()
	return m.hours.Focus()
}

// DialogValues returns the hours and minutes the dialog would save
func (m *Model) DialogValues() (int, int) {
	return m.hoursVal, m.minutesVal
}

func (m *Model) View() string {
	if m.gridStale || m.gridCursor != m.cursor || m.grid == "" {
		m.grid = RenderMonth(m.state, m.today, m.cursor, m.styles)
		m.gridCursor = m.cursor
		m.gridStale = false
	}

	grid := m.grid
	if !m.state.ModalVisible() {
		help := m.styles.Help.Render("←↑↓→ move • enter edit • n/p month • q quit")
		return grid + "\n" + help + "\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left, grid, "", m.dialogView()) + "\n"
}

func (m *Model) dialogView() string {
	date, ok := m.state.SelectedDate()
	if !ok {
		return ""
	}

	lines := []string{
		timesheet.DialogTitle(date),
		"",
		m.hours.View(),
		m.minutes.View(),
	}

	if m.state.IsFriday(date) {
		status := "no"
		if m.state.IsMarkedWorking(date) {
			status = "yes"
		}
		line := "Working Friday: " + status
		if m.state.ShowWorkingFridayToggle() {
			line += "  (ctrl+f toggles)"
		}
		lines = append(lines, "", line)
	}

	lines = append(lines, "", m.styles.Help.Render("enter save • esc cancel • tab switch field"))
	return m.styles.Dialog.Render(strings.Join(lines, "\n"))
}

package timesheet

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/username/friday-calendar/internal/calendar"
	"github.com/username/friday-calendar/pkg/dateutil"
)

// ChangeKind tells listeners which part of the state moved
type ChangeKind int

const (
	ChangeViewedMonth ChangeKind = iota + 1
	ChangeSelection
	ChangeEntries
	ChangeWorkingFridays
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeViewedMonth:
		return "viewed-month"
	case ChangeSelection:
		return "selection"
	case ChangeEntries:
		return "entries"
	case ChangeWorkingFridays:
		return "working-fridays"
	default:
		return "unknown"
	}
}

// Change is delivered to listeners after a mutation completes
type Change struct {
	Kind ChangeKind
	Date CalendarDate // zero for month changes and closes
}

// Listener receives change notifications
type Listener func(Change)

// State holds the hour entries, working Friday marks, the dialog selection and the viewed month.
//
// Working Friday marks are the single source of truth for IsMarkedWorking. Each Friday is seeded
// from the alternating rule once, the first time its month is viewed or the date is selected;
// after that only toggles change it.
type State struct {
	mu sync.RWMutex

	entries        map[CalendarDate]DayData
	entriesVersion uint64
	workingFridays map[CalendarDate]struct{}
	seeded         map[CalendarDate]struct{}

	selectedDate *CalendarDate
	modalVisible bool

	viewYear    int
	viewMonth   int
	firstFriday int // 0 when the viewed month has no resolvable Friday

	listeners      map[int]Listener
	nextListenerID int

	base   *calendar.AlternatingCalendar
	logger *zap.Logger
}

// NewState creates the state for the given viewed month
func NewState(year, month int, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &State{
		entries:        make(map[CalendarDate]DayData),
		workingFridays: make(map[CalendarDate]struct{}),
		seeded:         make(map[CalendarDate]struct{}),
		listeners:      make(map[int]Listener),
		base:           calendar.NewAlternatingCalendar(logger),
		logger:         logger,
	}
	s.setViewedMonthLocked(year, month)
	return s
}

// Subscribe registers a listener and returns a function removing it
func (s *State) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify runs listeners outside the lock so they can read the state
func (s *State) notify(changes ...Change) {
	if len(changes) == 0 {
		return
	}

	s.mu.RLock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.RUnlock()

	for _, change := range changes {
		for _, l := range listeners {
			l(change)
		}
	}
}

// --- Viewed month ---

// SetViewedMonth switches the viewed month and recomputes its first Friday
func (s *State) SetViewedMonth(year, month int) {
	s.mu.Lock()
	seededAny := s.setViewedMonthLocked(year, month)
	s.mu.Unlock()

	s.logger.Info("Viewed month changed",
		zap.Int("year", year),
		zap.Int("month", month))

	changes := []Change{{Kind: ChangeViewedMonth}}
	if seededAny {
		changes = append(changes, Change{Kind: ChangeWorkingFridays})
	}
	s.notify(changes...)
}

func (s *State) setViewedMonthLocked(year, month int) bool {
	s.viewYear = year
	s.viewMonth = month
	s.firstFriday, _ = calendar.FirstFriday(year, month)

	seededAny := false
	for _, day := range calendar.Fridays(year, month) {
		if s.seedLocked(NewCalendarDate(year, month, day)) {
			seededAny = true
		}
	}
	return seededAny
}

// seedLocked applies the alternating default to a Friday that has never been decided.
// It reports whether the date was added to the working set.
func (s *State) seedLocked(date CalendarDate) bool {
	if _, done := s.seeded[date]; done {
		return false
	}
	if !s.isFridayLocked(date) {
		return false
	}
	s.seeded[date] = struct{}{}

	if s.isDefaultWorkingFridayLocked(date) {
		s.workingFridays[date] = struct{}{}
		return true
	}
	return false
}

// ViewedMonth returns the month currently displayed
func (s *State) ViewedMonth() (year, month int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.viewYear, s.viewMonth
}

// FirstFridayOfViewedMonth returns the cached first Friday day of month
func (s *State) FirstFridayOfViewedMonth() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.firstFriday, s.firstFriday > 0
}

// --- Dialog ---

// SelectDate opens the dialog for date
func (s *State) SelectDate(date CalendarDate) {
	s.mu.Lock()
	selected := date
	s.selectedDate = &selected
	s.modalVisible = true
	seeded := s.seedLocked(date)
	s.mu.Unlock()

	s.logger.Debug("Date selected", zap.Stringer("date", date))

	changes := []Change{{Kind: ChangeSelection, Date: date}}
	if seeded {
		changes = append(changes, Change{Kind: ChangeWorkingFridays, Date: date})
	}
	s.notify(changes...)
}

// CloseModal hides the dialog and clears the selection
func (s *State) CloseModal() {
	s.mu.Lock()
	changed := s.closeLocked()
	s.mu.Unlock()

	if changed {
		s.notify(Change{Kind: ChangeSelection})
	}
}

func (s *State) closeLocked() bool {
	changed := s.selectedDate != nil || s.modalVisible
	s.selectedDate = nil
	s.modalVisible = false
	return changed
}

// SelectedDate returns the date the dialog is open for
func (s *State) SelectedDate() (CalendarDate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedDate == nil {
		return CalendarDate{}, false
	}
	return *s.selectedDate, true
}

// ModalVisible reports whether the dialog is shown
func (s *State) ModalVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.modalVisible
}

// SelectedDayData returns the value the dialog is pre-filled with: the stored entry or 0:00
func (s *State) SelectedDayData() DayData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedDate == nil {
		return DayData{}
	}
	return s.entries[*s.selectedDate]
}

// ShowWorkingFridayToggle reports whether the dialog offers the working Friday switch
func (s *State) ShowWorkingFridayToggle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedDate == nil {
		return false
	}
	return s.isDefaultWorkingFridayLocked(*s.selectedDate)
}

// --- Entries ---

// SaveSelected stores hours for the selected date and closes the dialog.
// Unchanged values are not written.
func (s *State) SaveSelected(hours, minutes int) {
	s.mu.Lock()
	var changes []Change

	if s.selectedDate != nil {
		date := *s.selectedDate
		value := NewDayData(hours, minutes)

		if existing, ok := s.entries[date]; !ok || existing != value {
			s.entries[date] = value
			s.entriesVersion++
			changes = append(changes, Change{Kind: ChangeEntries, Date: date})

			s.logger.Debug("Hours saved",
				zap.Stringer("date", date),
				zap.String("duration", value.Format()))
		}
	}

	if s.closeLocked() {
		changes = append(changes, Change{Kind: ChangeSelection})
	}
	s.mu.Unlock()

	s.notify(changes...)
}

// DayData returns the stored entry for date
func (s *State) DayData(date CalendarDate) (DayData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.entries[date]
	return d, ok
}

// Entries returns a copy of all stored entries
func (s *State) Entries() map[CalendarDate]DayData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[CalendarDate]DayData, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// EntriesVersion increases with every write to the entries
func (s *State) EntriesVersion() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entriesVersion
}

// --- Working Fridays ---

// ToggleWorkingFridayForSelected toggles the selected date if it is a Friday. The dialog stays open.
func (s *State) ToggleWorkingFridayForSelected() {
	s.mu.Lock()
	if s.selectedDate == nil {
		s.mu.Unlock()
		return
	}
	date := *s.selectedDate
	changed := s.toggleLocked(date)
	s.mu.Unlock()

	if changed {
		s.notify(Change{Kind: ChangeWorkingFridays, Date: date})
	}
}

// ToggleWorkingFriday flips the mark on date.
// Marked dates are unmarked; unmarked dates are marked only when the alternating rule makes them working.
// Non-Fridays are ignored.
func (s *State) ToggleWorkingFriday(date CalendarDate) {
	s.mu.Lock()
	changed := s.toggleLocked(date)
	s.mu.Unlock()

	if changed {
		s.notify(Change{Kind: ChangeWorkingFridays, Date: date})
	}
}

func (s *State) toggleLocked(date CalendarDate) bool {
	if !s.isFridayLocked(date) {
		return false
	}
	s.seeded[date] = struct{}{}

	if _, marked := s.workingFridays[date]; marked {
		delete(s.workingFridays, date)
		s.logger.Debug("Working Friday unmarked", zap.Stringer("date", date))
		return true
	}

	if !s.isDefaultWorkingFridayLocked(date) {
		s.logger.Debug("Toggle ignored for non-alternating Friday", zap.Stringer("date", date))
		return false
	}

	s.workingFridays[date] = struct{}{}
	s.logger.Debug("Working Friday marked", zap.Stringer("date", date))
	return true
}

// IsFriday reports whether date is a real Friday
func (s *State) IsFriday(date CalendarDate) bool {
	return calendar.IsFriday(date.Year, date.Month, date.Day)
}

func (s *State) isFridayLocked(date CalendarDate) bool {
	return calendar.IsFriday(date.Year, date.Month, date.Day)
}

// IsDefaultWorkingFriday applies the alternating rule to date
func (s *State) IsDefaultWorkingFriday(date CalendarDate) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isDefaultWorkingFridayLocked(date)
}

// isDefaultWorkingFridayLocked uses the cached first Friday for the viewed month
func (s *State) isDefaultWorkingFridayLocked(date CalendarDate) bool {
	if !s.isFridayLocked(date) {
		return false
	}
	if date.InMonth(s.viewYear, s.viewMonth) {
		return calendar.IsDefaultWorking(s.firstFriday, date.Day)
	}
	return s.base.GetDayInfo(date.Year, date.Month, date.Day).Type == calendar.DayTypeWorkingFriday
}

// IsMarkedWorking reports whether date is in the working Friday set
func (s *State) IsMarkedWorking(date CalendarDate) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.workingFridays[date]
	return ok
}

// WorkingFridays returns the marked dates in ascending order
func (s *State) WorkingFridays() []CalendarDate {
	s.mu.RLock()
	out := make([]CalendarDate, 0, len(s.workingFridays))
	for d := range s.workingFridays {
		out = append(out, d)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}

// --- Aggregates ---

// MonthlyTargetHours is the policy target for the viewed month, independent of entries
func (s *State) MonthlyTargetHours() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.targetHoursLocked()
}

func (s *State) targetHoursLocked() float64 {
	return s.base.GetMonthInfo(s.viewYear, s.viewMonth).WorkingHours
}

// MonthlyLoggedHours sums the entries recorded in the viewed month
func (s *State) MonthlyLoggedHours() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loggedHoursLocked()
}

func (s *State) loggedHoursLocked() float64 {
	minutes := 0
	for date, d := range s.entries {
		if date.InMonth(s.viewYear, s.viewMonth) {
			minutes += d.TotalMinutes()
		}
	}
	return float64(minutes) / 60
}

// MonthInfo classifies each day of the viewed month using the current working Friday marks
func (s *State) MonthInfo() *calendar.MonthInfo {
	s.mu.RLock()
	year, month := s.viewYear, s.viewMonth
	marked := make(map[int]bool)
	for d := range s.workingFridays {
		if d.InMonth(year, month) {
			marked[d.Day] = true
		}
	}
	s.mu.RUnlock()

	oc := calendar.NewOverrideCalendar(
		s.base,
		func(_, _, day int) bool { return marked[day] },
		s.logger,
	)
	return oc.GetMonthInfo(year, month)
}

// Status summarises the viewed month from a single snapshot
func (s *State) Status() MonthlyStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	year, month := s.viewYear, s.viewMonth
	return MonthlyStatus{
		Year:           year,
		Month:          month,
		DaysInMonth:    dateutil.DaysInMonth(year, month),
		TargetHours:    s.targetHoursLocked(),
		LoggedHours:    s.loggedHoursLocked(),
		WorkingFridays: calendar.WorkingFridays(year, month),
	}
}

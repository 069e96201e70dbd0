// Package deadline keeps a combined deadline string and its date/time
// fragments in agreement while a calendar and a time picker feed the same
// field. State is a plain value and every event is a pure reducer, so the
// whole flow is testable without a terminal.
package deadline

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	CombinedLayout = "2006-01-02T15:04:05"
)

// CalendarView is the visible month cursor, display state only.
type CalendarView struct {
	Year  int
	Month time.Month
}

// TimeSelection stages an hour/minute pair until it is confirmed.
type TimeSelection struct {
	Hour   int
	Minute int
}

type State struct {
	Deadline string
	Date     string
	Time     string

	Calendar     CalendarView
	Picker       TimeSelection
	CalendarOpen bool
	PickerOpen   bool

	// lastApplied records the deadline value this state itself produced,
	// so an external sync of that same value never re-runs the reverse
	// parse and loops.
	lastApplied string
}

func NewState(now time.Time) State {
	return State{
		Calendar: CalendarView{Year: now.Year(), Month: now.Month()},
		Picker:   TimeSelection{Hour: now.Hour(), Minute: now.Minute()},
	}
}

// SetDate handles a direct edit of the date field. Anything that does not
// parse as a date clears the fragment; it never errors.
func (s State) SetDate(raw string) State {
	s.Date = canonicalDate(raw)
	return s.recompute()
}

// SetTime handles a direct edit of the time field.
func (s State) SetTime(raw string) State {
	s.Time = canonicalTime(raw)
	return s.recompute()
}

// SelectDay commits a day of the visible month and closes the calendar.
func (s State) SelectDay(day int) State {
	s.Date = time.Date(s.Calendar.Year, s.Calendar.Month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	s.CalendarOpen = false
	return s.recompute()
}

// StageTime moves the picker staging area without touching the fragments.
// Hour and minute wrap so the picker can scroll past either end.
func (s State) StageTime(hour, minute int) State {
	s.Picker = TimeSelection{Hour: wrap(hour, 24), Minute: wrap(minute, 60)}
	return s
}

// ConfirmTime commits the staged selection as a zero-padded fragment and
// closes the picker.
func (s State) ConfirmTime() State {
	s.Time = fmt.Sprintf("%02d:%02d", s.Picker.Hour, s.Picker.Minute)
	s.PickerOpen = false
	return s.recompute()
}

// Today sets both fragments from the clock, moves the calendar cursor to
// the current month and closes the calendar.
func (s State) Today(now time.Time) State {
	s.Date = now.Format(DateLayout)
	s.Time = now.Format(TimeLayout)
	s.Calendar = CalendarView{Year: now.Year(), Month: now.Month()}
	s.CalendarOpen = false
	return s.recompute()
}

// Now commits the current wall-clock hour/minute through the picker path.
func (s State) Now(now time.Time) State {
	return s.StageTime(now.Hour(), now.Minute()).ConfirmTime()
}

// SyncExternal is the one reverse path: a deadline set from outside (a
// form reset, a record loaded for display) is parsed back into fragments
// and staging. It runs only when the value actually changed; a value this
// state wrote itself is skipped by the lastApplied guard. Unparseable
// deadlines leave the fragments untouched.
func (s State) SyncExternal(deadline string) State {
	if deadline == s.lastApplied {
		return s
	}
	s.Deadline = deadline
	s.lastApplied = deadline

	if strings.TrimSpace(deadline) == "" {
		s.Date = ""
		s.Time = ""
		return s
	}
	t, err := time.Parse(CombinedLayout, deadline)
	if err != nil {
		return s
	}
	s.Date = t.Format(DateLayout)
	s.Time = t.Format(TimeLayout)
	s.Calendar = CalendarView{Year: t.Year(), Month: t.Month()}
	s.Picker = TimeSelection{Hour: t.Hour(), Minute: t.Minute()}
	return s
}

// OpenCalendar shows the calendar at the selected date's month, or the
// current month when no date is set.
func (s State) OpenCalendar(now time.Time) State {
	s.Calendar = CalendarView{Year: now.Year(), Month: now.Month()}
	if t, err := time.Parse(DateLayout, s.Date); err == nil {
		s.Calendar = CalendarView{Year: t.Year(), Month: t.Month()}
	}
	s.CalendarOpen = true
	s.PickerOpen = false
	return s
}

func (s State) CloseCalendar() State {
	s.CalendarOpen = false
	return s
}

// OpenPicker shows the picker staged from the time fragment when one is
// set; otherwise the previous staging is kept.
func (s State) OpenPicker() State {
	if t, err := time.Parse(TimeLayout, s.Time); err == nil {
		s.Picker = TimeSelection{Hour: t.Hour(), Minute: t.Minute()}
	}
	s.PickerOpen = true
	s.CalendarOpen = false
	return s
}

func (s State) ClosePicker() State {
	s.PickerOpen = false
	return s
}

// PrevMonth moves the visible month back one.
func (s State) PrevMonth() State {
	s.Calendar = addMonths(s.Calendar, -1)
	return s
}

// NextMonth moves the visible month forward one.
func (s State) NextMonth() State {
	s.Calendar = addMonths(s.Calendar, 1)
	return s
}

// Reset returns the synchronizer to its post-submit defaults.
func (s State) Reset(now time.Time) State {
	return NewState(now)
}

// recompute rebuilds the combined deadline from the fragments. This is the
// only writer of Deadline besides SyncExternal; fragments are never derived
// from the deadline here, which keeps the data flow one-directional.
func (s State) recompute() State {
	switch {
	case s.Date == "":
		s.Deadline = ""
	case s.Time == "":
		s.Deadline = s.Date + "T00:00:00"
	default:
		s.Deadline = s.Date + "T" + s.Time + ":00"
	}
	s.lastApplied = s.Deadline
	return s
}

func canonicalDate(raw string) string {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}

func canonicalTime(raw string) string {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return t.Format(TimeLayout)
}

func addMonths(view CalendarView, delta int) CalendarView {
	t := time.Date(view.Year, view.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return CalendarView{Year: t.Year(), Month: t.Month()}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

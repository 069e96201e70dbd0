package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/miragrio/HMCTS/internal/client"
	"github.com/miragrio/HMCTS/internal/deadline"
	"github.com/miragrio/HMCTS/internal/domain"
)

type focusField int

const (
	focusTitle focusField = iota
	focusDescription
	focusStatus
	focusDate
	focusTime
	focusCount
)

type pickerColumn int

const (
	columnHour pickerColumn = iota
	columnMinute
)

type taskCreatedMsg struct {
	created client.CreatedTask
	err     error
}

type tasksLoadedMsg struct {
	tasks []client.CreatedTask
	err   error
}

type Model struct {
	api  *client.Client
	keys keyMap

	draft domain.TaskDraft
	sync  deadline.State

	titleInput textinput.Model
	descArea   textarea.Model
	dateInput  textinput.Model
	timeInput  textinput.Model
	statusIdx  int
	focus      focusField

	calCursor int
	pickerCol pickerColumn

	created    *client.CreatedTask
	recent     []client.CreatedTask
	submitting bool
	errLine    string

	width  int
	height int

	dateFormat userDateFormat
	now        func() time.Time
}

func NewModel(api *client.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 255
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Description"
	ta.SetHeight(4)
	ta.Prompt = ""

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 10
	di.Prompt = ""

	tmi := textinput.New()
	tmi.Placeholder = "HH:mm"
	tmi.CharLimit = 5
	tmi.Prompt = ""

	now := time.Now
	m := Model{
		api:        api,
		keys:       newKeyMap(),
		draft:      domain.NewTaskDraft(),
		sync:       deadline.NewState(now()),
		titleInput: ti,
		descArea:   ta,
		dateInput:  di,
		timeInput:  tmi,
		dateFormat: detectUserDateFormat(),
		now:        now,
	}
	m.setFocus(focusTitle)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecentCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.descArea.SetWidth(maxInt(24, minInt(70, msg.Width-8)))
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			m.errLine = msg.err.Error()
			return m, nil
		}
		m.recent = msg.tasks
		return m, nil

	case taskCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errLine = msg.err.Error()
			return m, nil
		}
		created := msg.created
		m.created = &created
		m.resetForm()
		return m, m.loadRecentCmd()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.created != nil {
			return m.updateModal(msg)
		}
		if m.sync.CalendarOpen {
			return m.updateCalendar(msg)
		}
		if m.sync.PickerOpen {
			return m.updatePicker(msg)
		}
		return m.updateForm(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Cancel) {
		m.created = nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % focusCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Confirm) && m.focus != focusDescription:
		if m.focus == focusTime {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.OpenPicker) && m.focus == focusDate:
		m.sync = m.sync.OpenCalendar(m.now())
		m.calCursor = m.initialCalendarCursor()
		return m, nil

	case key.Matches(msg, m.keys.OpenPicker) && m.focus == focusTime:
		m.sync = m.sync.OpenPicker()
		m.pickerCol = columnHour
		return m, nil

	case key.Matches(msg, m.keys.Today):
		m.sync = m.sync.Today(m.now())
		m.refreshFragmentInputs()
		return m, nil

	case key.Matches(msg, m.keys.Now):
		m.sync = m.sync.Now(m.now())
		m.refreshFragmentInputs()
		return m, nil
	}

	if m.focus == focusStatus {
		switch msg.String() {
		case "left", "h", "up", "k":
			m.statusIdx = (m.statusIdx + len(domain.Statuses()) - 1) % len(domain.Statuses())
			return m, nil
		case "right", "l", "down", "j", " ":
			m.statusIdx = (m.statusIdx + 1) % len(domain.Statuses())
			return m, nil
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateCalendar captures every key while the calendar is open. Keys the
// popup does not own count as outside interaction and dismiss it, the
// same contract as a click elsewhere on a page.
func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	grid := deadline.MonthGrid(m.sync.Calendar.Year, m.sync.Calendar.Month)

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.sync = m.sync.SelectDay(m.calCursor)
		m.refreshFragmentInputs()

	case key.Matches(msg, m.keys.PopupToday):
		m.sync = m.sync.Today(m.now())
		m.refreshFragmentInputs()

	case key.Matches(msg, m.keys.DayLeft):
		if m.calCursor > 1 {
			m.calCursor--
		} else {
			m.sync = m.sync.PrevMonth()
			m.calCursor = deadline.MonthGrid(m.sync.Calendar.Year, m.sync.Calendar.Month).Days
		}

	case key.Matches(msg, m.keys.DayRight):
		if m.calCursor < grid.Days {
			m.calCursor++
		} else {
			m.sync = m.sync.NextMonth()
			m.calCursor = 1
		}

	case key.Matches(msg, m.keys.WeekUp):
		m.calCursor = maxInt(1, m.calCursor-7)

	case key.Matches(msg, m.keys.WeekDown):
		m.calCursor = minInt(grid.Days, m.calCursor+7)

	case key.Matches(msg, m.keys.MonthPrev):
		m.sync = m.sync.PrevMonth()
		m.calCursor = minInt(m.calCursor, deadline.MonthGrid(m.sync.Calendar.Year, m.sync.Calendar.Month).Days)

	case key.Matches(msg, m.keys.MonthNext):
		m.sync = m.sync.NextMonth()
		m.calCursor = minInt(m.calCursor, deadline.MonthGrid(m.sync.Calendar.Year, m.sync.Calendar.Month).Days)

	default:
		m.sync = m.sync.CloseCalendar()
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.sync = m.sync.ConfirmTime()
		m.refreshFragmentInputs()

	case key.Matches(msg, m.keys.PopupNow):
		m.sync = m.sync.Now(m.now())
		m.refreshFragmentInputs()

	case key.Matches(msg, m.keys.ColumnLeft):
		m.pickerCol = columnHour

	case key.Matches(msg, m.keys.ColumnRight):
		m.pickerCol = columnMinute

	case key.Matches(msg, m.keys.ValueUp):
		if m.pickerCol == columnHour {
			m.sync = m.sync.StageTime(m.sync.Picker.Hour+1, m.sync.Picker.Minute)
		} else {
			m.sync = m.sync.StageTime(m.sync.Picker.Hour, m.sync.Picker.Minute+1)
		}

	case key.Matches(msg, m.keys.ValueDown):
		if m.pickerCol == columnHour {
			m.sync = m.sync.StageTime(m.sync.Picker.Hour-1, m.sync.Picker.Minute)
		} else {
			m.sync = m.sync.StageTime(m.sync.Picker.Hour, m.sync.Picker.Minute-1)
		}

	default:
		m.sync = m.sync.ClosePicker()
	}

	return m, nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.draft.Title = m.titleInput.Value()
	case focusDescription:
		m.descArea, cmd = m.descArea.Update(msg)
		m.draft.Description = m.descArea.Value()
	case focusDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
		m.sync = m.sync.SetDate(m.dateInput.Value())
	case focusTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
		m.sync = m.sync.SetTime(m.timeInput.Value())
	}
	m.draft.Deadline = m.sync.Deadline
	return m, cmd
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()
	switch f {
	case focusTitle:
		m.titleInput.Focus()
	case focusDescription:
		m.descArea.Focus()
	case focusDate:
		m.dateInput.Focus()
	case focusTime:
		m.timeInput.Focus()
	}
}

// refreshFragmentInputs copies the synchronizer's fragments back into the
// two text fields after a popup or quick action committed them.
func (m *Model) refreshFragmentInputs() {
	m.dateInput.SetValue(m.sync.Date)
	m.timeInput.SetValue(m.sync.Time)
	m.draft.Deadline = m.sync.Deadline
}

func (m *Model) resetForm() {
	m.draft = domain.NewTaskDraft()
	m.sync = m.sync.Reset(m.now())
	m.titleInput.SetValue("")
	m.descArea.SetValue("")
	m.dateInput.SetValue("")
	m.timeInput.SetValue("")
	m.statusIdx = 0
	m.errLine = ""
	m.setFocus(focusTitle)
}

func (m *Model) initialCalendarCursor() int {
	grid := deadline.MonthGrid(m.sync.Calendar.Year, m.sync.Calendar.Month)
	if t, err := time.Parse(deadline.DateLayout, m.sync.Date); err == nil {
		if t.Year() == grid.Year && t.Month() == grid.Month {
			return t.Day()
		}
	}
	now := m.now()
	if grid.Year == now.Year() && grid.Month == now.Month() {
		return now.Day()
	}
	return 1
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.draft.Title = m.titleInput.Value()
	m.draft.Description = m.descArea.Value()
	m.draft.Status = domain.Statuses()[m.statusIdx]
	m.draft.Deadline = m.sync.Deadline

	if strings.TrimSpace(m.draft.Title) == "" {
		m.errLine = "title is required"
		m.setFocus(focusTitle)
		return m, nil
	}
	if m.draft.Deadline == "" {
		m.errLine = "deadline is required"
		m.setFocus(focusDate)
		return m, nil
	}

	m.submitting = true
	m.errLine = ""
	api := m.api
	draft := m.draft
	return m, func() tea.Msg {
		created, err := api.CreateTask(context.Background(), draft)
		return taskCreatedMsg{created: created, err: err}
	}
}

func (m Model) loadRecentCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		tasks, err := api.ListTasks(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package ui

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miragrio/HMCTS/internal/application"
	"github.com/miragrio/HMCTS/internal/client"
	"github.com/miragrio/HMCTS/internal/domain"
	"github.com/miragrio/HMCTS/internal/httpapi"
)

type memoryTaskRepo struct {
	tasks  []domain.Task
	nextID int64
}

func (m *memoryTaskRepo) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	m.nextID++
	task.ID = m.nextID
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *memoryTaskRepo) GetByID(_ context.Context, taskID int64) (domain.Task, error) {
	for _, t := range m.tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (m *memoryTaskRepo) List(_ context.Context) ([]domain.Task, error) {
	return m.tasks, nil
}

var uiTestNow = time.Date(2024, time.December, 10, 14, 37, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := application.NewTaskService(&memoryTaskRepo{})
	ts := httptest.NewServer(httpapi.NewServer(svc, log.New(io.Discard)))
	t.Cleanup(ts.Close)

	m := NewModel(client.New(ts.URL))
	m.now = func() time.Time { return uiTestNow }
	m.width = 100
	m.height = 40
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestTypingDateField_FeedsSynchronizer(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusDate)

	m, _ = update(t, m, keyMsg("2024-12-31"))

	assert.Equal(t, "2024-12-31", m.sync.Date)
	assert.Equal(t, "2024-12-31T00:00:00", m.sync.Deadline)
	assert.Equal(t, "2024-12-31T00:00:00", m.draft.Deadline)
}

func TestTypingTimeField_FeedsSynchronizer(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusDate)
	m, _ = update(t, m, keyMsg("2024-12-31"))
	m.setFocus(focusTime)
	m, _ = update(t, m, keyMsg("18:30"))

	assert.Equal(t, "2024-12-31T18:30:00", m.sync.Deadline)
}

func TestCalendarPopup_SelectDayWritesDateInput(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusDate)

	m, _ = update(t, m, keyMsg("ctrl+p"))
	require.True(t, m.sync.CalendarOpen)
	assert.Equal(t, 10, m.calCursor, "cursor starts on today in the current month")

	// move to the 15th and select it
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m, _ = update(t, m, keyMsg("enter"))

	assert.False(t, m.sync.CalendarOpen)
	assert.Equal(t, "2024-12-15", m.dateInput.Value())
	assert.Equal(t, "2024-12-15T00:00:00", m.sync.Deadline)
}

func TestCalendarPopup_UnboundKeyDismisses(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusDate)
	m, _ = update(t, m, keyMsg("ctrl+p"))
	require.True(t, m.sync.CalendarOpen)

	m, _ = update(t, m, keyMsg("x"))

	assert.False(t, m.sync.CalendarOpen)
	assert.Equal(t, "", m.sync.Date, "dismissal selects nothing")
}

func TestTimePickerPopup_ConfirmWritesTimeInput(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusDate)
	m, _ = update(t, m, keyMsg("2024-12-31"))
	m.setFocus(focusTime)

	m, _ = update(t, m, keyMsg("ctrl+p"))
	require.True(t, m.sync.PickerOpen)

	// stage 09:05 starting from the clock's 14:37
	m.sync = m.sync.StageTime(9, 5)
	m, _ = update(t, m, keyMsg("enter"))

	assert.False(t, m.sync.PickerOpen)
	assert.Equal(t, "09:05", m.timeInput.Value())
	assert.Equal(t, "2024-12-31T09:05:00", m.sync.Deadline)
}

func TestTodayQuickAction_FillsBothFragments(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyMsg("ctrl+t"))

	assert.Equal(t, "2024-12-10", m.dateInput.Value())
	assert.Equal(t, "14:37", m.timeInput.Value())
	assert.Equal(t, "2024-12-10T14:37:00", m.sync.Deadline)
}

func TestSubmit_RequiresTitleAndDeadline(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, keyMsg("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "title is required", m.errLine)

	m.setFocus(focusTitle)
	m, _ = update(t, m, keyMsg("Draft brief"))
	m, cmd = update(t, m, keyMsg("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "deadline is required", m.errLine)
}

func TestSubmitFlow_EndToEnd(t *testing.T) {
	m := newTestModel(t)

	m.setFocus(focusTitle)
	m, _ = update(t, m, keyMsg("Draft brief"))
	m.setFocus(focusDate)
	m, _ = update(t, m, keyMsg("2024-12-31"))
	m.setFocus(focusTime)
	m, _ = update(t, m, keyMsg("18:30"))

	m, cmd := update(t, m, keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	created, ok := cmd().(taskCreatedMsg)
	require.True(t, ok)
	require.NoError(t, created.err)
	assert.Equal(t, int64(1), created.created.ID)
	assert.Equal(t, "Draft brief", created.created.Title)
	assert.Equal(t, "pending", created.created.Status)
	assert.Equal(t, "2024-12-31T18:30:00", created.created.Deadline)
	assert.NotEmpty(t, created.created.CreatedAt)

	// the response opens the modal and the form resets behind it
	m, _ = update(t, m, created)
	require.NotNil(t, m.created)
	assert.Equal(t, "Draft brief", m.created.Title)
	assert.Equal(t, "", m.titleInput.Value())
	assert.Equal(t, "", m.sync.Deadline)
	assert.Equal(t, domain.StatusPending, m.draft.Status)

	// closing the modal clears the record and shows the empty form again
	m, _ = update(t, m, keyMsg("esc"))
	assert.Nil(t, m.created)
	assert.Equal(t, "", m.dateInput.Value())
}

func TestSubmitFailure_SurfacesErrorDetail(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusTitle)
	m, _ = update(t, m, keyMsg("Draft brief"))
	m.setFocus(focusDate)
	m, _ = update(t, m, keyMsg("2024-12-31"))

	m, cmd := update(t, m, keyMsg("ctrl+s"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, taskCreatedMsg{err: assert.AnError})

	assert.False(t, m.submitting)
	assert.Nil(t, m.created)
	assert.Equal(t, assert.AnError.Error(), m.errLine)
}

func TestStatusField_CyclesWithArrows(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusStatus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.statusIdx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.statusIdx)
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status mirrors the enum column on the tasks table.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown status %q", raw)
	}
}

func (s Status) String() string {
	return string(s)
}

// Label is the human form shown in the UI ("In Progress" for in_progress).
func (s Status) Label() string {
	parts := strings.Split(string(s), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Deadline    time.Time
	CreatedAt   time.Time
}

// TaskDraft is the unsaved form state. Deadline carries the combined
// wall-clock string the form builds (seconds forced to :00, no offset);
// it stays empty until a date fragment exists.
type TaskDraft struct {
	Title       string
	Description string
	Status      Status
	Deadline    string
}

func NewTaskDraft() TaskDraft {
	return TaskDraft{Status: StatusPending}
}

package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/miragrio/HMCTS/internal/deadline"
	"github.com/miragrio/HMCTS/internal/domain"
	"github.com/miragrio/HMCTS/internal/infrastructure/db/sqlc"
)

// Deadlines are stored as the wall-clock string the form sent, with no
// offset. Creation timestamps are stored as RFC3339 UTC.

func formatDeadline(t time.Time) string {
	return t.Format(deadline.CombinedLayout)
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fromSQLTask(row sqlc.Task) (domain.Task, error) {
	status, err := domain.ParseStatus(row.Status)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", row.ID, err)
	}
	due, err := time.Parse(deadline.CombinedLayout, row.Deadline)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: parse deadline: %w", row.ID, err)
	}
	createdAt, err := parseCreatedAt(row.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: parse created_at: %w", row.ID, err)
	}

	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description.String,
		Status:      status,
		Deadline:    due,
		CreatedAt:   createdAt,
	}, nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	// Tolerate rows written without an offset.
	return time.Parse(deadline.CombinedLayout, raw)
}

func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

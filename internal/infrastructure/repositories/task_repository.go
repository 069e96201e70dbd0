package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/miragrio/HMCTS/internal/domain"
	"github.com/miragrio/HMCTS/internal/infrastructure/db"
	"github.com/miragrio/HMCTS/internal/infrastructure/db/sqlc"
)

type TaskRepository struct {
	db      db.Adapter
	queries *sqlc.Queries
}

func NewTaskRepository(adapter db.Adapter) *TaskRepository {
	return &TaskRepository{
		db:      adapter,
		queries: adapter.Queries(),
	}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	row, err := r.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		Title:       task.Title,
		Description: nullString(task.Description),
		Status:      task.Status.String(),
		Deadline:    formatDeadline(task.Deadline),
		CreatedAt:   formatCreatedAt(task.CreatedAt),
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return fromSQLTask(row)
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID int64) (domain.Task, error) {
	row, err := r.queries.GetTask(ctx, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return fromSQLTask(row)
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.queries.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	result := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := fromSQLTask(row)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, nil
}

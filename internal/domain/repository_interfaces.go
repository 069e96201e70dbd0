package domain

import "context"

type TaskRepository interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, taskID int64) (Task, error)
	List(ctx context.Context) ([]Task, error)
}

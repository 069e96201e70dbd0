package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/miragrio/HMCTS/internal/deadline"
	"github.com/miragrio/HMCTS/internal/domain"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Deadline    string
}

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Task{}, errors.New("title is required")
	}

	status, err := domain.ParseStatus(input.Status)
	if err != nil {
		return domain.Task{}, err
	}

	if strings.TrimSpace(input.Deadline) == "" {
		return domain.Task{}, errors.New("deadline is required")
	}
	// The form sends a wall-clock datetime with no offset; it is kept as
	// such all the way to the column.
	due, err := time.Parse(deadline.CombinedLayout, strings.TrimSpace(input.Deadline))
	if err != nil {
		return domain.Task{}, errors.New("deadline must be a YYYY-MM-DDTHH:mm:ss datetime")
	}

	task := domain.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      status,
		Deadline:    due,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, taskID int64) (domain.Task, error) {
	if taskID <= 0 {
		return domain.Task{}, errors.New("task id is required")
	}
	return s.repo.GetByID(ctx, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/miragrio/HMCTS/internal/application"
	"github.com/miragrio/HMCTS/internal/deadline"
	"github.com/miragrio/HMCTS/internal/domain"
)

type Server struct {
	tasks  *application.TaskService
	logger *log.Logger
	mux    *http.ServeMux
}

func NewServer(tasks *application.TaskService, logger *log.Logger) *Server {
	srv := &Server{
		tasks:  tasks,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)
	srv.mux.HandleFunc("POST /{$}", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /tasks", srv.handleListTasks)

	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withMiddleware(s.mux, s.logger).ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
}

type taskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	CreatedAt   string `json:"created_at"`
}

func toTaskResponse(task domain.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		Deadline:    task.Deadline.Format(deadline.CombinedLayout),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.tasks.CreateTask(r.Context(), application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    req.Deadline,
	})
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("create task", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListTasks(r.Context())
	if err != nil {
		s.logger.Error("list tasks", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, toTaskResponse(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}

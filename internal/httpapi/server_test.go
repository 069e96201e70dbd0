package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miragrio/HMCTS/internal/application"
	"github.com/miragrio/HMCTS/internal/domain"
)

type memoryTaskRepo struct {
	tasks  []domain.Task
	nextID int64
	fail   error
}

func (m *memoryTaskRepo) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	if m.fail != nil {
		return domain.Task{}, m.fail
	}
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
	if m.fail != nil {
		return nil, m.fail
	}
	return m.tasks, nil
}

func newTestServer(repo *memoryTaskRepo) *Server {
	svc := application.NewTaskService(repo)
	return NewServer(svc, log.New(io.Discard))
}

func TestCreateTask_Returns201WithStoredRecord(t *testing.T) {
	srv := newTestServer(&memoryTaskRepo{})

	body := `{"title":"Draft brief","status":"pending","deadline":"2024-12-31T18:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Deadline    string `json:"deadline"`
		CreatedAt   string `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Draft brief", resp.Title)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-12-31T18:30:00", resp.Deadline)
	assert.NotEmpty(t, resp.CreatedAt)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCreateTask_OmitsEmptyDescription(t *testing.T) {
	srv := newTestServer(&memoryTaskRepo{})

	body := `{"title":"Draft brief","status":"pending","deadline":"2024-12-31T18:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"description"`)
}

func TestCreateTask_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"unknown field", `{"title":"x","status":"pending","deadline":"2024-12-31T18:30:00","priority":1}`},
		{"missing title", `{"title":"  ","status":"pending","deadline":"2024-12-31T18:30:00"}`},
		{"bad status", `{"title":"x","status":"done","deadline":"2024-12-31T18:30:00"}`},
		{"missing deadline", `{"title":"x","status":"pending"}`},
		{"bad deadline", `{"title":"x","status":"pending","deadline":"31/12/2024 6pm"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&memoryTaskRepo{})
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestCreateTask_StorageFailureIs500(t *testing.T) {
	repo := &memoryTaskRepo{fail: assert.AnError}
	srv := newTestServer(repo)

	body := `{"title":"x","status":"pending","deadline":"2024-12-31T18:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestListTasks_ReturnsCountAndItems(t *testing.T) {
	repo := &memoryTaskRepo{}
	srv := newTestServer(repo)

	for _, title := range []string{"one", "two"} {
		body := `{"title":"` + title + `","status":"pending","deadline":"2024-12-31T18:30:00"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Count int               `json:"count"`
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Items, 2)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&memoryTaskRepo{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRequestID_EchoesCallerValue(t *testing.T) {
	srv := newTestServer(&memoryTaskRepo{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "caller-id")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "caller-id", rec.Header().Get("X-Request-Id"))
}

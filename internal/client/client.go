// Package client is the form's only outward edge: one POST with the draft
// as-is, one awaited response. No retries, no timeouts beyond the caller's
// context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/miragrio/HMCTS/internal/domain"
)

// CreatedTask is the server's echo of a stored task. It is kept as the
// wire strings it arrived with; the success modal owns it until dismissed.
type CreatedTask struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	CreatedAt   string `json:"created_at"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) CreateTask(ctx context.Context, draft domain.TaskDraft) (CreatedTask, error) {
	payload, err := json.Marshal(createTaskRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status.String(),
		Deadline:    draft.Deadline,
	})
	if err != nil {
		return CreatedTask{}, fmt.Errorf("encode task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return CreatedTask{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return CreatedTask{}, fmt.Errorf("send task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return CreatedTask{}, fmt.Errorf("create task: %s", errorDetail(resp))
	}

	var created CreatedTask
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return CreatedTask{}, fmt.Errorf("decode response: %w", err)
	}
	return created, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]CreatedTask, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tasks", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list tasks: %s", errorDetail(resp))
	}

	var body struct {
		Items []CreatedTask `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return body.Items, nil
}

// errorDetail pulls the server's {"error": ...} message so the user sees
// the underlying detail, falling back to the raw body or status line.
func errorDetail(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		return fmt.Sprintf("%s: %s", resp.Status, bytes.TrimSpace(raw))
	}
	return resp.Status
}

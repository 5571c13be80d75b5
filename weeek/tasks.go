// ABOUTME: Task accessors and pass-through mutations for the /tm/tasks endpoints.
// ABOUTME: Covers the richly-filterable listing, CRUD, completion, board/column moves, and the task timer.

package weeek

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// TaskFilter narrows a task listing. Zero-valued fields are omitted from the
// query string.
type TaskFilter struct {
	ProjectID     int
	BoardID       int
	BoardColumnID int
	Completed     *bool
	Search        string
}

func (f TaskFilter) query() map[string]string {
	q := map[string]string{}
	if f.ProjectID != 0 {
		q["projectId"] = strconv.Itoa(f.ProjectID)
	}
	if f.BoardID != 0 {
		q["boardId"] = strconv.Itoa(f.BoardID)
	}
	if f.BoardColumnID != 0 {
		q["boardColumnId"] = strconv.Itoa(f.BoardColumnID)
	}
	if f.Completed != nil {
		q["completed"] = strconv.FormatBool(*f.Completed)
	}
	if f.Search != "" {
		q["search"] = f.Search
	}
	return q
}

// CreateTaskRequest carries the fields for the task creation call. Assignees
// is always serialized, even when empty, so the remote never interprets an
// absent field.
type CreateTaskRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Priority      int      `json:"priority"`
	ProjectID     int      `json:"projectId,omitempty"`
	BoardID       int      `json:"boardId,omitempty"`
	BoardColumnID int      `json:"boardColumnId,omitempty"`
	Assignees     []string `json:"assignees"`
	ParentID      int      `json:"parentId,omitempty"`
}

// UpdateTaskRequest carries partial task updates; nil fields are left
// untouched on the remote.
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *int      `json:"priority,omitempty"`
	Assignees   *[]string `json:"assignees,omitempty"`
}

// Tasks lists tasks matching the filter.
func (c *Client) Tasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	raw, err := c.Do(ctx, http.MethodGet, "/tm/tasks", nil, filter.query())
	if err != nil {
		return nil, err
	}
	return unwrapList[Task](raw, "tasks")
}

// Task fetches a single task by id.
func (c *Client) Task(ctx context.Context, id int) (*Task, error) {
	raw, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/tm/tasks/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	t, err := unwrapItem[Task](raw, "task")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask issues a single task creation call. Callers that want name
// resolution and subtask orchestration should use CreateTaskDetailed.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	return c.createTask(ctx, req, nil)
}

func (c *Client) createTask(ctx context.Context, req CreateTaskRequest, headers map[string]string) (*Task, error) {
	if req.Assignees == nil {
		req.Assignees = []string{}
	}
	raw, err := c.do(ctx, http.MethodPost, "/tm/tasks", req, nil, headers)
	if err != nil {
		return nil, err
	}
	t, err := unwrapItem[Task](raw, "task")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask updates a task's fields.
func (c *Client) UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (*Task, error) {
	raw, err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/tm/tasks/%d", id), req, nil)
	if err != nil {
		return nil, err
	}
	t, err := unwrapItem[Task](raw, "task")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/tm/tasks/%d", id), nil, nil)
	return err
}

// CompleteTask marks a task completed.
func (c *Client) CompleteTask(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/tasks/%d/complete", id), nil, nil)
	return err
}

// UncompleteTask clears a task's completed state.
func (c *Client) UncompleteTask(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/tasks/%d/un-complete", id), nil, nil)
	return err
}

// MoveTaskBoard moves a task to another board and column.
func (c *Client) MoveTaskBoard(ctx context.Context, id, boardID, columnID int) error {
	body := map[string]int{"boardId": boardID, "boardColumnId": columnID}
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/tasks/%d/board", id), body, nil)
	return err
}

// MoveTaskColumn moves a task to another column within its current board.
func (c *Client) MoveTaskColumn(ctx context.Context, id, columnID int) error {
	body := map[string]int{"boardColumnId": columnID}
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/tasks/%d/board-column", id), body, nil)
	return err
}

// StartTimer starts the time tracker on a task.
func (c *Client) StartTimer(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/tasks/%d/timer/start", id), nil, nil)
	return err
}

// StopTimer stops the time tracker on a task.
func (c *Client) StopTimer(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/tasks/%d/timer/stop", id), nil, nil)
	return err
}

// TimeEntries lists the recorded time entries for a task.
func (c *Client) TimeEntries(ctx context.Context, taskID int) ([]TimeEntry, error) {
	raw, err := c.Do(ctx, http.MethodGet, "/tm/time-entries", nil, map[string]string{
		"taskId": strconv.Itoa(taskID),
	})
	if err != nil {
		return nil, err
	}
	return unwrapList[TimeEntry](raw, "timeEntries")
}

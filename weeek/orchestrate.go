// ABOUTME: The detailed task-creation workflow: resolve board, column, and assignee, create the task, then its subtasks.
// ABOUTME: All resolution happens before any mutation; subtask creations run strictly in sequence and never roll back.

package weeek

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oklog/ulid/v2"
)

// TaskSpec describes a task to create by human-friendly references. Title is
// required; everything else is optional and resolved only when populated.
type TaskSpec struct {
	Title       string
	Board       string // board name, resolved across all projects
	Column      string // column name, resolved within the board only
	Assignee    string // workspace member display name
	Priority    int    // 0-3, default 0
	Description string
	Subtasks    []string // subtask titles, created in order
}

// Header attached to every create call of one orchestrated run, so related
// mutations can be correlated server-side and in request logs.
const workflowRunHeader = "X-Workflow-Run"

// CreateTaskDetailed resolves every reference in spec and creates the task,
// then its subtasks. The order is fixed:
//
//  1. Resolve the board (when named) via BoardWithContext. Not-found or
//     ambiguous aborts before anything is created.
//  2. Resolve the column (when named) against the board's columns with
//     first-substring matching.
//  3. Without a column name, default to the board's first column; a board
//     with no columns yields a task without a column assignment.
//  4. Resolve the assignee (when named) with exact-then-substring matching.
//  5. Create the primary task.
//  6. Create each subtask in order, one at a time, with the primary task as
//     parent and the same board/column/project/assignee context.
//
// The primary task is returned. When one or more subtask creations fail, the
// primary task is returned together with a PartialFailureError describing
// each subtask's outcome; nothing already created is rolled back.
func (c *Client) CreateTaskDetailed(ctx context.Context, spec TaskSpec) (*Task, error) {
	if spec.Title == "" {
		return nil, &ConfigurationError{
			ClientError: ClientError{Message: "task title is required"},
		}
	}

	runID := ulid.Make().String()
	headers := map[string]string{workflowRunHeader: runID}

	req := CreateTaskRequest{
		Title:       spec.Title,
		Description: spec.Description,
		Priority:    spec.Priority,
		Assignees:   []string{},
	}

	if spec.Board != "" {
		bctx, err := c.BoardWithContext(ctx, spec.Board)
		if err != nil {
			return nil, err
		}
		req.BoardID = bctx.Board.ID
		req.ProjectID = bctx.Board.ProjectID

		if spec.Column != "" {
			col, ok := FirstSubstring(spec.Column, columnCandidates(bctx.Columns))
			if !ok {
				return nil, newNotFoundError(spec.Column,
					fmt.Sprintf("columns of board %q", bctx.Board.Name))
			}
			colID, _ := strconv.Atoi(col.ID)
			req.BoardColumnID = colID
		} else if len(bctx.Columns) > 0 {
			req.BoardColumnID = bctx.Columns[0].ID
		}
	}

	if spec.Assignee != "" {
		user, err := c.FindUser(ctx, spec.Assignee)
		if err != nil {
			return nil, err
		}
		req.Assignees = []string{user.ID}
	}

	c.logf("workflow %s: creating task %q", runID, spec.Title)
	primary, err := c.createTask(ctx, req, headers)
	if err != nil {
		return nil, err
	}

	if len(spec.Subtasks) == 0 {
		return primary, nil
	}

	// Subtasks share a parent reference that only exists now, and the remote
	// orders children by request order, so this loop must stay sequential.
	outcomes := make([]SubtaskOutcome, 0, len(spec.Subtasks))
	failures := 0
	for _, title := range spec.Subtasks {
		subReq := CreateTaskRequest{
			Title:         title,
			Priority:      req.Priority,
			ProjectID:     req.ProjectID,
			BoardID:       req.BoardID,
			BoardColumnID: req.BoardColumnID,
			Assignees:     req.Assignees,
			ParentID:      primary.ID,
		}
		sub, subErr := c.createTask(ctx, subReq, headers)
		if subErr != nil {
			failures++
			c.logf("workflow %s: subtask %q failed: %v", runID, title, subErr)
		}
		outcomes = append(outcomes, SubtaskOutcome{Title: title, Task: sub, Err: subErr})
	}

	if failures > 0 {
		return primary, newPartialFailureError(runID, primary, outcomes)
	}
	return primary, nil
}

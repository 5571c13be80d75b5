// ABOUTME: Single-purpose resolve-then-mutate operations: move a task by column name, assign by user name.
// ABOUTME: Each operation performs at most one resolution followed by exactly one remote mutation call.

package weeek

import (
	"context"
	"fmt"
	"strconv"
)

// MoveTaskToColumn moves a task to the column with the given name. The name
// is resolved against the task's current board's columns only; a same-named
// column on a different board never matches, and the task never changes
// boards through this call.
func (c *Client) MoveTaskToColumn(ctx context.Context, taskID int, columnName string) (*Column, error) {
	task, err := c.Task(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.BoardID == 0 {
		return nil, newNotFoundError(columnName,
			fmt.Sprintf("columns (task %d has no board)", taskID))
	}

	columns, err := c.Columns(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}

	scope := fmt.Sprintf("columns of board %d", task.BoardID)
	match, err := resolveOne(columnName, scope, columnCandidates(columns))
	if err != nil {
		return nil, err
	}
	colID, _ := strconv.Atoi(match.ID)

	if err := c.MoveTaskColumn(ctx, taskID, colID); err != nil {
		return nil, err
	}
	for i := range columns {
		if columns[i].ID == colID {
			return &columns[i], nil
		}
	}
	return nil, newNotFoundError(columnName, scope)
}

// AssignTask assigns a task to the workspace member with the given display
// name. One user resolution, one update call.
func (c *Client) AssignTask(ctx context.Context, taskID int, userName string) (*User, error) {
	user, err := c.FindUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	assignees := []string{user.ID}
	if _, err := c.UpdateTask(ctx, taskID, UpdateTaskRequest{Assignees: &assignees}); err != nil {
		return nil, err
	}
	return user, nil
}

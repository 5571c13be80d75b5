// ABOUTME: Fan-out aggregation: all boards across all projects, and a board joined with its columns and tasks.
// ABOUTME: Branch failures in the all-boards fan-out are swallowed to empty results, never aborting the whole.

package weeek

import (
	"context"
	"strconv"
	"sync"
)

// BoardSummary is a board annotated with its owning project's display name
// for downstream presentation.
type BoardSummary struct {
	Board
	ProjectName string
}

// BoardContext is a board joined client-side with its columns and its tasks.
type BoardContext struct {
	Board   BoardSummary
	Columns []Column
	Tasks   []Task
}

// AllBoards lists every board across every project. It first lists projects,
// then issues one boards query per project concurrently. A branch that fails
// contributes an empty result for its project rather than aborting the
// aggregation. Results keep the project listing order, grouping each
// project's boards together regardless of branch completion order.
func (c *Client) AllBoards(ctx context.Context) ([]BoardSummary, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}

	perProject := make([][]Board, len(projects))
	var wg sync.WaitGroup
	for i, p := range projects {
		wg.Add(1)
		go func(idx, projectID int) {
			defer wg.Done()
			boards, err := c.Boards(ctx, projectID)
			if err != nil {
				c.logf("boards for project %d: %v (treated as empty)", projectID, err)
				return
			}
			perProject[idx] = boards
		}(i, p.ID)
	}
	wg.Wait()

	var out []BoardSummary
	for i, boards := range perProject {
		for _, b := range boards {
			out = append(out, BoardSummary{Board: b, ProjectName: projects[i].Name})
		}
	}
	return out, nil
}

// FindBoard resolves a board by name over the all-boards aggregation using
// exact-then-substring matching. Zero matches yield a NotFoundError, multiple
// matches an AmbiguousError listing every candidate.
func (c *Client) FindBoard(ctx context.Context, name string) (*BoardSummary, error) {
	boards, err := c.AllBoards(ctx)
	if err != nil {
		return nil, err
	}
	match, err := resolveOne(name, "boards", boardCandidates(boards))
	if err != nil {
		return nil, err
	}
	for i := range boards {
		if strconv.Itoa(boards[i].ID) == match.ID {
			return &boards[i], nil
		}
	}
	return nil, newNotFoundError(name, "boards")
}

// BoardWithContext resolves a board by name and returns it joined with its
// columns and tasks. The two fetches run concurrently, but only after the
// resolution produced exactly one match; a not-found or ambiguous board fails
// before any further request is issued.
func (c *Client) BoardWithContext(ctx context.Context, name string) (*BoardContext, error) {
	board, err := c.FindBoard(ctx, name)
	if err != nil {
		return nil, err
	}

	var (
		wg      sync.WaitGroup
		columns []Column
		tasks   []Task
		colErr  error
		taskErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		columns, colErr = c.Columns(ctx, board.ID)
	}()
	go func() {
		defer wg.Done()
		tasks, taskErr = c.Tasks(ctx, TaskFilter{BoardID: board.ID})
	}()
	wg.Wait()

	if colErr != nil {
		return nil, colErr
	}
	if taskErr != nil {
		return nil, taskErr
	}

	return &BoardContext{Board: *board, Columns: columns, Tasks: tasks}, nil
}

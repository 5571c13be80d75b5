// ABOUTME: Tests for the single-purpose resolve-then-mutate operations.
// ABOUTME: Verifies column moves resolve only within the task's current board and assignment uses one update call.

package weeek

import (
	"context"
	"errors"
	"testing"
)

// TestMoveTaskToColumnScopedToBoard verifies the column name resolves against
// the task's current board's columns only; board 30 has a same-named
// "Backlog" column that must never match.
func TestMoveTaskToColumnScopedToBoard(t *testing.T) {
	f := newFakeAPI(t)
	f.seedWorkspace()
	f.taskByID[200] = Task{ID: 200, Title: "T", BoardID: 10, BoardColumnID: 12}
	c, _ := f.start()

	col, err := c.MoveTaskToColumn(context.Background(), 200, "Backlog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.ID != 11 || col.BoardID != 10 {
		t.Errorf("expected column 11 on board 10, got column %d on board %d", col.ID, col.BoardID)
	}

	f.mu.Lock()
	moves := f.moveColumnCalls
	f.mu.Unlock()
	if len(moves) != 1 || moves[0] != [2]int{200, 11} {
		t.Errorf("expected exactly one move of task 200 to column 11, got %v", moves)
	}
}

func TestMoveTaskToColumnNotFound(t *testing.T) {
	f := newFakeAPI(t)
	f.seedWorkspace()
	f.taskByID[200] = Task{ID: 200, Title: "T", BoardID: 10}
	c, _ := f.start()

	// Board 10 only has Backlog and Doing.
	_, err := c.MoveTaskToColumn(context.Background(), 200, "Review")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}

	f.mu.Lock()
	moves := len(f.moveColumnCalls)
	f.mu.Unlock()
	if moves != 0 {
		t.Errorf("expected no move calls after failed resolution, got %d", moves)
	}
}

func TestMoveTaskToColumnAmbiguous(t *testing.T) {
	f := newFakeAPIWithDuplicateColumns(t)
	c, _ := f.start()

	_, err := c.MoveTaskToColumn(context.Background(), 200, "done")
	var amb *AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousError, got %T: %v", err, err)
	}
}

func newFakeAPIWithDuplicateColumns(t *testing.T) *fakeAPI {
	f := newFakeAPI(t)
	f.seedWorkspace()
	f.columns[10] = []Column{
		{ID: 15, Name: "Done (QA)", BoardID: 10},
		{ID: 16, Name: "Done (Prod)", BoardID: 10},
	}
	f.taskByID[200] = Task{ID: 200, Title: "T", BoardID: 10}
	return f
}

func TestAssignTask(t *testing.T) {
	f := newFakeAPI(t)
	f.seedWorkspace()
	f.taskByID[200] = Task{ID: 200, Title: "T", BoardID: 10}
	c, _ := f.start()

	user, err := c.AssignTask(context.Background(), 200, "grace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u-2" {
		t.Errorf("expected user u-2, got %q", user.ID)
	}

	f.mu.Lock()
	updates := f.updateCalls
	f.mu.Unlock()
	if len(updates) != 1 || updates[0] != 200 {
		t.Errorf("expected exactly one update of task 200, got %v", updates)
	}
}

func TestAssignTaskAmbiguous(t *testing.T) {
	f := newFakeAPI(t)
	f.seedWorkspace()
	c, _ := f.start()

	// Every seeded user's display name contains "a".
	_, err := c.AssignTask(context.Background(), 200, "a")
	var amb *AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousError, got %T: %v", err, err)
	}
}

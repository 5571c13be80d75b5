// ABOUTME: Renders a board's columns and tasks as styled text for the viewport.
// ABOUTME: Groups tasks by column in column position order; tasks in unknown columns land in a trailing bucket.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/deckhand/weeek"
)

// RenderBoard produces the scrollable body for a board: one section per
// column, each listing its tasks in the order the API returned them.
func RenderBoard(bctx *weeek.BoardContext) string {
	var b strings.Builder

	byColumn := make(map[int][]weeek.Task)
	for _, t := range bctx.Tasks {
		byColumn[t.BoardColumnID] = append(byColumn[t.BoardColumnID], t)
	}

	for i, col := range bctx.Columns {
		if i > 0 {
			b.WriteString("\n")
		}
		tasks := byColumn[col.ID]
		b.WriteString(ColumnStyle.Render(fmt.Sprintf("%s (%d)", col.Name, len(tasks))))
		b.WriteString("\n")
		for _, t := range tasks {
			b.WriteString(renderTask(t))
			b.WriteString("\n")
		}
		delete(byColumn, col.ID)
	}

	// Tasks whose column is not in the listing (e.g. a column deleted while
	// its tasks were being fetched) still need to show up somewhere.
	var strays []weeek.Task
	for _, t := range bctx.Tasks {
		if _, ok := byColumn[t.BoardColumnID]; ok {
			strays = append(strays, t)
		}
	}
	if len(strays) > 0 {
		b.WriteString("\n")
		b.WriteString(ColumnStyle.Render(fmt.Sprintf("(no column) (%d)", len(strays))))
		b.WriteString("\n")
		for _, t := range strays {
			b.WriteString(renderTask(t))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderTask renders a single task row with id, completion marker, priority,
// and assignee count.
func renderTask(t weeek.Task) string {
	marker := "[ ]"
	title := t.Title
	if t.IsCompleted {
		marker = "[x]"
		title = CompletedStyle.Render(title)
	}

	row := fmt.Sprintf("  %s #%d %s", marker, t.ID, title)
	if t.Priority != weeek.PriorityLow {
		row += " " + StyleForPriority(t.Priority).Render(weeek.PriorityName(t.Priority))
	}
	if n := len(t.Assignees); n > 0 {
		row += " " + AssigneeStyle.Render(fmt.Sprintf("(%d assigned)", n))
	}
	if n := len(t.SubTasks); n > 0 {
		row += " " + AssigneeStyle.Render(fmt.Sprintf("[%d subtasks]", n))
	}
	return row
}

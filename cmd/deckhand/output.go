// ABOUTME: Styled terminal output helpers for the deckhand CLI.
// ABOUTME: Provides fail() which renders the error taxonomy with hints instead of a bare message.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/deckhand/weeek"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// fail prints err to stderr, rendered per error kind, and returns exit code 1.
func fail(err error) int {
	var (
		ambiguous *weeek.AmbiguousError
		notFound  *weeek.NotFoundError
		transport *weeek.TransportError
		partial   *weeek.PartialFailureError
		config    *weeek.ConfigurationError
	)

	switch {
	case errors.As(err, &ambiguous):
		fmt.Fprintf(os.Stderr, "%s %q matched %d %s:\n",
			errStyle.Render("error:"), ambiguous.Query, len(ambiguous.Matches), ambiguous.Scope)
		for _, m := range ambiguous.Matches {
			fmt.Fprintf(os.Stderr, "  %s %s\n", m.Name, dimStyle.Render("(id "+m.ID+")"))
		}
		fmt.Fprintln(os.Stderr, dimStyle.Render("Use a more specific name."))

	case errors.As(err, &notFound):
		fmt.Fprintf(os.Stderr, "%s no %s matched %q\n",
			errStyle.Render("error:"), notFound.Scope, notFound.Query)

	case errors.As(err, &partial):
		// The primary task exists; only some subtasks failed.
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("error:"), err)
		for _, o := range partial.Outcomes {
			if o.Err != nil {
				fmt.Fprintf(os.Stderr, "  failed  %s: %v\n", o.Title, o.Err)
			} else if o.Task != nil {
				fmt.Fprintf(os.Stderr, "  created %s %s\n", o.Title, dimStyle.Render(fmt.Sprintf("(#%d)", o.Task.ID)))
			}
		}

	case errors.As(err, &transport):
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("error:"), err)
		if transport.StatusCode == 401 || transport.StatusCode == 403 {
			fmt.Fprintln(os.Stderr, dimStyle.Render("Check WEEEK_API_TOKEN."))
		}

	case errors.As(err, &config):
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("error:"), err)
		fmt.Fprintln(os.Stderr, dimStyle.Render("Set WEEEK_API_TOKEN in the environment, a .env file, or .deckhand.yaml."))

	default:
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("error:"), err)
	}

	return 1
}

// printTask writes a one-task summary block to stdout.
func printTask(t *weeek.Task) {
	fmt.Printf("%s %s\n", headerStyle.Render(fmt.Sprintf("#%d", t.ID)), t.Title)
	fmt.Printf("  %s %s\n", dimStyle.Render("priority:"), weeek.PriorityName(t.Priority))
	if t.IsCompleted {
		fmt.Printf("  %s %s\n", dimStyle.Render("status:"), okStyle.Render("completed"))
	} else {
		fmt.Printf("  %s open\n", dimStyle.Render("status:"))
	}
	if t.BoardID != 0 {
		fmt.Printf("  %s %d (column %d)\n", dimStyle.Render("board:"), t.BoardID, t.BoardColumnID)
	}
	if len(t.Assignees) > 0 {
		fmt.Printf("  %s %v\n", dimStyle.Render("assignees:"), t.Assignees)
	}
	if t.Description != "" {
		fmt.Printf("  %s %s\n", dimStyle.Render("description:"), t.Description)
	}
	for _, st := range t.SubTasks {
		if st.Title != "" {
			fmt.Printf("  %s #%d %s\n", dimStyle.Render("subtask:"), st.ID, st.Title)
		} else {
			fmt.Printf("  %s #%d\n", dimStyle.Render("subtask:"), st.ID)
		}
	}
}

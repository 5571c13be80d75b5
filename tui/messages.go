// ABOUTME: Bubble Tea message types used in the board browser message loop.
// ABOUTME: Each type wraps the result of an API fetch for the tea.Msg interface (which is interface{}).
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/deckhand/weeek"
)

// BoardsLoadedMsg carries the result of the cross-project board listing.
type BoardsLoadedMsg struct {
	Boards []weeek.BoardSummary
	Err    error
}

// BoardOpenedMsg carries a board joined with its columns and tasks.
type BoardOpenedMsg struct {
	Context *weeek.BoardContext
	Err     error
}

// LoadBoardsCmd fetches every board across every project.
func LoadBoardsCmd(ctx context.Context, client *weeek.Client) tea.Cmd {
	return func() tea.Msg {
		boards, err := client.AllBoards(ctx)
		return BoardsLoadedMsg{Boards: boards, Err: err}
	}
}

// OpenBoardCmd fetches the named board joined with its columns and tasks.
// The name comes from the already-loaded listing, so resolution is expected
// to land on an exact match.
func OpenBoardCmd(ctx context.Context, client *weeek.Client, name string) tea.Cmd {
	return func() tea.Msg {
		bctx, err := client.BoardWithContext(ctx, name)
		return BoardOpenedMsg{Context: bctx, Err: err}
	}
}

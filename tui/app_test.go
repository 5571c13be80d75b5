// ABOUTME: Tests for the board browser AppModel message loop.
// ABOUTME: Covers screen transitions, cursor movement, error display, and quit keys.
package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/deckhand/weeek"
)

func testBoards() []weeek.BoardSummary {
	return []weeek.BoardSummary{
		{Board: weeek.Board{ID: 10, Name: "Release 2.0", ProjectID: 1}, ProjectName: "Platform"},
		{Board: weeek.Board{ID: 20, Name: "Internal", ProjectID: 1}, ProjectName: "Platform"},
		{Board: weeek.Board{ID: 30, Name: "Design Board", ProjectID: 2}, ProjectName: "Design"},
	}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return app, cmd
}

func TestAppStartsLoading(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	if m.screen != ScreenLoading {
		t.Errorf("screen = %d, want ScreenLoading", m.screen)
	}
	if m.Init() == nil {
		t.Error("Init should return the initial fetch command")
	}
	if !strings.Contains(m.View(), "loading") {
		t.Errorf("loading view = %q", m.View())
	}
}

func TestAppBoardsLoaded(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	m, _ = updated(t, m, BoardsLoadedMsg{Boards: testBoards()})

	if m.screen != ScreenBoards {
		t.Fatalf("screen = %d, want ScreenBoards", m.screen)
	}
	view := m.View()
	for _, want := range []string{"Release 2.0", "Internal", "Design Board", "Platform", "Design"} {
		if !strings.Contains(view, want) {
			t.Errorf("board list missing %q:\n%s", want, view)
		}
	}
}

func TestAppBoardsLoadError(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	m, _ = updated(t, m, BoardsLoadedMsg{Err: errors.New("boom")})

	if m.screen != ScreenBoards {
		t.Fatalf("screen = %d, want ScreenBoards", m.screen)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("error should be visible:\n%s", m.View())
	}
}

func TestAppCursorMovement(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	m, _ = updated(t, m, BoardsLoadedMsg{Boards: testBoards()})

	// Cursor clamps at the top.
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	// And clamps at the bottom.
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d after down at bottom, want 2", m.cursor)
	}
}

func TestAppEnterOpensBoard(t *testing.T) {
	client, err := weeek.New("token")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := NewAppModel(context.Background(), client)
	m, _ = updated(t, m, BoardsLoadedMsg{Boards: testBoards()})
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := updated(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != ScreenLoading {
		t.Errorf("screen = %d after enter, want ScreenLoading", m.screen)
	}
	if cmd == nil {
		t.Error("enter should return a fetch command")
	}
}

func TestAppEnterOnEmptyList(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	m, _ = updated(t, m, BoardsLoadedMsg{})

	m, cmd := updated(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != ScreenBoards || cmd != nil {
		t.Error("enter with no boards should do nothing")
	}
}

func TestAppBoardOpened(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	m, _ = updated(t, m, BoardsLoadedMsg{Boards: testBoards()})
	m, _ = updated(t, m, BoardOpenedMsg{Context: testBoardContext()})

	if m.screen != ScreenBoard {
		t.Fatalf("screen = %d, want ScreenBoard", m.screen)
	}
	view := m.View()
	if !strings.Contains(view, "Release 2.0") || !strings.Contains(view, "Platform") {
		t.Errorf("board header missing:\n%s", view)
	}

	// Esc returns to the listing.
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != ScreenBoards {
		t.Errorf("screen = %d after esc, want ScreenBoards", m.screen)
	}
}

func TestAppBoardOpenError(t *testing.T) {
	m := NewAppModel(context.Background(), nil)
	m, _ = updated(t, m, BoardsLoadedMsg{Boards: testBoards()})
	m, _ = updated(t, m, BoardOpenedMsg{Err: errors.New("gone")})

	if m.screen != ScreenBoards {
		t.Fatalf("screen = %d, want ScreenBoards", m.screen)
	}
	if !strings.Contains(m.View(), "gone") {
		t.Errorf("error should be visible:\n%s", m.View())
	}
}

func TestAppQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := NewAppModel(context.Background(), nil)
		m, _ = updated(t, m, BoardsLoadedMsg{Boards: testBoards()})

		var msg tea.Msg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := updated(t, m, msg)
		if cmd == nil {
			t.Errorf("%s should return tea.Quit", key)
		}
	}
}

// ABOUTME: Top-level Bubble Tea AppModel for the interactive board browser.
// ABOUTME: Implements tea.Model (Init, Update, View) across loading, board-list, and board-detail screens.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/deckhand/weeek"
)

// Screen indicates which view the browser is currently showing.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenBoards
	ScreenBoard
)

// AppModel is the top-level Bubble Tea model for the read-only board browser.
// All mutations go through the CLI; the browser only fetches and renders.
type AppModel struct {
	client *weeek.Client
	ctx    context.Context

	screen   Screen
	boards   []weeek.BoardSummary
	cursor   int
	board    *weeek.BoardContext
	spinner  spinner.Model
	viewport viewport.Model
	err      error
	width    int
	height   int
}

// NewAppModel creates an AppModel that fetches through the given client.
func NewAppModel(ctx context.Context, client *weeek.Client) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = TitleStyle
	return AppModel{
		client:   client,
		ctx:      ctx,
		screen:   ScreenLoading,
		spinner:  sp,
		viewport: viewport.New(80, 20),
	}
}

// Init implements tea.Model. Starts the board listing fetch and the spinner.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		LoadBoardsCmd(m.ctx, m.client),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		if msg.Height > 4 {
			m.viewport.Height = msg.Height - 4
		}
		return m, nil

	case BoardsLoadedMsg:
		return m.handleBoardsLoaded(msg)

	case BoardOpenedMsg:
		return m.handleBoardOpened(msg)

	case spinner.TickMsg:
		if m.screen != ScreenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m AppModel) View() string {
	switch m.screen {
	case ScreenLoading:
		return fmt.Sprintf("%s loading...\n", m.spinner.View())
	case ScreenBoards:
		return m.viewBoardList()
	case ScreenBoard:
		return m.viewBoard()
	}
	return ""
}

func (m AppModel) handleBoardsLoaded(msg BoardsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.screen = ScreenBoards
		return m, nil
	}
	m.err = nil
	m.boards = msg.Boards
	m.cursor = 0
	m.screen = ScreenBoards
	return m, nil
}

func (m AppModel) handleBoardOpened(msg BoardOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.screen = ScreenBoards
		return m, nil
	}
	m.err = nil
	m.board = msg.Context
	m.screen = ScreenBoard
	m.viewport.SetContent(RenderBoard(msg.Context))
	m.viewport.GotoTop()
	return m, nil
}

func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenBoards:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.boards)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.boards) == 0 {
				return m, nil
			}
			m.screen = ScreenLoading
			return m, tea.Batch(
				OpenBoardCmd(m.ctx, m.client, m.boards[m.cursor].Name),
				m.spinner.Tick,
			)
		case "r":
			m.screen = ScreenLoading
			return m, tea.Batch(LoadBoardsCmd(m.ctx, m.client), m.spinner.Tick)
		}
		return m, nil

	case ScreenBoard:
		switch msg.String() {
		case "esc", "backspace":
			m.screen = ScreenBoards
			return m, nil
		case "r":
			m.screen = ScreenLoading
			return m, tea.Batch(
				OpenBoardCmd(m.ctx, m.client, m.board.Board.Name),
				m.spinner.Tick,
			)
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// viewBoardList renders the cross-project board listing with the cursor row
// highlighted.
func (m AppModel) viewBoardList() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Boards"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.boards) == 0 {
		b.WriteString(ProjectStyle.Render("no boards"))
		b.WriteString("\n")
	}
	for i, board := range m.boards {
		line := fmt.Sprintf("%s  %s", board.Name, ProjectStyle.Render("("+board.ProjectName+")"))
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(UnselectedStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("up/down: move • enter: open • r: refresh • q: quit"))
	return b.String()
}

// viewBoard renders the open board's header and its scrollable body.
func (m AppModel) viewBoard() string {
	var b strings.Builder
	title := fmt.Sprintf("%s — %s", m.board.Board.Name, m.board.Board.ProjectName)
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc: back • r: refresh • q: quit"))
	return b.String()
}

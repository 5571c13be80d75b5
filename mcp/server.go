// ABOUTME: Stdio MCP server exposing the core name-resolving operations as tools.
// ABOUTME: Wraps the weeek client so agent frontends can list boards, inspect them, and create or move tasks.

package mcp

import (
	"context"
	"errors"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/deckhand/weeek"
)

// Server exposes deckhand operations over the Model Context Protocol.
type Server struct {
	client *weeek.Client
	mcp    *sdk.Server
}

// NewServer builds an MCP server backed by the given API client.
func NewServer(client *weeek.Client, version string) *Server {
	s := &Server{client: client}

	impl := &sdk.Implementation{Name: "deckhand", Version: version}
	s.mcp = sdk.NewServer(impl, nil)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_boards",
		Description: "List every board across every project, annotated with project names.",
	}, s.listBoards)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_board",
		Description: "Resolve a board by name and return it joined with its columns and tasks.",
	}, s.getBoard)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "create_task",
		Description: "Create a task by human-friendly references: board, column, and assignee names are resolved before anything is created. Optional subtasks are created under the new task in order.",
	}, s.createTask)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "move_task",
		Description: "Move a task to a column of its current board, resolved by column name.",
	}, s.moveTask)

	return s
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &sdk.StdioTransport{})
}

type listBoardsInput struct{}

type listBoardsOutput struct {
	Boards []boardInfo `json:"boards"`
}

type boardInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProjectID   int    `json:"projectId"`
	ProjectName string `json:"projectName"`
}

func (s *Server) listBoards(ctx context.Context, req *sdk.CallToolRequest, in listBoardsInput) (*sdk.CallToolResult, listBoardsOutput, error) {
	boards, err := s.client.AllBoards(ctx)
	if err != nil {
		return nil, listBoardsOutput{}, err
	}
	out := listBoardsOutput{Boards: make([]boardInfo, len(boards))}
	for i, b := range boards {
		out.Boards[i] = boardInfo{ID: b.ID, Name: b.Name, ProjectID: b.ProjectID, ProjectName: b.ProjectName}
	}
	return nil, out, nil
}

type getBoardInput struct {
	Name string `json:"name" jsonschema:"board name, matched exact-then-substring across all projects"`
}

type getBoardOutput struct {
	Board   boardInfo      `json:"board"`
	Columns []weeek.Column `json:"columns"`
	Tasks   []weeek.Task   `json:"tasks"`
}

func (s *Server) getBoard(ctx context.Context, req *sdk.CallToolRequest, in getBoardInput) (*sdk.CallToolResult, getBoardOutput, error) {
	bctx, err := s.client.BoardWithContext(ctx, in.Name)
	if err != nil {
		return nil, getBoardOutput{}, err
	}
	return nil, getBoardOutput{
		Board: boardInfo{
			ID:          bctx.Board.ID,
			Name:        bctx.Board.Name,
			ProjectID:   bctx.Board.ProjectID,
			ProjectName: bctx.Board.ProjectName,
		},
		Columns: bctx.Columns,
		Tasks:   bctx.Tasks,
	}, nil
}

type createTaskInput struct {
	Title       string   `json:"title" jsonschema:"task title (required)"`
	Board       string   `json:"board,omitempty" jsonschema:"board name to resolve across all projects"`
	Column      string   `json:"column,omitempty" jsonschema:"column name within the board, first substring match wins"`
	Assignee    string   `json:"assignee,omitempty" jsonschema:"workspace member display name"`
	Priority    int      `json:"priority,omitempty" jsonschema:"0 low, 1 medium, 2 high, 3 urgent"`
	Description string   `json:"description,omitempty"`
	Subtasks    []string `json:"subtasks,omitempty" jsonschema:"subtask titles, created in order under the new task"`
}

type subtaskResult struct {
	Title string `json:"title"`
	ID    int    `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

type createTaskOutput struct {
	Task     *weeek.Task     `json:"task"`
	Partial  bool            `json:"partial,omitempty"`
	Subtasks []subtaskResult `json:"subtasks,omitempty"`
}

func (s *Server) createTask(ctx context.Context, req *sdk.CallToolRequest, in createTaskInput) (*sdk.CallToolResult, createTaskOutput, error) {
	task, err := s.client.CreateTaskDetailed(ctx, weeek.TaskSpec{
		Title:       in.Title,
		Board:       in.Board,
		Column:      in.Column,
		Assignee:    in.Assignee,
		Priority:    in.Priority,
		Description: in.Description,
		Subtasks:    in.Subtasks,
	})

	// A partial failure still created the primary task; report the per-subtask
	// outcomes instead of discarding the success.
	var pf *weeek.PartialFailureError
	if errors.As(err, &pf) {
		out := createTaskOutput{Task: task, Partial: true}
		for _, o := range pf.Outcomes {
			r := subtaskResult{Title: o.Title}
			if o.Task != nil {
				r.ID = o.Task.ID
			}
			if o.Err != nil {
				r.Error = o.Err.Error()
			}
			out.Subtasks = append(out.Subtasks, r)
		}
		return nil, out, nil
	}
	if err != nil {
		return nil, createTaskOutput{}, err
	}
	return nil, createTaskOutput{Task: task}, nil
}

type moveTaskInput struct {
	TaskID int    `json:"taskId" jsonschema:"numeric id of the task to move"`
	Column string `json:"column" jsonschema:"target column name within the task's current board"`
}

type moveTaskOutput struct {
	Column weeek.Column `json:"column"`
}

func (s *Server) moveTask(ctx context.Context, req *sdk.CallToolRequest, in moveTaskInput) (*sdk.CallToolResult, moveTaskOutput, error) {
	col, err := s.client.MoveTaskToColumn(ctx, in.TaskID, in.Column)
	if err != nil {
		return nil, moveTaskOutput{}, err
	}
	return nil, moveTaskOutput{Column: *col}, nil
}

// ABOUTME: Shared fake remote API for package tests, backed by httptest and stdlib mux routing.
// ABOUTME: Serves canned entities, records mutation calls, and can fail selected routes on demand.

package weeek

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeAPI is a configurable double for the remote API. Read endpoints serve
// the canned entities; mutation endpoints record their payloads for
// verification and allocate ids sequentially.
type fakeAPI struct {
	t *testing.T

	mu       sync.Mutex
	projects []Project
	boards   map[int][]Board  // keyed by project id
	columns  map[int][]Column // keyed by board id
	tasks    map[int][]Task   // keyed by board id
	taskByID map[int]Task
	users    []User

	failBoardsFor    map[int]bool    // project ids whose boards listing returns 500
	failCreateTitles map[string]bool // task titles whose creation returns 500

	nextID          int
	createCalls     []CreateTaskRequest
	createHeaders   []http.Header
	moveColumnCalls [][2]int // task id, column id
	updateCalls     []int    // task ids
	columnsCalls    int
	tasksListCalls  int
	mutationCalls   int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{
		t:                t,
		boards:           map[int][]Board{},
		columns:          map[int][]Column{},
		tasks:            map[int][]Task{},
		taskByID:         map[int]Task{},
		failBoardsFor:    map[int]bool{},
		failCreateTitles: map[string]bool{},
		nextID:           100,
	}
}

// start serves the fake API and returns a client pointed at it.
func (f *fakeAPI) start() (*Client, *httptest.Server) {
	srv := httptest.NewServer(f.handler())
	f.t.Cleanup(srv.Close)

	client, err := New("test-token", WithBaseURL(srv.URL))
	if err != nil {
		f.t.Fatalf("creating client: %v", err)
	}
	return client, srv
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /tm/projects", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		writeJSON(w, map[string]any{"success": true, "projects": f.projects})
	})

	mux.HandleFunc("GET /tm/boards", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		projectID, _ := strconv.Atoi(r.URL.Query().Get("projectId"))
		f.mu.Lock()
		fail := f.failBoardsFor[projectID]
		boards := f.boards[projectID]
		f.mu.Unlock()
		if fail {
			http.Error(w, `{"success":false}`, http.StatusInternalServerError)
			return
		}
		if projectID == 0 {
			var all []Board
			for _, bs := range f.boards {
				all = append(all, bs...)
			}
			boards = all
		}
		writeJSON(w, map[string]any{"success": true, "boards": boards})
	})

	mux.HandleFunc("GET /tm/board-columns", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		boardID, _ := strconv.Atoi(r.URL.Query().Get("boardId"))
		f.mu.Lock()
		f.columnsCalls++
		cols := f.columns[boardID]
		f.mu.Unlock()
		writeJSON(w, map[string]any{"success": true, "boardColumns": cols})
	})

	mux.HandleFunc("GET /tm/tasks", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		boardID, _ := strconv.Atoi(r.URL.Query().Get("boardId"))
		f.mu.Lock()
		f.tasksListCalls++
		tasks := f.tasks[boardID]
		f.mu.Unlock()
		writeJSON(w, map[string]any{"success": true, "tasks": tasks})
	})

	mux.HandleFunc("GET /tm/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		task, ok := f.taskByID[id]
		f.mu.Unlock()
		if !ok {
			http.Error(w, `{"success":false,"message":"task not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"success": true, "task": task})
	})

	mux.HandleFunc("POST /tm/tasks", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		f.mutationCalls++
		f.createCalls = append(f.createCalls, req)
		f.createHeaders = append(f.createHeaders, r.Header.Clone())

		if f.failCreateTitles[req.Title] {
			http.Error(w, `{"success":false,"message":"boom"}`, http.StatusInternalServerError)
			return
		}

		f.nextID++
		task := Task{
			ID:            f.nextID,
			Title:         req.Title,
			Description:   req.Description,
			Priority:      req.Priority,
			ProjectID:     req.ProjectID,
			BoardID:       req.BoardID,
			BoardColumnID: req.BoardColumnID,
			Assignees:     req.Assignees,
		}
		if req.ParentID != 0 {
			parentID := req.ParentID
			task.ParentID = &parentID
		}
		f.taskByID[task.ID] = task
		writeJSON(w, map[string]any{"success": true, "task": task})
	})

	mux.HandleFunc("PUT /tm/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		f.mutationCalls++
		f.updateCalls = append(f.updateCalls, id)
		task := f.taskByID[id]
		f.mu.Unlock()
		writeJSON(w, map[string]any{"success": true, "task": task})
	})

	mux.HandleFunc("POST /tm/tasks/{id}/board-column", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		id, _ := strconv.Atoi(r.PathValue("id"))
		var body struct {
			BoardColumnID int `json:"boardColumnId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.mutationCalls++
		f.moveColumnCalls = append(f.moveColumnCalls, [2]int{id, body.BoardColumnID})
		f.mu.Unlock()
		writeJSON(w, map[string]any{"success": true})
	})

	mux.HandleFunc("GET /ws/members", func(w http.ResponseWriter, r *http.Request) {
		f.checkAuth(r)
		writeJSON(w, map[string]any{"success": true, "members": f.users})
	})

	return mux
}

func (f *fakeAPI) checkAuth(r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		f.t.Errorf("%s %s: missing bearer token", r.Method, r.URL.Path)
	}
	if r.Header.Get("X-Request-Id") == "" {
		f.t.Errorf("%s %s: missing X-Request-Id header", r.Method, r.URL.Path)
	}
}

func (f *fakeAPI) getCreateCalls() []CreateTaskRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CreateTaskRequest, len(f.createCalls))
	copy(out, f.createCalls)
	return out
}

func (f *fakeAPI) getMutationCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutationCalls
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(fmt.Sprintf("encoding fake response: %v", err))
	}
}

// seedWorkspace populates the fake with a small two-project workspace used by
// several tests:
//
//	project 1 "Platform": board 10 "Release 2.0" (columns 11 Backlog, 12 Doing), board 20 "Internal"
//	project 2 "Design":   board 30 "Design Board"
//	users: Ada Lovelace, Grace Hopper, bare-email user
func (f *fakeAPI) seedWorkspace() {
	f.projects = []Project{
		{ID: 1, Name: "Platform"},
		{ID: 2, Name: "Design"},
	}
	f.boards = map[int][]Board{
		1: {
			{ID: 10, Name: "Release 2.0", ProjectID: 1},
			{ID: 20, Name: "Internal", ProjectID: 1},
		},
		2: {
			{ID: 30, Name: "Design Board", ProjectID: 2},
		},
	}
	f.columns = map[int][]Column{
		10: {
			{ID: 11, Name: "Backlog", BoardID: 10, Position: 0},
			{ID: 12, Name: "Doing", BoardID: 10, Position: 1},
		},
		30: {
			{ID: 31, Name: "Backlog", BoardID: 30, Position: 0},
		},
	}
	f.users = []User{
		{ID: "u-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		{ID: "u-2", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
		{ID: "u-3", Email: "mystery@example.com"},
	}
}

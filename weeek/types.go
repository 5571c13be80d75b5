// ABOUTME: Remote entity types for the project-management API: projects, boards, columns, tasks, users, attachments.
// ABOUTME: All entities are remote-owned records; optional fields are pointers with documented defaults.

package weeek

import (
	"encoding/json"
	"strings"
	"time"
)

// Task priority levels as used by the remote API.
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
	PriorityUrgent = 3
)

// PriorityName returns the human-readable label for a priority level.
// Unknown levels render as "low", matching the remote default.
func PriorityName(priority int) string {
	switch priority {
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "low"
	}
}

// ParsePriority maps a label back to its numeric level. It accepts the labels
// produced by PriorityName in any case.
func ParsePriority(label string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low", "":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	case "urgent":
		return PriorityUrgent, true
	default:
		return 0, false
	}
}

// Project is the top-level container owning boards.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPrivate   bool   `json:"isPrivate"`
}

// Board is a kanban-style container of columns and tasks, scoped to a project.
type Board struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ProjectID int    `json:"projectId"`
	IsPrivate bool   `json:"isPrivate"`
}

// Column is a named stage within a board. Tasks reference exactly one column
// at a time via Task.BoardColumnID.
type Column struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	BoardID  int    `json:"boardId"`
	Position int    `json:"position"`
}

// Task is a work item. BoardColumnID, when present, always references a
// column of the same board as BoardID.
type Task struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Priority      int          `json:"priority"`
	IsCompleted   bool         `json:"isCompleted"`
	ProjectID     int          `json:"projectId,omitempty"`
	BoardID       int          `json:"boardId,omitempty"`
	BoardColumnID int          `json:"boardColumnId,omitempty"`
	Assignees     []string     `json:"assignees,omitempty"`
	ParentID      *int         `json:"parentId,omitempty"`
	SubTasks      []SubTask    `json:"subTasks,omitempty"`
	Attachments   []Attachment `json:"attachments,omitempty"`
}

// SubTask is a reference to a child task. The remote API returns subtasks
// either as bare numeric ids or as nested task objects depending on the
// endpoint, so decoding accepts both shapes.
type SubTask struct {
	ID    int
	Title string
}

func (s *SubTask) UnmarshalJSON(data []byte) error {
	// Bare numeric id.
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		s.ID = id
		return nil
	}
	// Nested object.
	var obj struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.ID = obj.ID
	s.Title = obj.Title
	return nil
}

func (s SubTask) MarshalJSON() ([]byte, error) {
	if s.Title == "" {
		return json.Marshal(s.ID)
	}
	return json.Marshal(struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}{s.ID, s.Title})
}

// User is a workspace member. User ids are opaque strings, unlike the numeric
// ids of the other entities.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Name returns the user's display name: first and last name joined, falling
// back to the email address when both are empty.
func (u User) Name() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.Email
	}
	return name
}

// Attachment is a file attached to a task. Attachment records are remote-owned
// and passed through unmodified; the access URL has limited validity.
// TimeEntry is one recorded span of tracked time on a task. Duration is in
// minutes; IsActive marks a still-running timer.
type TimeEntry struct {
	ID       int    `json:"id"`
	TaskID   int    `json:"taskId"`
	UserID   string `json:"userId,omitempty"`
	Date     string `json:"date,omitempty"`
	Duration int    `json:"duration"`
	IsActive bool   `json:"isActive,omitempty"`
}

type Attachment struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creatorId,omitempty"`
	Service   string    `json:"service,omitempty"`
	Name      string    `json:"name"`
	URL       string    `json:"url,omitempty"`
	Size      int64     `json:"size,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

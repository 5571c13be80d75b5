// ABOUTME: Project accessors and pass-through mutations for the /tm/projects endpoints.
// ABOUTME: One remote call per method; list responses unwrap the "projects" envelope field.

package weeek

import (
	"context"
	"fmt"
	"net/http"
)

// CreateProjectRequest carries the fields for creating or updating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPrivate   bool   `json:"isPrivate,omitempty"`
}

// Projects lists all projects in the workspace.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	raw, err := c.Do(ctx, http.MethodGet, "/tm/projects", nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[Project](raw, "projects")
}

// Project fetches a single project by id.
func (c *Client) Project(ctx context.Context, id int) (*Project, error) {
	raw, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/tm/projects/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	p, err := unwrapItem[Project](raw, "project")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProject resolves a project by name using exact-then-substring matching
// over the full project listing.
func (c *Client) FindProject(ctx context.Context, name string) (*Project, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	match, err := resolveOne(name, "projects", projectCandidates(projects))
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if fmt.Sprint(projects[i].ID) == match.ID {
			return &projects[i], nil
		}
	}
	return nil, newNotFoundError(name, "projects")
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/tm/projects", req, nil)
	if err != nil {
		return nil, err
	}
	p, err := unwrapItem[Project](raw, "project")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject updates a project's fields.
func (c *Client) UpdateProject(ctx context.Context, id int, req CreateProjectRequest) (*Project, error) {
	raw, err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/tm/projects/%d", id), req, nil)
	if err != nil {
		return nil, err
	}
	p, err := unwrapItem[Project](raw, "project")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/tm/projects/%d", id), nil, nil)
	return err
}

// ArchiveProject archives a project.
func (c *Client) ArchiveProject(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/projects/%d/archive", id), nil, nil)
	return err
}

// UnarchiveProject restores an archived project.
func (c *Client) UnarchiveProject(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/projects/%d/un-archive", id), nil, nil)
	return err
}

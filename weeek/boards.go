// ABOUTME: Board accessors and pass-through mutations for the /tm/boards endpoints.
// ABOUTME: Listing is filterable by project id; list responses unwrap the "boards" envelope field.

package weeek

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// CreateBoardRequest carries the fields for creating or updating a board.
type CreateBoardRequest struct {
	Name      string `json:"name"`
	ProjectID int    `json:"projectId,omitempty"`
	IsPrivate bool   `json:"isPrivate,omitempty"`
}

// Boards lists boards, optionally filtered to one project. Pass projectID 0
// for no filter.
func (c *Client) Boards(ctx context.Context, projectID int) ([]Board, error) {
	query := map[string]string{}
	if projectID != 0 {
		query["projectId"] = strconv.Itoa(projectID)
	}
	raw, err := c.Do(ctx, http.MethodGet, "/tm/boards", nil, query)
	if err != nil {
		return nil, err
	}
	return unwrapList[Board](raw, "boards")
}

// Board fetches a single board by id.
func (c *Client) Board(ctx context.Context, id int) (*Board, error) {
	raw, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/tm/boards/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	b, err := unwrapItem[Board](raw, "board")
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBoard creates a board.
func (c *Client) CreateBoard(ctx context.Context, req CreateBoardRequest) (*Board, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/tm/boards", req, nil)
	if err != nil {
		return nil, err
	}
	b, err := unwrapItem[Board](raw, "board")
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBoard updates a board's fields.
func (c *Client) UpdateBoard(ctx context.Context, id int, req CreateBoardRequest) (*Board, error) {
	raw, err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/tm/boards/%d", id), req, nil)
	if err != nil {
		return nil, err
	}
	b, err := unwrapItem[Board](raw, "board")
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBoard deletes a board.
func (c *Client) DeleteBoard(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/tm/boards/%d", id), nil, nil)
	return err
}

// ArchiveBoard archives a board.
func (c *Client) ArchiveBoard(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/boards/%d/archive", id), nil, nil)
	return err
}

// UnarchiveBoard restores an archived board.
func (c *Client) UnarchiveBoard(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/boards/%d/un-archive", id), nil, nil)
	return err
}

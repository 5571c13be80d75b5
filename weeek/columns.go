// ABOUTME: Column accessors and pass-through mutations for the /tm/board-columns endpoints.
// ABOUTME: Listing is filterable by board id; list responses unwrap the "boardColumns" envelope field.

package weeek

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// CreateColumnRequest carries the fields for creating or updating a column.
type CreateColumnRequest struct {
	Name    string `json:"name"`
	BoardID int    `json:"boardId,omitempty"`
}

// Columns lists the columns of a board, in the order the remote API keeps
// them (creation/position order).
func (c *Client) Columns(ctx context.Context, boardID int) ([]Column, error) {
	query := map[string]string{}
	if boardID != 0 {
		query["boardId"] = strconv.Itoa(boardID)
	}
	raw, err := c.Do(ctx, http.MethodGet, "/tm/board-columns", nil, query)
	if err != nil {
		return nil, err
	}
	return unwrapList[Column](raw, "boardColumns")
}

// Column fetches a single column by id.
func (c *Client) Column(ctx context.Context, id int) (*Column, error) {
	raw, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/tm/board-columns/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	col, err := unwrapItem[Column](raw, "boardColumn")
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// CreateColumn creates a column on a board.
func (c *Client) CreateColumn(ctx context.Context, req CreateColumnRequest) (*Column, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/tm/board-columns", req, nil)
	if err != nil {
		return nil, err
	}
	col, err := unwrapItem[Column](raw, "boardColumn")
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateColumn renames a column.
func (c *Client) UpdateColumn(ctx context.Context, id int, req CreateColumnRequest) (*Column, error) {
	raw, err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/tm/board-columns/%d", id), req, nil)
	if err != nil {
		return nil, err
	}
	col, err := unwrapItem[Column](raw, "boardColumn")
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// DeleteColumn deletes a column.
func (c *Client) DeleteColumn(ctx context.Context, id int) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/tm/board-columns/%d", id), nil, nil)
	return err
}

// MoveColumn changes a column's position within its board.
func (c *Client) MoveColumn(ctx context.Context, id, position int) error {
	body := map[string]int{"position": position}
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/tm/board-columns/%d/move", id), body, nil)
	return err
}

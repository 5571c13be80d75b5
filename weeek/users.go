// ABOUTME: Workspace member accessor and user name resolution.
// ABOUTME: Unwraps the "members" envelope field of the /ws/members listing.

package weeek

import (
	"context"
	"net/http"
)

// Users lists the workspace members.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	raw, err := c.Do(ctx, http.MethodGet, "/ws/members", nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[User](raw, "members")
}

// FindUser resolves a workspace member by display name using
// exact-then-substring matching. Names are derived per User.Name, so an
// email address matches a member without first and last names.
func (c *Client) FindUser(ctx context.Context, name string) (*User, error) {
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}
	match, err := resolveOne(name, "workspace members", userCandidates(users))
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == match.ID {
			return &users[i], nil
		}
	}
	return nil, newNotFoundError(name, "workspace members")
}

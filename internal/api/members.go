package api

import (
	"context"
	"fmt"
	"net/http"
)

type userResponse struct {
	Data User `json:"data"`
}

type membersResponse struct {
	Data []Member `json:"data"`
}

// CurrentUser returns the user the API key belongs to.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var resp userResponse
	if err := c.request(ctx, http.MethodGet, "/users/me", nil, nil, &resp); err != nil {
		return User{}, err
	}
	return resp.Data, nil
}

func (c *Client) ListMembers(ctx context.Context, orgID string) ([]Member, error) {
	var resp membersResponse
	path := fmt.Sprintf("/organizations/%s/members", orgID)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CurrentMember resolves the current user's membership in an
// organization by matching the member list against /users/me.
func (c *Client) CurrentMember(ctx context.Context, orgID string) (Member, error) {
	members, err := c.ListMembers(ctx, orgID)
	if err != nil {
		return Member{}, fmt.Errorf("failed to list members: %w", err)
	}
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return Member{}, fmt.Errorf("failed to get current user: %w", err)
	}
	for _, m := range members {
		if m.UserID == user.ID {
			return m, nil
		}
	}
	return Member{}, fmt.Errorf("member not found in organization %s", orgID)
}

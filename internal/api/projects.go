package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateProjectBody is the payload for creating an organization project.
type CreateProjectBody struct {
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	ClientID   *string  `json:"client_id"`
	IsBillable bool     `json:"is_billable"`
	MemberIDs  []string `json:"member_ids"`
}

type projectsResponse struct {
	Data []Project `json:"data"`
}

type projectResponse struct {
	Data Project `json:"data"`
}

func (c *Client) ListProjects(ctx context.Context, orgID string) ([]Project, error) {
	var resp projectsResponse
	path := fmt.Sprintf("/organizations/%s/projects", orgID)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateProject(ctx context.Context, orgID string, body CreateProjectBody) (Project, error) {
	var resp projectResponse
	path := fmt.Sprintf("/organizations/%s/projects", orgID)
	if err := c.request(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return Project{}, err
	}
	return resp.Data, nil
}

package zammad

import (
	"context"
	"fmt"
	"iter"
	"net/http"

	"github.com/google/go-querystring/query"
)

// Group represents a Zammad group, the unit tickets are dispatched to.
type Group struct {
	// ID is the unique id of the group.
	ID int `json:"id,omitempty"`
	// Name is the name of the group.
	Name string `json:"name,omitempty"`
	// Note is an internal note on the group.
	Note string `json:"note,omitempty"`
	// Active reports whether the group is active.
	Active bool `json:"active,omitempty"`
}

// IsRelevantGroup reports whether a group should be offered for selection.
// Unlike organizations there is no reserved group to exclude, so only the
// active flag is checked.
func IsRelevantGroup(group Group) bool {
	return group.Active
}

// Groups retrieves a single page of groups.
func (c *Client) Groups(ctx context.Context, params PageParams) ([]Group, error) {
	v, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/groups", v, nil)
	if err != nil {
		return nil, err
	}

	var groups []Group
	if err := c.doJSON(req, &groups); err != nil {
		return nil, fmt.Errorf("group list: %w", err)
	}

	return groups, nil
}

// GroupsIter returns an iterator over all groups.
func (c *Client) GroupsIter(ctx context.Context) iter.Seq2[Group, error] {
	return iterate(ctx, c.Groups)
}

// AllGroups retrieves all groups. A limit greater than zero caps the
// number of returned groups.
func (c *Client) AllGroups(ctx context.Context, limit int) ([]Group, error) {
	return collect(c.GroupsIter(ctx), limit)
}

// Group retrieves a single group.
func (c *Client) Group(ctx context.Context, id int) (*Group, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/groups/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var group Group
	if err := c.doJSON(req, &group); err != nil {
		return nil, fmt.Errorf("group get: %w", err)
	}

	return &group, nil
}

// GroupCreate creates a new group.
func (c *Client) GroupCreate(ctx context.Context, group Group) (*Group, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/groups", nil, group)
	if err != nil {
		return nil, err
	}

	var created Group
	if err := c.doJSON(req, &created); err != nil {
		return nil, fmt.Errorf("group create: %w", err)
	}

	return &created, nil
}

// GroupUpdate updates the given fields of a group. At least one field is
// required.
func (c *Client) GroupUpdate(ctx context.Context, id int, fields map[string]any) (*Group, error) {
	if len(fields) == 0 {
		return nil, emptyUpdateError("group")
	}

	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/groups/%d", id), nil, fields)
	if err != nil {
		return nil, err
	}

	var updated Group
	if err := c.doJSON(req, &updated); err != nil {
		return nil, fmt.Errorf("group update: %w", err)
	}

	return &updated, nil
}

// GroupDelete deletes a group.
func (c *Client) GroupDelete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d", id), nil, nil)
	if err != nil {
		return err
	}

	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("group delete: %w", err)
	}

	return nil
}

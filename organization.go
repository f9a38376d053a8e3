package zammad

import (
	"context"
	"fmt"
	"iter"
	"net/http"

	"github.com/google/go-querystring/query"
)

// foundationName is the reserved organization present on every instance.
const foundationName = "Zammad Foundation"

// Organization represents a Zammad organization.
type Organization struct {
	// ID is the unique id of the organization.
	ID int `json:"id,omitempty"`
	// Name is the name of the organization.
	Name string `json:"name,omitempty"`
	// Domain is the email domain associated with the organization.
	Domain string `json:"domain,omitempty"`
	// Note is an internal note on the organization.
	Note string `json:"note,omitempty"`
	// Active reports whether the organization is active.
	Active bool `json:"active,omitempty"`
	// UpdatedAt is the last modification timestamp.
	UpdatedAt Time `json:"updated_at,omitzero"`
}

// IsRelevantOrganization reports whether an organization should be offered
// for selection: active and not the reserved foundation organization.
func IsRelevantOrganization(org Organization) bool {
	return org.Name != foundationName && org.Active
}

// Organizations retrieves a single page of organizations.
func (c *Client) Organizations(ctx context.Context, params PageParams) ([]Organization, error) {
	v, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/organizations", v, nil)
	if err != nil {
		return nil, err
	}

	var orgs []Organization
	if err := c.doJSON(req, &orgs); err != nil {
		return nil, fmt.Errorf("organization list: %w", err)
	}

	return orgs, nil
}

// OrganizationsIter returns an iterator over all organizations.
func (c *Client) OrganizationsIter(ctx context.Context) iter.Seq2[Organization, error] {
	return iterate(ctx, c.Organizations)
}

// AllOrganizations retrieves all organizations. A limit greater than zero
// caps the number of returned organizations.
func (c *Client) AllOrganizations(ctx context.Context, limit int) ([]Organization, error) {
	return collect(c.OrganizationsIter(ctx), limit)
}

// Organization retrieves a single organization.
func (c *Client) Organization(ctx context.Context, id int) (*Organization, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/organizations/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var org Organization
	if err := c.doJSON(req, &org); err != nil {
		return nil, fmt.Errorf("organization get: %w", err)
	}

	return &org, nil
}

// OrganizationCreate creates a new organization.
func (c *Client) OrganizationCreate(ctx context.Context, org Organization) (*Organization, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/organizations", nil, org)
	if err != nil {
		return nil, err
	}

	var created Organization
	if err := c.doJSON(req, &created); err != nil {
		return nil, fmt.Errorf("organization create: %w", err)
	}

	return &created, nil
}

// OrganizationUpdate updates the given fields of an organization. At least
// one field is required.
func (c *Client) OrganizationUpdate(ctx context.Context, id int, fields map[string]any) (*Organization, error) {
	if len(fields) == 0 {
		return nil, emptyUpdateError("organization")
	}

	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/organizations/%d", id), nil, fields)
	if err != nil {
		return nil, err
	}

	var updated Organization
	if err := c.doJSON(req, &updated); err != nil {
		return nil, fmt.Errorf("organization update: %w", err)
	}

	return &updated, nil
}

// OrganizationDelete deletes an organization.
func (c *Client) OrganizationDelete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/organizations/%d", id), nil, nil)
	if err != nil {
		return err
	}

	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("organization delete: %w", err)
	}

	return nil
}

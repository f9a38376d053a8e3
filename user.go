package zammad

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"slices"
	"strings"

	"github.com/google/go-querystring/query"
)

// CustomerRoleID is the id of the built-in customer role.
const CustomerRoleID = 3

// ownDomainSuffix marks addresses belonging to the Zammad project itself.
const ownDomainSuffix = "@zammad.org"

// User represents a Zammad user.
type User struct {
	// ID is the unique id of the user.
	ID int `json:"id,omitempty"`
	// Login is the login name of the user.
	Login string `json:"login,omitempty"`
	// FirstName is the first name of the user.
	FirstName string `json:"firstname,omitempty"`
	// LastName is the last name of the user.
	LastName string `json:"lastname,omitempty"`
	// Email is the primary email address of the user.
	Email string `json:"email,omitempty"`
	// OrganizationID is the id of the user's primary organization.
	OrganizationID int `json:"organization_id,omitempty"`
	// RoleIDs are the ids of the roles assigned to the user.
	RoleIDs []int `json:"role_ids,omitempty"`
	// Active reports whether the user account is active.
	Active bool `json:"active,omitempty"`
	// LastLogin may be null for users that never logged in.
	LastLogin Time `json:"last_login,omitzero"`
}

// IsCustomer reports whether the user is a customer from outside the
// project's own domain.
func IsCustomer(user User) bool {
	return slices.Contains(user.RoleIDs, CustomerRoleID) &&
		!strings.HasSuffix(user.Email, ownDomainSuffix)
}

// Users retrieves a single page of users.
func (c *Client) Users(ctx context.Context, params PageParams) ([]User, error) {
	v, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/users", v, nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := c.doJSON(req, &users); err != nil {
		return nil, fmt.Errorf("user list: %w", err)
	}

	return users, nil
}

// UsersIter returns an iterator over all users.
func (c *Client) UsersIter(ctx context.Context) iter.Seq2[User, error] {
	return iterate(ctx, c.Users)
}

// AllUsers retrieves all users. A limit greater than zero caps the number
// of returned users.
func (c *Client) AllUsers(ctx context.Context, limit int) ([]User, error) {
	return collect(c.UsersIter(ctx), limit)
}

// User retrieves a single user.
func (c *Client) User(ctx context.Context, id int) (*User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return nil, fmt.Errorf("user get: %w", err)
	}

	return &user, nil
}

// Me retrieves the currently authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/users/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return nil, fmt.Errorf("user me: %w", err)
	}

	return &user, nil
}

// UserCreate creates a new user.
func (c *Client) UserCreate(ctx context.Context, user User) (*User, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/users", nil, user)
	if err != nil {
		return nil, err
	}

	var created User
	if err := c.doJSON(req, &created); err != nil {
		return nil, fmt.Errorf("user create: %w", err)
	}

	return &created, nil
}

// UserUpdate updates the given fields of a user. At least one field is
// required.
func (c *Client) UserUpdate(ctx context.Context, id int, fields map[string]any) (*User, error) {
	if len(fields) == 0 {
		return nil, emptyUpdateError("user")
	}

	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, fields)
	if err != nil {
		return nil, err
	}

	var updated User
	if err := c.doJSON(req, &updated); err != nil {
		return nil, fmt.Errorf("user update: %w", err)
	}

	return &updated, nil
}

// UserDelete deletes a user.
func (c *Client) UserDelete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
	if err != nil {
		return err
	}

	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("user delete: %w", err)
	}

	return nil
}

package zammad

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ObjectKind tags the resource an object manager attribute belongs to.
type ObjectKind string

const (
	ObjectGroup        ObjectKind = "Group"
	ObjectOrganization ObjectKind = "Organization"
	ObjectTicket       ObjectKind = "Ticket"
	ObjectUser         ObjectKind = "User"
)

// systemCreatedByID marks attributes installed by the Zammad initializer.
const systemCreatedByID = 1

// ObjectAttribute is an object manager attribute, Zammad's definition of a
// field on one of its resources.
type ObjectAttribute struct {
	// Name is the internal field name.
	Name string `json:"name,omitempty"`
	// Display is the label shown in the Zammad UI.
	Display string `json:"display,omitempty"`
	// Object is the resource the attribute belongs to.
	Object ObjectKind `json:"object,omitempty"`
	// CreatedByID is the id of the user who created the attribute; 1 is
	// the system initializer.
	CreatedByID int `json:"created_by_id,omitempty"`
}

// LoadOption is a name/value pair used to populate a selection dropdown in
// a host application.
type LoadOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LoadOption converts the attribute for dropdown display. The first
// occurrence of "name" in the display string becomes " Name", so e.g.
// "username" reads as "user Name".
func (a ObjectAttribute) LoadOption() LoadOption {
	return LoadOption{
		Name:  strings.Replace(a.Display, "name", " Name", 1),
		Value: a.Name,
	}
}

// FilterByObject returns a predicate selecting attributes of the given kind.
func FilterByObject(kind ObjectKind) func(ObjectAttribute) bool {
	return func(a ObjectAttribute) bool {
		return a.Object == kind
	}
}

// IsCustom reports whether the attribute was user-defined rather than
// installed by the system initializer.
func IsCustom(a ObjectAttribute) bool {
	return a.CreatedByID != systemCreatedByID
}

// CustomAttributes selects the user-defined attributes of the given kind.
func CustomAttributes(attrs []ObjectAttribute, kind ObjectKind) []ObjectAttribute {
	byObject := FilterByObject(kind)

	var out []ObjectAttribute
	for _, a := range attrs {
		if byObject(a) && IsCustom(a) {
			out = append(out, a)
		}
	}

	return out
}

// ObjectAttributes retrieves all object manager attributes. They are
// fetched fresh on every call, never cached.
func (c *Client) ObjectAttributes(ctx context.Context) ([]ObjectAttribute, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/object_manager_attributes", nil, nil)
	if err != nil {
		return nil, err
	}

	var attrs []ObjectAttribute
	if err := c.doJSON(req, &attrs); err != nil {
		return nil, fmt.Errorf("object attribute list: %w", err)
	}

	return attrs, nil
}

// CustomObjectAttributes retrieves the user-defined attributes of the given
// kind.
func (c *Client) CustomObjectAttributes(ctx context.Context, kind ObjectKind) ([]ObjectAttribute, error) {
	attrs, err := c.ObjectAttributes(ctx)
	if err != nil {
		return nil, err
	}

	return CustomAttributes(attrs, kind), nil
}

package zammad

import (
	"context"
	"fmt"
	"iter"
	"net/http"

	"github.com/google/go-querystring/query"
)

// Ticket represents a Zammad ticket.
type Ticket struct {
	// ID is the unique id of the ticket.
	ID int `json:"id,omitempty"`
	// Number is the human-readable ticket number.
	Number string `json:"number,omitempty"`
	// Title is the subject of the ticket.
	Title string `json:"title,omitempty"`
	// GroupID is the id of the group the ticket is assigned to.
	GroupID int `json:"group_id,omitempty"`
	// StateID is the id of the ticket state, e.g. open or closed.
	StateID int `json:"state_id,omitempty"`
	// PriorityID is the id of the ticket priority.
	PriorityID int `json:"priority_id,omitempty"`
	// OwnerID is the id of the agent owning the ticket.
	OwnerID int `json:"owner_id,omitempty"`
	// CustomerID is the id of the customer the ticket belongs to.
	CustomerID int `json:"customer_id,omitempty"`
	// OrganizationID is the id of the customer's organization.
	OrganizationID int `json:"organization_id,omitempty"`
	// Note is an internal note on the ticket.
	Note string `json:"note,omitempty"`
	// CreatedByID is the id of the user who created the ticket.
	CreatedByID int `json:"created_by_id,omitempty"`
	// CreatedAt is the creation timestamp.
	CreatedAt Time `json:"created_at,omitzero"`
	// UpdatedAt is the last modification timestamp.
	UpdatedAt Time `json:"updated_at,omitzero"`
	// CloseAt is null while the ticket is open.
	CloseAt Time `json:"close_at,omitzero"`
}

// Tickets retrieves a single page of tickets.
func (c *Client) Tickets(ctx context.Context, params PageParams) ([]Ticket, error) {
	v, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/tickets", v, nil)
	if err != nil {
		return nil, err
	}

	var tickets []Ticket
	if err := c.doJSON(req, &tickets); err != nil {
		return nil, fmt.Errorf("ticket list: %w", err)
	}

	return tickets, nil
}

// TicketsIter returns an iterator over all tickets.
func (c *Client) TicketsIter(ctx context.Context) iter.Seq2[Ticket, error] {
	return iterate(ctx, c.Tickets)
}

// AllTickets retrieves all tickets. A limit greater than zero caps the
// number of returned tickets.
func (c *Client) AllTickets(ctx context.Context, limit int) ([]Ticket, error) {
	return collect(c.TicketsIter(ctx), limit)
}

// Ticket retrieves a single ticket.
func (c *Client) Ticket(ctx context.Context, id int) (*Ticket, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var ticket Ticket
	if err := c.doJSON(req, &ticket); err != nil {
		return nil, fmt.Errorf("ticket get: %w", err)
	}

	return &ticket, nil
}

// TicketCreate creates a new ticket.
func (c *Client) TicketCreate(ctx context.Context, ticket Ticket) (*Ticket, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/tickets", nil, ticket)
	if err != nil {
		return nil, err
	}

	var created Ticket
	if err := c.doJSON(req, &created); err != nil {
		return nil, fmt.Errorf("ticket create: %w", err)
	}

	return &created, nil
}

// TicketUpdate updates the given fields of a ticket. At least one field is
// required.
func (c *Client) TicketUpdate(ctx context.Context, id int, fields map[string]any) (*Ticket, error) {
	if len(fields) == 0 {
		return nil, emptyUpdateError("ticket")
	}

	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/tickets/%d", id), nil, fields)
	if err != nil {
		return nil, err
	}

	var updated Ticket
	if err := c.doJSON(req, &updated); err != nil {
		return nil, fmt.Errorf("ticket update: %w", err)
	}

	return &updated, nil
}

// TicketDelete deletes a ticket.
func (c *Client) TicketDelete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%d", id), nil, nil)
	if err != nil {
		return err
	}

	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("ticket delete: %w", err)
	}

	return nil
}

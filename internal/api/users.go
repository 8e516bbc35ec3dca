package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListUsers returns users, optionally narrowed to one role.
func (c *Client) ListUsers(ctx context.Context, role string) ([]User, error) {
	var query url.Values
	if role != "" {
		query = url.Values{"role": {role}}
	}

	var out []User
	if err := c.get(ctx, "/api/users", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	var out User
	if err := c.post(ctx, "/api/users", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies a partial update to one user.
func (c *Client) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*User, error) {
	var out User
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes one user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

// StationCustomers lists the customers attached to one station.
func (c *Client) StationCustomers(ctx context.Context, stationID int64) ([]User, error) {
	var out []User
	if err := c.get(ctx, fmt.Sprintf("/api/users/station/%d/customers", stationID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopCustomers ranks customers by balance. Order is "asc" or "desc".
func (c *Client) TopCustomers(ctx context.Context, order string, limit int) ([]TopCustomer, error) {
	query := url.Values{
		"order": {order},
		"limit": {strconv.Itoa(limit)},
	}

	var out []TopCustomer
	if err := c.get(ctx, "/api/users/top", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomersReport returns the full customer report ordered by balance.
func (c *Client) CustomersReport(ctx context.Context, order string) ([]TopCustomer, error) {
	query := url.Values{"order": {order}}

	var out []TopCustomer
	if err := c.get(ctx, "/api/users/report", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportCustomersExcel downloads the customer report as a spreadsheet.
func (c *Client) ExportCustomersExcel(ctx context.Context) ([]byte, error) {
	return c.getBinary(ctx, "/api/users/export/excel")
}

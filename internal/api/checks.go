package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Query builds the server-side filter parameters for the checks list.
func (f CheckFilter) Query() url.Values {
	query := url.Values{}
	if f.StationID > 0 {
		query.Set("stationId", strconv.FormatInt(f.StationID, 10))
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.OperatorID > 0 {
		query.Set("operatorId", strconv.FormatInt(f.OperatorID, 10))
	}
	return query
}

// ListChecks returns checks matching the filter.
func (c *Client) ListChecks(ctx context.Context, filter CheckFilter) ([]Check, error) {
	var out []Check
	if err := c.get(ctx, "/api/checks", filter.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCheck issues a new check. The server generates the code and QR.
func (c *Client) CreateCheck(ctx context.Context, input CreateCheckInput) (*Check, error) {
	var out Check
	if err := c.post(ctx, "/api/checks", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmCheck marks a pending check as used, accruing the customer balance.
func (c *Client) ConfirmCheck(ctx context.Context, id int64) (*Check, error) {
	var out Check
	if err := c.put(ctx, fmt.Sprintf("/api/checks/%d/confirm", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelCheck voids a pending check.
func (c *Client) CancelCheck(ctx context.Context, id int64) (*Check, error) {
	var out Check
	if err := c.put(ctx, fmt.Sprintf("/api/checks/%d/cancel", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

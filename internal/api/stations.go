package api

import (
	"context"
	"fmt"
)

// ListStations returns every station.
func (c *Client) ListStations(ctx context.Context) ([]Station, error) {
	var out []Station
	if err := c.get(ctx, "/api/stations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStation registers a new station.
func (c *Client) CreateStation(ctx context.Context, input CreateStationInput) (*Station, error) {
	var out Station
	if err := c.post(ctx, "/api/stations", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStation applies a partial update to one station.
func (c *Client) UpdateStation(ctx context.Context, id int64, input CreateStationInput) (*Station, error) {
	var out Station
	if err := c.put(ctx, fmt.Sprintf("/api/stations/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStation removes one station.
func (c *Client) DeleteStation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/stations/%d", id))
}

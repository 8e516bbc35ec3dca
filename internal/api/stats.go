package api

import (
	"context"
	"fmt"
)

// Stats returns the global aggregate projection.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.get(ctx, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OperatorStats returns one operator's per-period output.
func (c *Client) OperatorStats(ctx context.Context, operatorID int64) (*OperatorStats, error) {
	var out OperatorStats
	if err := c.get(ctx, fmt.Sprintf("/api/stats/operator/%d", operatorID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

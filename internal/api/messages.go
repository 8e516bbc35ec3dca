package api

import "context"

// ListMessages returns past broadcasts, newest first.
func (c *Client) ListMessages(ctx context.Context) ([]Message, error) {
	var out []Message
	if err := c.get(ctx, "/api/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage broadcasts a message to every customer via the companion bot.
func (c *Client) SendMessage(ctx context.Context, content string) (*SendMessageResult, error) {
	body := map[string]string{"content": content}

	var out SendMessageResult
	if err := c.post(ctx, "/api/messages", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

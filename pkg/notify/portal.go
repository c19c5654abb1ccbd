package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// PortalClient talks to the portal's notification endpoints over HTTP.
type PortalClient struct {
	baseURL string
	client  *http.Client
}

// NewPortalClient creates a client rooted at the portal base URL.
func NewPortalClient(baseURL string) *PortalClient {
	return &PortalClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type countResponse struct {
	Count int `json:"count"`
}

type ackResponse struct {
	Success bool `json:"success"`
}

type inboxResponse struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// UnreadCount fetches the authoritative unread count.
func (c *PortalClient) UnreadCount(ctx context.Context) (int, error) {
	body, err := c.get(ctx, "/api/notifications/count")
	if err != nil {
		return 0, fmt.Errorf("fetch unread count: %w", err)
	}
	var resp countResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("parse count response: %w", err)
	}
	return resp.Count, nil
}

// MarkRead acknowledges one item. ok is false when the portal answered with
// success=false.
func (c *PortalClient) MarkRead(ctx context.Context, kind Kind, id string) (bool, error) {
	path := fmt.Sprintf("/api/notifications/%s/read", id)
	if kind == KindMessage {
		path = fmt.Sprintf("/api/messages/%s/read", id)
	}
	body, err := c.post(ctx, path)
	if err != nil {
		return false, fmt.Errorf("mark %s %s read: %w", kind, id, err)
	}
	var resp ackResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("parse ack response: %w", err)
	}
	return resp.Success, nil
}

// Inbox fetches the rendered item list plus the current unread count.
func (c *PortalClient) Inbox(ctx context.Context) ([]Item, int, error) {
	body, err := c.get(ctx, "/api/notifications")
	if err != nil {
		return nil, 0, fmt.Errorf("fetch inbox: %w", err)
	}
	var resp inboxResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, fmt.Errorf("parse inbox response: %w", err)
	}
	return resp.Items, resp.Count, nil
}

func (c *PortalClient) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path)
}

func (c *PortalClient) post(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path)
}

func (c *PortalClient) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

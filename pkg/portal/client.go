package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client talks to the portal's leave request endpoints over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client rooted at the portal base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type leaveResponse struct {
	Requests []LeaveRequest `json:"requests"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// LeaveRequests fetches the caller's leave request rows.
func (c *Client) LeaveRequests(ctx context.Context) ([]LeaveRequest, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/leave-requests", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch leave requests: %w", err)
	}
	var resp leaveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse leave response: %w", err)
	}
	return resp.Requests, nil
}

type documentsResponse struct {
	Documents []Document `json:"documents"`
}

// Documents fetches the caller's uploaded document rows.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/documents", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}
	var resp documentsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse documents response: %w", err)
	}
	return resp.Documents, nil
}

// SubmitLeave posts a new leave request and returns its assigned id.
func (c *Client) SubmitLeave(ctx context.Context, req LeaveRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	body, err := c.do(ctx, http.MethodPost, "/api/leave-requests", payload)
	if err != nil {
		return "", fmt.Errorf("submit leave request: %w", err)
	}
	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parse submit response: %w", err)
	}
	if !resp.Success {
		if resp.Message != "" {
			return "", fmt.Errorf("portal refused leave request: %s", resp.Message)
		}
		return "", fmt.Errorf("portal refused leave request")
	}
	return resp.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

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

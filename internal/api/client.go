package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the remote pizzeria API. All business rules live on
// that side; this client only moves payloads and normalizes failures
// into *Error.
type Client struct {
	BaseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out interface{}) *Error {
	return c.do(ctx, http.MethodGet, token, path, query, "", nil, out)
}

func (c *Client) PostJSON(ctx context.Context, token, path string, body, out interface{}) *Error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindDecode, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}
	return c.do(ctx, http.MethodPost, token, path, nil, "application/json", bytes.NewReader(payload), out)
}

func (c *Client) PutJSON(ctx context.Context, token, path string, body, out interface{}) *Error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindDecode, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}
	return c.do(ctx, http.MethodPut, token, path, nil, "application/json", bytes.NewReader(payload), out)
}

func (c *Client) Delete(ctx context.Context, token, path string, query url.Values) *Error {
	return c.do(ctx, http.MethodDelete, token, path, query, "", nil, nil)
}

// PostForm sends a prebuilt multipart body (product creation).
func (c *Client) PostForm(ctx context.Context, token, path, contentType string, body io.Reader, out interface{}) *Error {
	return c.do(ctx, http.MethodPost, token, path, nil, contentType, body, out)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, contentType string, body io.Reader, out interface{}) *Error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("request to %s failed: %v", path, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode >= 400 {
		var payload errorBody
		_ = json.Unmarshal(raw, &payload)

		log.Printf("API error - %s %s - Status: %d, Response: %s", method, path, resp.StatusCode, string(raw))

		kind := KindBackend
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = KindAuth
		}
		return &Error{
			Kind:    kind,
			Status:  resp.StatusCode,
			Message: payload.best(fmt.Sprintf("o servidor respondeu com status %d", resp.StatusCode)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Status: resp.StatusCode, Message: fmt.Sprintf("unexpected response format: %v", err)}
	}

	return nil
}

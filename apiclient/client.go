// Package apiclient implements the repository interfaces against an upstream
// HTTP API. Every response arrives wrapped as {data:{status,data}}; a status
// other than 200 is a business failure and 401 (at either layer) means the
// caller's token is no longer valid.
package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrAuthExpired is returned when the upstream rejects the token. The caller
// must tear the session down; there is no local recovery.
var ErrAuthExpired = errors.New("authentication expired")

// UpstreamError is a business-level failure reported inside an otherwise
// successful HTTP response.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WithToken returns a shallow copy forwarding the given bearer token, for
// gateway mode where each request carries the caller's own credentials.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

type envelope struct {
	Data struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data"`
	} `json:"data"`
}

func (c *Client) call(method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthExpired
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	switch {
	case env.Data.Status == http.StatusUnauthorized:
		return ErrAuthExpired
	case env.Data.Status != http.StatusOK:
		var msg string
		_ = json.Unmarshal(env.Data.Data, &msg)
		return &UpstreamError{Status: env.Data.Status, Message: msg}
	}

	if out == nil || len(env.Data.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data.Data, out)
}

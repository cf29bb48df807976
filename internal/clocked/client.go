// Package clocked talks to the remote time-tracking service.
package clocked

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
	"github.com/Tiliavir/clocked/internal/tracker"
)

// DefaultBaseURL is the clocked.io service.
const DefaultBaseURL = "https://clocked.io"

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Auth    AuthStyle
	// HTTPClient overrides the transport. When nil, a client with a 30s
	// timeout is used (or an oauth2 client for AuthBearer).
	HTTPClient HTTPClient
}

// Client is an authenticated time service client.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	authorize  authorizer
}

// NewClient creates a new service client.
func NewClient(ctx context.Context, opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		if opts.Auth == AuthBearer {
			httpClient = bearerHTTPClient(ctx, opts.APIKey)
		} else {
			httpClient = &http.Client{Timeout: 30 * time.Second}
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		authorize:  keyAuthorizer(opts.Auth, opts.APIKey),
	}
}

// FetchRaw returns every record stored by the service, unparsed.
func (c *Client) FetchRaw(ctx context.Context) ([]model.RawEvent, error) {
	body, err := c.do(ctx, http.MethodGet, "/time", nil)
	if err != nil {
		return nil, err
	}
	var raw []model.RawEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding time service response: %w", err)
	}
	return raw, nil
}

// FetchSnapshot returns every record as the service sent it, so unknown
// fields and legacy keys survive a save.
func (c *Client) FetchSnapshot(ctx context.Context) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/time", nil)
	if err != nil {
		return nil, err
	}
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding time service response: %w", err)
	}
	return records, nil
}

// ListEvents fetches and parses every event.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	raw, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	return tracker.ParseEvents(raw)
}

// CreateEvent stores e, keyed by its own timestamp. The service's response
// body is returned verbatim.
func (c *Client) CreateEvent(ctx context.Context, e model.Event) (string, error) {
	payload, err := json.Marshal(e.Raw())
	if err != nil {
		return "", fmt.Errorf("encoding event: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, "/time", payload)
	return string(body), err
}

// DeleteEvent removes the record stamped at t.
func (c *Client) DeleteEvent(ctx context.Context, t time.Time) (string, error) {
	body, err := c.do(ctx, http.MethodDelete, "/time/"+url.PathEscape(timecalc.FormatTimestamp(t)), nil)
	return string(body), err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("time service request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("time service error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

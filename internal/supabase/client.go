package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the PostgREST endpoint of a hosted Supabase project.
type Client struct {
	http    *http.Client
	baseURL string
	key     string
	metrics *Metrics
}

// New returns a client for baseURL using the anonymous key. The HTTP client
// is wrapped in the retrying, rate-limited transport.
func New(baseURL, key string, opts TransportOptions) *Client {
	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second, Transport: NewTransport(nil, opts)},
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		metrics: opts.Metrics,
	}
}

// Metrics returns the transport counters; nil when metrics are disabled.
func (c *Client) Metrics() *Metrics { return c.metrics }

// APIError is a non-2xx PostgREST response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("status %d %s", e.Status, http.StatusText(e.Status))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	return msg
}

// Select reads rows from table. query carries PostgREST parameters such as
// select and order. Each row is returned as decoded JSON.
func (c *Client) Select(ctx context.Context, table string, query url.Values) ([]map[string]any, error) {
	if c.key == "" {
		return nil, errors.New("supabase: anon key empty")
	}
	if c.baseURL == "" {
		return nil, errors.New("supabase: url empty")
	}
	if table == "" {
		return nil, errors.New("supabase: table empty")
	}
	u, err := url.Parse(c.baseURL + "/rest/v1/" + url.PathEscape(table))
	if err != nil {
		return nil, fmt.Errorf("supabase: bad url: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, decodeAPIError(res)
	}
	var rows []map[string]any
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("supabase: decode %s: %w", table, err)
	}
	return rows, nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// Package postgrest is a thin HTTP client for the Supabase PostgREST data
// API. Requests carry either the caller's bearer token (so row-level
// security applies) or the service-role key (RLS bypass). Every mutating
// call asks for return=representation, so responses are JSON arrays of the
// affected rows.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnreachable wraps transport-level failures talking to PostgREST
var ErrUnreachable = errors.New("postgrest unreachable")

// Row is a single record as returned by PostgREST
type Row = map[string]any

// Error carries an upstream error status and body through to the caller
type Error struct {
	StatusCode int
	Body       []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("postgrest: status %d: %s", e.StatusCode, e.Body)
}

// Config holds connection settings for the data API
type Config struct {
	BaseURL     string
	AnonKey     string
	ServiceRole string
}

// Client issues requests against a PostgREST endpoint
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a client with the default 30s timeout
func New(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// HeadersFor builds request headers. A non-empty bearer (the raw
// Authorization header value) is forwarded so PostgREST applies RLS for
// that user; otherwise the service-role key is used.
func (c *Client) HeadersFor(bearer string) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	h.Set("Prefer", "return=representation")
	if bearer != "" {
		h.Set("apikey", c.cfg.AnonKey)
		h.Set("Authorization", bearer)
		return h
	}
	h.Set("apikey", c.cfg.ServiceRole)
	h.Set("Authorization", "Bearer "+c.cfg.ServiceRole)
	return h
}

// Get performs a GET. The path carries the table and PostgREST filter
// query string, e.g. "/f_pessoa?pkpessoa=eq.42".
func (c *Client) Get(ctx context.Context, path string, h http.Header) ([]Row, error) {
	return c.do(ctx, http.MethodGet, path, nil, h)
}

// Post inserts one row (or a slice of rows) and returns the created rows
func (c *Client) Post(ctx context.Context, path string, body any, h http.Header) ([]Row, error) {
	return c.do(ctx, http.MethodPost, path, body, h)
}

// Patch updates the rows selected by the path filter and returns them.
// An empty result means no row matched the filter.
func (c *Client) Patch(ctx context.Context, path string, body any, h http.Header) ([]Row, error) {
	return c.do(ctx, http.MethodPatch, path, body, h)
}

// Delete removes the rows selected by the path filter
func (c *Client) Delete(ctx context.Context, path string, h http.Header) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, h)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any, h http.Header) ([]Row, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range h {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: raw}
	}

	return decodeRows(raw)
}

// decodeRows normalizes the response into a slice of rows: PostgREST
// answers with an array for list/representation responses, a bare object
// for single-object selects, or an empty body on 204.
func decodeRows(raw []byte) ([]Row, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var rows []Row
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
	var row Row
	if err := json.Unmarshal(trimmed, &row); err != nil {
		return nil, err
	}
	return []Row{row}, nil
}

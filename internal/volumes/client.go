package volumes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultAPIBase = "https://www.googleapis.com/books/v1/volumes"

// Client talks to the Google Books volumes API.
type Client struct {
	apiBase    string
	apiKey     string
	maxResults int
	http       *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMaxResults caps the number of items per search. Zero leaves the
// service default in place.
func WithMaxResults(n int) Option {
	return func(c *Client) { c.maxResults = n }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New creates a Client for apiBase. If apiBase is empty, the public
// endpoint is used. apiKey is optional.
func New(apiBase, apiKey string, opts ...Option) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	apiBase = strings.TrimRight(apiBase, "/")

	c := &Client{
		apiBase: apiBase,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a volumes query. term must already be escaped, see BuildTerm.
// A response without items yields an empty, non-nil slice.
func (c *Client) Search(ctx context.Context, term string) ([]Volume, error) {
	// term is pre-escaped, so the query string is assembled by hand.
	rawURL := c.apiBase + "?q=" + term
	if c.maxResults > 0 {
		rawURL += "&maxResults=" + strconv.Itoa(c.maxResults)
	}
	if c.apiKey != "" {
		rawURL += "&key=" + url.QueryEscape(c.apiKey)
	}

	var resp Response
	if err := c.getJSON(ctx, rawURL, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return []Volume{}, nil
	}
	return resp.Items, nil
}

// Volume fetches a single volume by ID.
func (c *Client) Volume(ctx context.Context, id string) (*Volume, error) {
	rawURL := c.apiBase + "/" + url.PathEscape(id)
	if c.apiKey != "" {
		rawURL += "?key=" + url.QueryEscape(c.apiKey)
	}
	var v Volume
	if err := c.getJSON(ctx, rawURL, &v); err != nil {
		return nil, fmt.Errorf("volume %q: %w", id, err)
	}
	return &v, nil
}

// DownloadCover streams a cover image.
// Caller is responsible for closing the returned ReadCloser.
func (c *Client) DownloadCover(ctx context.Context, coverURL string) (io.ReadCloser, error) {
	// The API hands out http:// thumbnail links; they are served over https too.
	if strings.HasPrefix(coverURL, "http://books.google.") {
		coverURL = "https://" + strings.TrimPrefix(coverURL, "http://")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("download cover: %w", err)
	}
	return resp.Body, nil
}

// getJSON sends a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusForbidden:
		return ErrForbidden
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}

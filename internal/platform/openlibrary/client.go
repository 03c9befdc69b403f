package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://openlibrary.org"

// ErrNotFound is returned when Open Library has no record for an ISBN.
var ErrNotFound = errors.New("isbn not found in open library")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(userAgent string, rps int, maxRetries int, opts ...Option) *Client {
	if rps <= 0 {
		rps = 1
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type named struct {
	Name string `json:"name"`
}

// bookDetails matches api/books?jscmd=data
type bookDetails struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Publishers  []named `json:"publishers"`
	PublishDate string  `json:"publish_date"`
	Authors     []named `json:"authors"`
	Subjects    []named `json:"subjects"`
	Notes       any     `json:"notes"` // string or {type, value}
}

// Metadata is the subset of an Open Library edition used to prefill the
// book form.
type Metadata struct {
	ISBN        string   `json:"isbn"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Subjects    []string `json:"subjects"`
	Publishers  []string `json:"publishers"`
	PublishDate string   `json:"publish_date,omitempty"`
	Summary     string   `json:"summary,omitempty"`
}

// LookupISBN fetches edition metadata for a normalized ISBN.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (Metadata, error) {
	key := "ISBN:" + isbn
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, key)

	var res map[string]bookDetails
	if err := c.get(ctx, u, &res); err != nil {
		return Metadata{}, err
	}
	d, ok := res[key]
	if !ok {
		return Metadata{}, ErrNotFound
	}

	title := d.Title
	if d.Subtitle != "" {
		title += ": " + d.Subtitle
	}
	return Metadata{
		ISBN:        isbn,
		Title:       title,
		Authors:     names(d.Authors),
		Subjects:    names(d.Subjects),
		Publishers:  names(d.Publishers),
		PublishDate: d.PublishDate,
		Summary:     noteText(d.Notes),
	}, nil
}

func names(in []named) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n.Name != "" {
			out = append(out, n.Name)
		}
	}
	return out
}

func noteText(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case map[string]any:
		if s, ok := n["value"].(string); ok {
			return s
		}
	}
	return ""
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, url, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, url string, target any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}
	return false, json.NewDecoder(resp.Body).Decode(target)
}

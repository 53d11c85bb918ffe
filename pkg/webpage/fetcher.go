// Package webpage fetches HTML pages over HTTP and answers the small set
// of document questions the SEO handlers ask (title, meta description,
// headings, visible word count).
package webpage

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"context"

	"golang.org/x/net/html"
)

const (
	userAgent   = "Mozilla/5.0 (compatible; seo-management-agent/1.0)"
	maxBodySize = 2 << 20 // 2MB per page is plenty for SEO checks
)

// Page is the outcome of a single fetch: the HTTP status plus the parsed
// document. Doc is non-nil whenever a body was read, regardless of status.
type Page struct {
	URL        string
	StatusCode int
	Doc        *html.Node
}

// Fetcher retrieves pages. The caller bounds every call with a context
// deadline; implementations perform exactly one request per call.
type Fetcher interface {
	// Fetch GETs the URL and parses the response body as HTML.
	// A non-nil error means the request never produced a response
	// (DNS failure, refused connection, deadline exceeded).
	Fetch(ctx context.Context, rawURL string) (*Page, error)

	// Probe GETs the URL and reports whether it answered 200.
	// Any transport error reads as false.
	Probe(ctx context.Context, rawURL string) bool
}

// Client is the default Fetcher over net/http. Per-request deadlines come
// from the caller's context, so the embedded client carries no timeout.
type Client struct {
	httpClient *http.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a new page fetcher.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// Fetch implements Fetcher.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		// html.Parse recovers from malformed markup; an error here is a
		// hard tokenizer failure and the page is unusable.
		return nil, fmt.Errorf("failed to parse %s: %w", rawURL, err)
	}

	return &Page{URL: rawURL, StatusCode: resp.StatusCode, Doc: doc}, nil
}

// Probe implements Fetcher.
func (c *Client) Probe(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	return resp.StatusCode == http.StatusOK
}

// ValidateURL checks that raw parses as an absolute URL with both a
// scheme and a host.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL format, must include http:// or https://")
	}
	return nil
}

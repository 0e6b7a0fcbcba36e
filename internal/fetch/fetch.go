// Package fetch retrieves guide pages over HTTP.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// Page is a fetched guide page
type Page struct {
	URL      string // URL as requested
	FinalURL string // URL after redirects
	Status   int
	Body     string
	Elapsed  time.Duration
}

// Fetcher retrieves a page. Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Code)
}

// Profile describes how requests present themselves to the site. It is
// copied into the client on construction and not changed afterwards.
type Profile struct {
	UserAgent        string
	Headers          map[string]string
	Timeout          time.Duration
	CloudflareBypass bool
	// AllowedDomain restricts redirect targets; empty follows any host
	AllowedDomain string
}

// DefaultProfile returns desktop Chrome request headers and a 15s timeout.
// Accept-Encoding is left to the transport so responses are decompressed.
func DefaultProfile() Profile {
	return Profile{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		Headers: map[string]string{
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.9",
			"DNT":                       "1",
			"Upgrade-Insecure-Requests": "1",
			"Sec-Fetch-Dest":            "document",
			"Sec-Fetch-Mode":            "navigate",
			"Sec-Fetch-Site":            "none",
			"Sec-Fetch-User":            "?1",
			"Cache-Control":             "max-age=0",
		},
		Timeout:          15 * time.Second,
		CloudflareBypass: true,
	}
}

// Client fetches pages with a resty client configured from a Profile
type Client struct {
	http *resty.Client
}

// New creates a Client for the given profile
func New(p Profile) *Client {
	client := resty.New()
	client.SetTimeout(p.Timeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10), domainRedirectPolicy(p.AllowedDomain))
	for k, v := range p.Headers {
		client.SetHeader(k, v)
	}
	if p.UserAgent != "" {
		client.SetHeader("User-Agent", p.UserAgent)
	}
	if p.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	return &Client{http: client}
}

// Fetch performs a GET and returns the body of a successful response
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{URL: url, Code: res.StatusCode()}
	}

	page := &Page{
		URL:      url,
		FinalURL: url,
		Status:   res.StatusCode(),
		Body:     res.String(),
		Elapsed:  res.Time(),
	}
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		page.FinalURL = res.RawResponse.Request.URL.String()
	}
	return page, nil
}

// Package content is the read-only client for the headless content
// repository. It issues parameterized GROQ queries over the repository's
// HTTP query endpoint and decodes the result envelope. It does not retry
// and does not cache; callers map failures to their own empty view state.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lucasforesti/pilotoapi/config"
)

// Client is a configured handle to one project/dataset. It is stateless
// between calls and safe to share across all request handlers.
type Client struct {
	queryURL    string
	perspective string
	http        *http.Client
}

// New builds a Client from configuration. The CDN host serves cached
// published content; the live host serves fresh data and drafts.
func New(cfg *config.Config) *Client {
	host := fmt.Sprintf("%s.api.sanity.io", cfg.ProjectID)
	if cfg.UseCDN {
		host = fmt.Sprintf("%s.apicdn.sanity.io", cfg.ProjectID)
	}
	return &Client{
		queryURL:    fmt.Sprintf("https://%s/v%s/data/query/%s", host, cfg.APIVersion, cfg.Dataset),
		perspective: "published",
		http:        &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Live returns a variant of the client that bypasses the CDN and queries
// draft content. Used by preview-mode requests.
func Live(cfg *config.Config) *Client {
	return &Client{
		queryURL: fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s",
			cfg.ProjectID, cfg.APIVersion, cfg.Dataset),
		perspective: "previewDrafts",
		http:        &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// NewWithEndpoint builds a client against an explicit query endpoint.
// Tests use it to substitute a fake repository; nothing global to patch.
func NewWithEndpoint(queryURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{queryURL: queryURL, perspective: "published", http: httpClient}
}

// envelope is the repository's query response wrapper.
type envelope struct {
	Result json.RawMessage `json:"result"`
}

// Query executes a GROQ query with named parameters and decodes the result
// into out. Parameters are bound by name on the wire ($name=<json>), never
// interpolated into the query body. A missing document decodes out to its
// zero value; callers distinguish not-found from failure by the error.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL, nil)
	if err != nil {
		return fmt.Errorf("content: building request: %w", err)
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("perspective", c.perspective)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("content: encoding param %q: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content: query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content: query returned %d: %s", resp.StatusCode, body)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("content: decoding response: %w", err)
	}
	// GROQ returns JSON null for a [0] selection with no match. Leave out
	// untouched so the caller sees its zero value.
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("content: decoding result: %w", err)
	}
	return nil
}

// Ping runs a minimal query to verify connectivity and credentials-free
// access to the dataset.
func (c *Client) Ping(ctx context.Context) error {
	var n int
	return c.Query(ctx, `count(*[_id == "__ping__"])`, nil, &n)
}

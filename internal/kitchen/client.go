package kitchen

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

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// ErrUpstreamStatus matches any *StatusError.
var ErrUpstreamStatus = errors.New("kitchen API returned a non-success status")

// StatusError is returned when the kitchen API answers with a non-2xx status.
// Its message is what the search page shows to the user.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string { return "Network response was not ok" }

// Is reports whether target is ErrUpstreamStatus.
func (e *StatusError) Is(target error) bool { return target == ErrUpstreamStatus }

// Client talks to the kitchen API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// NewClient creates a kitchen API client rooted at baseURL. httpClient may
// be nil to use http.DefaultClient; metrics may be nil to skip collection.
func NewClient(baseURL string, httpClient *http.Client, metrics *Metrics) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		metrics:    metrics,
	}
}

// BaseURL returns the API root the client was created with, without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Search fetches the kitchens listed for location. A successful response
// always yields a non-nil slice, even when the API sends null.
func (c *Client) Search(ctx context.Context, location string) ([]Kitchen, error) {
	endpoint := fmt.Sprintf("%s/kitchens/search?location=%s", c.baseURL, url.QueryEscape(location))

	var kitchens []Kitchen
	if err := c.getJSON(ctx, "search", endpoint, &kitchens); err != nil {
		return nil, err
	}
	if kitchens == nil {
		kitchens = []Kitchen{}
	}
	return kitchens, nil
}

// Get fetches a single kitchen by its ID.
func (c *Client) Get(ctx context.Context, id string) (*Kitchen, error) {
	endpoint := fmt.Sprintf("%s/kitchens/%s", c.baseURL, url.PathEscape(id))

	var k Kitchen
	if err := c.getJSON(ctx, "get", endpoint, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func (c *Client) getJSON(ctx context.Context, operation, endpoint string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.metrics.observe(operation, OutcomeTransport, start)
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(operation, OutcomeTransport, start)
		return fmt.Errorf("fetching kitchens: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.metrics.observe(operation, OutcomeBadStatus, start)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		c.metrics.observe(operation, OutcomeDecodeError, start)
		return fmt.Errorf("decoding response: %w", err)
	}

	c.metrics.observe(operation, OutcomeOK, start)
	return nil
}

// requestID reuses the inbound chi request ID so upstream logs can be
// correlated with ours.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"readinglog/internal/metrics"

	"golang.org/x/time/rate"
)

// Fetcher requests one page from the catalog proxy.
type Fetcher interface {
	Fetch(ctx context.Context, p Params) (*Response, error)
}

// StatusError reports a non-2xx answer from the proxy.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Client calls the catalog proxy endpoint.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	metrics    *metrics.Metrics
}

// ClientConfig configures NewClient. Zero values select defaults.
type ClientConfig struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RPS        float64
	MaxRetries int
	Metrics    *metrics.Metrics
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "readinglog/1.0"
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: cfg.MaxRetries,
		backoff:    time.Second,
		metrics:    cfg.Metrics,
	}
}

// Fetch requests the page described by p.
func (c *Client) Fetch(ctx context.Context, p Params) (*Response, error) {
	q := url.Values{}
	q.Set("genreId", p.GenreID)
	if p.Title != "" {
		q.Set("title", p.Title)
	}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))

	start := time.Now()
	var res Response
	err := c.get(ctx, c.baseURL+"?"+q.Encode(), &res)
	c.metrics.ObserveCatalog(err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// get issues the request, retrying 429 and 5xx answers up to maxRetries
// times with exponential backoff.
func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := time.Duration(1<<uint(i-1)) * c.backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	if c.maxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, u string, target any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return retry, &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, fmt.Errorf("decode catalog response: %w", err)
	}
	return false, nil
}

package rapidapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Client is the shared plumbing for RapidAPI-hosted providers: key/host
// headers, retry policy, quota throttling, and response size guards. Each
// source wraps one with its own host and endpoint.
type Client struct {
	BaseURL string // overridable, e.g. for tests

	key     string
	host    string
	http    *retryablehttp.Client
	limiter *rate.Limiter
}

func NewClient(apiKey, host string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil
	// Retry transport failures only. Once the provider answers, any status
	// is final for this one-shot aggregation.
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return resp == nil && err != nil, nil
	}

	return &Client{
		BaseURL: "https://" + host,
		key:     apiKey,
		host:    host,
		http:    rc,
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2), // protect upstream quota
	}
}

// SetTimeout overrides the default request timeout. Non-positive values are
// ignored.
func (c *Client) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	c.http.HTTPClient.Timeout = d
}

// Get issues a GET against the provider endpoint and returns the body on
// HTTP 200. Any other status becomes an error carrying the response body.
func (c *Client) Get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s%s?%s", c.BaseURL, path, q.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := ioReadAllLimit(resp.Body, 64<<10)
		return nil, fmt.Errorf("%s error %d: %s", c.host, resp.StatusCode, body)
	}
	return ioReadAllLimit(resp.Body, 4<<20) // 4MB guard
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}

package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/utils"
)

// Client performs single-shot HTTP retrieval with a browser TLS profile.
// Redirects are followed manually so the hop count can be bounded, and the
// body read is capped. No retries: every fetch is attempted exactly once.
type Client struct {
	tlsClient    tls_client.HttpClient
	userAgent    string
	timeout      time.Duration
	maxRedirects int
	maxBodyBytes int64
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Timeout      time.Duration
	MaxRedirects int
	MaxBodyBytes int64
	UserAgent    string
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:      30 * time.Second,
		MaxRedirects: 5,
		MaxBodyBytes: 10 * 1024 * 1024,
	}
}

// NewClient creates a new HTTP client
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = 5
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 10 * 1024 * 1024
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(opts.Timeout.Seconds())),
		tls_client.WithClientProfile(profiles.Chrome_131),
		tls_client.WithNotFollowRedirects(),
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &Client{
		tlsClient:    tlsClient,
		userAgent:    opts.UserAgent,
		timeout:      opts.Timeout,
		maxRedirects: opts.MaxRedirects,
		maxBodyBytes: opts.MaxBodyBytes,
	}, nil
}

// Fetch retrieves a URL, following at most maxRedirects redirects and
// capping the body read. Statuses below 500 are returned for the caller to
// interpret; 5xx raises a FetchError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*domain.Response, error) {
	if _, err := utils.ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	type result struct {
		resp *domain.Response
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		resp, err := c.fetch(rawURL)
		ch <- result{resp, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s", domain.ErrTimeout, rawURL)
	case r := <-ch:
		return r.resp, r.err
	}
}

func (c *Client) fetch(rawURL string) (*domain.Response, error) {
	target := rawURL
	for hop := 0; ; hop++ {
		resp, err := c.doRequest(target)
		if err != nil {
			return nil, err
		}

		if location := redirectLocation(resp); location != "" {
			if hop >= c.maxRedirects {
				return nil, fmt.Errorf("%w: more than %d redirects from %s", domain.ErrTooManyRedirects, c.maxRedirects, rawURL)
			}
			resolved, resolveErr := utils.ResolveURL(target, location)
			if resolveErr != nil {
				return nil, &domain.FetchError{URL: target, Err: fmt.Errorf("bad redirect location %q: %w", location, resolveErr)}
			}
			target = resolved
			continue
		}

		return resp, nil
	}
}

func (c *Client) doRequest(targetURL string) (*domain.Response, error) {
	req, err := fhttp.NewRequest(fhttp.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range BrowserHeaders(c.userAgent) {
		req.Header.Set(k, v)
	}

	resp, err := c.tlsClient.Do(req)
	if err != nil {
		if isTimeoutErr(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTimeout, targetURL)
		}
		return nil, &domain.FetchError{
			URL: targetURL,
			Err: fmt.Errorf("request failed: %w", err),
		}
	}
	defer resp.Body.Close()

	// 5xx is the only status class that raises here. 4xx flows back to
	// the caller so the pipeline can map 404/429 through.
	if resp.StatusCode >= 500 {
		return nil, &domain.FetchError{
			URL:        targetURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrContentTooLarge, c.maxBodyBytes)
	}

	httpHeaders := make(http.Header)
	for k, v := range resp.Header {
		httpHeaders[k] = v
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		Headers:     httpHeaders,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         targetURL,
		IsHTML:      IsHTMLBody(body),
	}, nil
}

// Close releases client resources
func (c *Client) Close() error {
	return nil
}

// IsHTMLBody classifies a response body: raw text unless a <!DOCTYPE marker
// appears in the leading bytes.
func IsHTMLBody(body []byte) bool {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<!doctype"))
}

func redirectLocation(resp *domain.Response) string {
	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return ""
	}
	return resp.Headers.Get("Location")
}

func isTimeoutErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded")
}

package okrsearch

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kailas-cloud/okrsearch/internal/domain/search/term"
)

// maxErrorBody caps how much of a failed response is read for the error message.
const maxErrorBody = 64 << 10

// Client is the okrsearch SDK entry point.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	obs     *observer
}

// New creates a Client. No request is made until Search or Health is called.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	base, err := url.Parse(strings.TrimRight(cfg.baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("okrsearch: invalid base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("okrsearch: base url must be http or https, got %q", cfg.baseURL)
	}

	hc := &http.Client{}
	if cfg.httpClient != nil {
		clone := *cfg.httpClient
		hc = &clone
	}
	if hc.Timeout == 0 {
		hc.Timeout = cfg.timeout
	}
	transport := hc.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	hc.Transport = otelhttp.NewTransport(transport)

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{baseURL: base, apiKey: cfg.apiKey, http: hc, obs: obs}, nil
}

// Search returns matches for term. The term is trimmed before sending; the
// server answers blank terms with empty results.
func (c *Client) Search(ctx context.Context, q string) (res Results, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	u := c.endpoint("/api/search")
	u.RawQuery = url.Values{"q": {term.Normalize(q)}}.Encode()

	if err = c.getJSON(ctx, u, &res); err != nil {
		return Results{}, fmt.Errorf("search: %w", err)
	}
	return res.normalize(), nil
}

// Health fetches the server health report. A degraded server answers 503
// with a report; that case returns the report and an *APIError.
func (c *Client) Health(ctx context.Context) (hs HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	req, err := c.newRequest(ctx, c.endpoint("/health"))
	if err != nil {
		return HealthStatus{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err = json.NewDecoder(resp.Body).Decode(&hs); err != nil {
		return HealthStatus{}, fmt.Errorf("health: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return hs, &APIError{StatusCode: resp.StatusCode, Message: hs.Status}
	}
	return hs, nil
}

func (c *Client) endpoint(path string) *url.URL {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	return &u
}

func (c *Client) newRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, u *url.URL, out any) error {
	req, err := c.newRequest(ctx, u)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err //nolint:wrapcheck // wrapped by the caller
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return errors.Join(apiErr, err)
	}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

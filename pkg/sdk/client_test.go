package okrsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(WithBaseURL("ftp://example.com"))
	require.Error(t, err)

	_, err = New(WithBaseURL("://nope"))
	require.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithBaseURL("http://okr.local").apply(cfg)
	assert.Equal(t, "http://okr.local", cfg.baseURL)

	WithAPIKey("secret").apply(cfg)
	assert.Equal(t, "secret", cfg.apiKey)

	hc := &http.Client{}
	WithHTTPClient(hc).apply(cfg)
	assert.Same(t, hc, cfg.httpClient)

	WithTimeout(3 * time.Second).apply(cfg)
	assert.Equal(t, 3*time.Second, cfg.timeout)

	logger := slog.Default()
	WithLogger(logger).apply(cfg)
	assert.Same(t, logger, cfg.logger)

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg)
	assert.Equal(t, reg, cfg.metricsReg)
}

func TestSearch_EncodesTermAndSendsKey(t *testing.T) {
	var gotQ, gotAuth, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQ = r.URL.Query().Get("q")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"objectives": [{"id":"o1","title":"Align roadmap","description":"","progress":0.5}],
			"keyResults": [],
			"teams": [{"id":"t1","name":"Alpha","description":null}],
			"users": [{"id":"u1","username":"alice","firstName":"Alice","lastName":"Smith","email":"alice@example.com"}]
		}`)
	}, WithAPIKey("k1"))

	res, err := c.Search(context.Background(), "  al & co ")
	require.NoError(t, err)

	assert.Equal(t, "/api/search", gotPath)
	assert.Equal(t, "al & co", gotQ)
	assert.Equal(t, "Bearer k1", gotAuth)

	require.Len(t, res.Objectives, 1)
	require.NotNil(t, res.Objectives[0].Progress)
	assert.InDelta(t, 0.5, *res.Objectives[0].Progress, 1e-9)
	require.Len(t, res.Teams, 1)
	assert.Nil(t, res.Teams[0].Description)
	assert.Equal(t, "alice", res.Users[0].Username)
	assert.NotNil(t, res.KeyResults)
	assert.Equal(t, 3, res.Total())
}

func TestSearch_NoKeyNoHeader(t *testing.T) {
	var hasAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = io.WriteString(w, `{}`)
	})

	res, err := c.Search(context.Background(), "al")
	require.NoError(t, err)
	assert.False(t, hasAuth)
	// Missing lists decode as empty, never nil.
	assert.NotNil(t, res.Objectives)
	assert.NotNil(t, res.KeyResults)
	assert.NotNil(t, res.Teams)
	assert.NotNil(t, res.Users)
}

func TestSearch_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"code":"search_unavailable","message":"search is temporarily unavailable"}`)
	})

	_, err := c.Search(context.Background(), "al")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, CodeSearchUnavailable, apiErr.Code)
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsRateLimited(err))
}

func TestSearch_NonJSONError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "al")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestSearch_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"objectives": 42}`)
	})

	_, err := c.Search(context.Background(), "al")
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
		want    string
	}{
		{"healthy", http.StatusOK, `{"status":"ok","checks":{"database":"ok"}}`, false, "ok"},
		{"degraded", http.StatusServiceUnavailable, `{"status":"degraded","checks":{"database":"error"}}`, true, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			hs, err := c.Health(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, hs.Status)
		})
	}
}

func TestObserver_NilSafe(t *testing.T) {
	// nil observer should not panic.
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observe("test", time.Now(), errors.New("err"))
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("search", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("search", time.Now(), errors.New("fail"))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	// Verify operations counter has both ok and error.
	found := false
	for _, f := range families {
		if f.GetName() == "okrsearch_sdk_operations_total" {
			found = true
			if len(f.GetMetric()) != 2 {
				t.Errorf("expected 2 metric samples, got %d", len(f.GetMetric()))
			}
		}
	}
	if !found {
		t.Error("okrsearch_sdk_operations_total not found")
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{errors.New("dial tcp: refused"), "error"},
		{&APIError{StatusCode: 503, Code: CodeSearchUnavailable}, "unavailable"},
		{fmt.Errorf("search: %w", &APIError{StatusCode: 429, Code: CodeRateLimited}), "rate_limited"},
		{&APIError{StatusCode: 401, Code: CodeUnauthorized}, "unauthorized"},
		{&APIError{StatusCode: 400, Code: CodeValidationFailed}, "error"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.err); got != tt.want {
			t.Errorf("statusLabel(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("first newObserver: %v", err)
	}
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("second newObserver on same registry: %v", err)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	obs, err := newObserver(slog.Default(), nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("search", time.Now(), nil)
	obs.observe("search", time.Now(), errors.New("test error"))
}

func TestClient_ObservesSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}, WithPrometheus(reg))

	_, err := c.Search(context.Background(), "al")
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	var samples int
	for _, f := range families {
		if f.GetName() == "okrsearch_sdk_operations_total" {
			samples = len(f.GetMetric())
		}
	}
	assert.Equal(t, 1, samples)
}

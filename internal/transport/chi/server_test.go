package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/okrsearch/internal/domain"
	"github.com/kailas-cloud/okrsearch/internal/domain/entity"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/result"
	gen "github.com/kailas-cloud/okrsearch/internal/transport/openapi"
	healthuc "github.com/kailas-cloud/okrsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/okrsearch/internal/usecase/search"
)

// --- Mocks ---

type stubProvider[T any] struct {
	kind  entity.Kind
	items []T
	err   error
	calls int
}

func (p *stubProvider[T]) Kind() entity.Kind { return p.kind }

func (p *stubProvider[T]) Search(context.Context, string, int) ([]T, error) {
	p.calls++
	return p.items, p.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubs struct {
	objectives *stubProvider[result.Objective]
	keyResults *stubProvider[result.KeyResult]
	teams      *stubProvider[result.Team]
	users      *stubProvider[result.User]
	pingErr    error
}

func newStubs() *stubs {
	return &stubs{
		objectives: &stubProvider[result.Objective]{kind: entity.Objective},
		keyResults: &stubProvider[result.KeyResult]{kind: entity.KeyResult},
		teams:      &stubProvider[result.Team]{kind: entity.Team},
		users:      &stubProvider[result.User]{kind: entity.User},
	}
}

func (s *stubs) router() http.Handler {
	search := searchuc.New(searchuc.Providers{
		Objectives: s.objectives,
		KeyResults: s.keyResults,
		Teams:      s.teams,
		Users:      s.users,
	}, domain.DefaultSearchConfig())
	health := healthuc.New(stubPinger{err: s.pingErr}, 0)

	return gen.HandlerWithOptions(NewServer(search, health, zap.NewNop()), gen.ChiServerOptions{
		ErrorHandlerFunc: ParamErrorHandler,
	})
}

func (s *stubs) calls() int {
	return s.objectives.calls + s.keyResults.calls + s.teams.calls + s.users.calls
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", target, http.NoBody))
	return rr
}

func ptr[T any](v T) *T { return &v }

// --- Tests ---

func TestSearch_AbsentQuery_EmptyEnvelope(t *testing.T) {
	s := newStubs()
	rr := get(t, s.router(), "/api/search")

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
	var body map[string]json.RawMessage
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"objectives", "keyResults", "teams", "users"} {
		if got := string(body[key]); got != "[]" {
			t.Errorf("%s: got %s, want []", key, got)
		}
	}
	if s.calls() != 0 {
		t.Errorf("expected no provider calls, got %d", s.calls())
	}
}

func TestSearch_AlScenario_Golden(t *testing.T) {
	s := newStubs()
	s.objectives.items = []result.Objective{{
		ID: "o1", Title: "Align roadmap", Description: "Quarterly alignment",
		Progress: ptr(0.25), Status: ptr("on_track"),
	}}
	s.teams.items = []result.Team{{ID: "t1", Name: "Alpha squad", MemberCount: ptr(4)}}
	s.users.items = []result.User{
		{ID: "u1", Username: "alice", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"},
		{ID: "u3", Username: "alan", FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Role: ptr("admin")},
	}

	rr := get(t, s.router(), "/api/search?q=al")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, rr.Body.Bytes(), "", "  "); err != nil {
		t.Fatalf("indent: %v", err)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "search_al", pretty.Bytes())
}

func TestSearch_AllProvidersFailed_503(t *testing.T) {
	s := newStubs()
	boom := errors.New("pq: connection refused to 10.0.0.5")
	s.objectives.err = boom
	s.keyResults.err = boom
	s.teams.err = boom
	s.users.err = boom

	rr := get(t, s.router(), "/api/search?q=al")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	var errResp gen.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != gen.ErrorResponseCodeSearchUnavailable {
		t.Errorf("code: got %s, want %s", errResp.Code, gen.ErrorResponseCodeSearchUnavailable)
	}
	if strings.Contains(errResp.Message, "10.0.0.5") {
		t.Errorf("error message leaks internals: %q", errResp.Message)
	}
}

func TestSearch_PartialFailure_200(t *testing.T) {
	s := newStubs()
	s.teams.err = errors.New("timeout")
	s.users.items = []result.User{{ID: "u1", Username: "alice"}}

	rr := get(t, s.router(), "/api/search?q=al")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}

	var body gen.SearchResults
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Users) != 1 || body.Teams == nil || len(body.Teams) != 0 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestSearch_TermTooLong_400(t *testing.T) {
	s := newStubs()
	rr := get(t, s.router(), "/api/search?q="+strings.Repeat("a", 257))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusBadRequest)
	}
	var errResp gen.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != gen.ErrorResponseCodeValidationFailed {
		t.Errorf("code: got %s, want %s", errResp.Code, gen.ErrorResponseCodeValidationFailed)
	}
	if s.calls() != 0 {
		t.Errorf("expected no provider calls, got %d", s.calls())
	}
}

func TestSearch_BlankQuery_NoProviderCalls(t *testing.T) {
	s := newStubs()
	rr := get(t, s.router(), "/api/search?q=%20%20")

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
	if s.calls() != 0 {
		t.Errorf("expected no provider calls, got %d", s.calls())
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus gen.HealthResponseStatus
	}{
		{"ok", nil, http.StatusOK, gen.HealthResponseStatusOk},
		{"degraded", errors.New("down"), http.StatusServiceUnavailable, gen.HealthResponseStatusDegraded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newStubs()
			s.pingErr = tc.pingErr
			rr := get(t, s.router(), "/health")

			if rr.Code != tc.wantCode {
				t.Fatalf("got %d, want %d", rr.Code, tc.wantCode)
			}
			var resp gen.HealthResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tc.wantStatus {
				t.Errorf("status: got %s, want %s", resp.Status, tc.wantStatus)
			}
			if _, ok := resp.Checks["database"]; !ok {
				t.Error("expected database check")
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rr := get(t, newStubs().router(), "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
}

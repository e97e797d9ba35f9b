package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/okrsearch/internal/domain"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/result"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/term"
	gen "github.com/kailas-cloud/okrsearch/internal/transport/openapi"
	healthuc "github.com/kailas-cloud/okrsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/okrsearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements openapi.ServerInterface for the chi router.
type Server struct {
	gen.Unimplemented
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidTerm, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrAllProvidersFailed,
			http.StatusServiceUnavailable, gen.ErrorResponseCodeSearchUnavailable),
	}
	return s
}

// Search handles GET /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request, params gen.SearchParams) {
	if params.Q == nil {
		writeJSON(w, http.StatusOK, envelopeToGen(result.Empty()))
		return
	}

	q, err := term.Validate(*params.Q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	env, err := s.search.Search(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelopeToGen(env))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks)
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	status := gen.HealthResponseStatus(report.Status)
	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: status,
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidTerm,
		domain.ErrAllProvidersFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}

// envelopeToGen maps the envelope to the wire shape. Every list is non-nil so
// it encodes as [] rather than null.
func envelopeToGen(env result.Envelope) gen.SearchResults {
	env = env.Normalize()

	out := gen.SearchResults{
		Objectives: make([]gen.Objective, len(env.Objectives)),
		KeyResults: make([]gen.KeyResult, len(env.KeyResults)),
		Teams:      make([]gen.Team, len(env.Teams)),
		Users:      make([]gen.User, len(env.Users)),
	}
	for i, o := range env.Objectives {
		out.Objectives[i] = gen.Objective{
			Id:          o.ID,
			Title:       o.Title,
			Description: o.Description,
			Progress:    o.Progress,
			Status:      o.Status,
		}
	}
	for i, k := range env.KeyResults {
		out.KeyResults[i] = gen.KeyResult{
			Id:          k.ID,
			Title:       k.Title,
			Description: k.Description,
			ObjectiveId: k.ObjectiveID,
			Progress:    k.Progress,
		}
	}
	for i, t := range env.Teams {
		out.Teams[i] = gen.Team{
			Id:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			MemberCount: t.MemberCount,
		}
	}
	for i, u := range env.Users {
		out.Users[i] = gen.User{
			Id:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
		}
	}
	return out
}

// ParamErrorHandler answers requests whose parameters fail to bind.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "invalid request")
}

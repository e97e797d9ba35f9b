package okrsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/okrsearch/internal/bootstrap"
	"github.com/kailas-cloud/okrsearch/internal/config"
	"github.com/kailas-cloud/okrsearch/internal/db"
	"github.com/kailas-cloud/okrsearch/internal/domain"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/term"
	entityrepo "github.com/kailas-cloud/okrsearch/internal/repository/entity"
	searchuc "github.com/kailas-cloud/okrsearch/internal/usecase/search"
)

// Local searches a store in-process, without a server. It implements Fetcher.
type Local struct {
	store     db.Store
	searchSvc *searchuc.Service
	obs       *observer
}

// NewLocal opens the configured store and wires the search pipeline over it.
// Only WithLogger and WithPrometheus apply.
func NewLocal(ctx context.Context, dbCfg config.DatabaseConfig, search domain.SearchConfig, opts ...Option) (*Local, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	store, err := bootstrap.OpenStore(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("okrsearch: open store: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireLocal(store, search, obs), nil
}

func wireLocal(store db.Store, search domain.SearchConfig, obs *observer) *Local {
	svc := searchuc.New(searchuc.Providers{
		Objectives: entityrepo.NewObjectives(store),
		KeyResults: entityrepo.NewKeyResults(store),
		Teams:      entityrepo.NewTeams(store),
		Users:      entityrepo.NewUsers(store),
	}, search)
	return &Local{store: store, searchSvc: svc, obs: obs}
}

// Search runs the same pipeline the server runs for GET /api/search.
func (l *Local) Search(ctx context.Context, q string) (res Results, err error) {
	start := time.Now()
	defer func() { l.obs.observe("local.search", start, err) }()

	t, err := term.Validate(q)
	if err != nil {
		return Results{}, fmt.Errorf("search: %w", err)
	}
	env, err := l.searchSvc.Search(ctx, t)
	if err != nil {
		return Results{}, fmt.Errorf("search: %w", err)
	}
	return fromEnvelope(env), nil
}

// Close releases the store.
func (l *Local) Close() {
	if l.store != nil {
		l.store.Close()
	}
}

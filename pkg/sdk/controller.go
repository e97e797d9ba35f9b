package okrsearch

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/kailas-cloud/okrsearch/internal/domain/search/term"
)

const (
	defaultDebounce       = 300 * time.Millisecond
	defaultCacheSize      = 100
	defaultCacheTTL       = 5 * time.Minute
	defaultRequestTimeout = 10 * time.Second
)

// Fetcher resolves a settled term into results. *Client implements it.
type Fetcher interface {
	Search(ctx context.Context, term string) (Results, error)
}

// State is a snapshot of the Controller.
type State struct {
	// SearchTerm is the latest raw input.
	SearchTerm string
	// DebouncedTerm is SearchTerm once input has been quiet for the debounce window.
	DebouncedTerm string
	// Results belongs to DebouncedTerm, or is the last good answer while loading or after a failure.
	Results   Results
	IsLoading bool
	Err       error
}

// ControllerOption configures a Controller.
type ControllerOption interface {
	applyController(*controllerConfig)
}

type controllerOptionFunc func(*controllerConfig)

func (f controllerOptionFunc) applyController(c *controllerConfig) { f(c) }

type controllerConfig struct {
	clock          clockwork.Clock
	debounce       time.Duration
	cacheSize      int
	cacheTTL       time.Duration
	requestTimeout time.Duration
	onChange       func(State)
}

// WithClock replaces the wall clock driving the debounce timer.
func WithClock(c clockwork.Clock) ControllerOption {
	return controllerOptionFunc(func(cfg *controllerConfig) {
		cfg.clock = c
	})
}

// WithDebounce sets the quiet window before a term is searched. Default: 300ms.
func WithDebounce(d time.Duration) ControllerOption {
	return controllerOptionFunc(func(cfg *controllerConfig) {
		cfg.debounce = d
	})
}

// WithCacheSize bounds the number of cached terms. Default: 100.
func WithCacheSize(n int) ControllerOption {
	return controllerOptionFunc(func(cfg *controllerConfig) {
		cfg.cacheSize = n
	})
}

// WithCacheTTL sets how long a cached answer stays fresh. Default: 5m.
func WithCacheTTL(d time.Duration) ControllerOption {
	return controllerOptionFunc(func(cfg *controllerConfig) {
		cfg.cacheTTL = d
	})
}

// WithRequestTimeout bounds each fetch. Default: 10s.
func WithRequestTimeout(d time.Duration) ControllerOption {
	return controllerOptionFunc(func(cfg *controllerConfig) {
		cfg.requestTimeout = d
	})
}

// WithOnChange registers a callback invoked with a snapshot after every state
// change. It runs outside the Controller lock and may be called from
// different goroutines.
func WithOnChange(fn func(State)) ControllerOption {
	return controllerOptionFunc(func(cfg *controllerConfig) {
		cfg.onChange = fn
	})
}

// Controller turns keystrokes into debounced, cached searches.
// Only the answer for the current DebouncedTerm is ever surfaced.
type Controller struct {
	fetcher        Fetcher
	clock          clockwork.Clock
	debounce       time.Duration
	requestTimeout time.Duration
	onChange       func(State)

	cache *expirable.LRU[string, Results]
	group singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	state  State
	timer  clockwork.Timer
	gen    uint64
	closed bool
}

// NewController creates a Controller fetching through f.
func NewController(f Fetcher, opts ...ControllerOption) *Controller {
	cfg := &controllerConfig{
		clock:          clockwork.NewRealClock(),
		debounce:       defaultDebounce,
		cacheSize:      defaultCacheSize,
		cacheTTL:       defaultCacheTTL,
		requestTimeout: defaultRequestTimeout,
	}
	for _, o := range opts {
		o.applyController(cfg)
	}
	if cfg.cacheSize <= 0 {
		cfg.cacheSize = defaultCacheSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		fetcher:        f,
		clock:          cfg.clock,
		debounce:       cfg.debounce,
		requestTimeout: cfg.requestTimeout,
		onChange:       cfg.onChange,
		cache:          expirable.NewLRU[string, Results](cfg.cacheSize, nil, cfg.cacheTTL),
		ctx:            ctx,
		cancel:         cancel,
		state:          State{Results: EmptyResults()},
	}
}

// State returns a snapshot of the current state. Results are copies the
// caller may modify.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// snapshotLocked copies state so callers never share memory with the cache.
func (c *Controller) snapshotLocked() State {
	s := c.state
	s.Results = s.Results.clone()
	return s
}

// SetSearchTerm records raw input and restarts the debounce window.
func (c *Controller) SetSearchTerm(raw string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.SearchTerm = raw
	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.clock.AfterFunc(c.debounce, func() { c.settle(gen) })
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

// Close stops the pending timer and drops any in-flight answer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.cancel()
}

// settle promotes SearchTerm to DebouncedTerm once the window for gen expires.
func (c *Controller) settle(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	t := c.state.SearchTerm
	c.state.DebouncedTerm = t

	if !term.IsQueryable(t) {
		c.state.Results = EmptyResults()
		c.state.Err = nil
		c.state.IsLoading = false
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snapshot)
		return
	}

	if res, ok := c.cache.Get(t); ok {
		c.state.Results = res
		c.state.Err = nil
		c.state.IsLoading = false
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snapshot)
		return
	}

	c.state.IsLoading = true
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snapshot)

	go c.fetch(t)
}

func (c *Controller) fetch(t string) {
	v, err, _ := c.group.Do(t, func() (any, error) {
		if res, ok := c.cache.Get(t); ok {
			return res, nil
		}
		ctx, cancel := context.WithTimeout(c.ctx, c.requestTimeout)
		defer cancel()

		res, err := c.fetcher.Search(ctx, t)
		if err != nil {
			return nil, err //nolint:wrapcheck // surfaced as-is in State.Err
		}
		res = res.normalize()
		c.cache.Add(t, res)
		return res, nil
	})

	c.mu.Lock()
	if c.closed || c.state.DebouncedTerm != t {
		c.mu.Unlock()
		return
	}
	c.state.IsLoading = false
	if err != nil {
		c.state.Err = err
	} else {
		c.state.Results = v.(Results) //nolint:forcetypeassert // singleflight only returns Results
		c.state.Err = nil
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

func (c *Controller) notify(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}

package domain

import "time"

// KeyPrefix namespaces every key the service writes to a key-value store.
const KeyPrefix = "okr:"

// SearchConfig holds aggregator tuning, not exposed to clients.
type SearchConfig struct {
	// Limit caps the number of projections each provider returns.
	Limit int
	// MaxLimit is the upper bound accepted for Limit.
	MaxLimit int
	// ProviderTimeout bounds a single provider lookup.
	ProviderTimeout time.Duration
}

// DefaultSearchConfig returns the default aggregator settings.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Limit:           10,
		MaxLimit:        50,
		ProviderTimeout: 2 * time.Second,
	}
}

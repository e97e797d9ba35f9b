package domain

import "errors"

var (
	// ErrAllProvidersFailed signals that every entity provider failed for one search.
	ErrAllProvidersFailed = errors.New("all search providers failed")
	// ErrProviderFailed signals a single entity provider failure.
	// It never crosses the transport boundary on its own.
	ErrProviderFailed = errors.New("search provider failed")
	// ErrInvalidTerm signals a malformed search term (e.g. too long).
	ErrInvalidTerm = errors.New("invalid search term")
	// ErrInvalidFixture signals a seed entry missing a required field.
	ErrInvalidFixture = errors.New("invalid fixture")
)

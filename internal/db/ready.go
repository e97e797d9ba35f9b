package db

import (
	"context"
	"fmt"
	"time"
)

// readyPollInterval is how often WaitForReady pings while waiting.
const readyPollInterval = 100 * time.Millisecond

// WaitForReady polls p until a ping succeeds or timeout expires.
func WaitForReady(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if p.Ping(ctx) == nil {
		return nil
	}

	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	var last error
	for {
		select {
		case <-ctx.Done():
			if last != nil {
				return fmt.Errorf("timeout waiting for database: %w (last ping: %w)", ctx.Err(), last)
			}
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if last = p.Ping(ctx); last == nil {
				return nil
			}
		}
	}
}

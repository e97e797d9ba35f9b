// Package cli implements the okrsearch-cli commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/okrsearch/internal/config"
	okrsearch "github.com/kailas-cloud/okrsearch/pkg/sdk"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server  string
	APIKey  string
	Timeout time.Duration
	// Local searches the configured store in-process instead of calling a server.
	Local bool
	Env   string
}

// NewRootCommand creates the root command for okrsearch-cli.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "okrsearch-cli",
		Short: "Search objectives, key results, teams and users",
		Long: `okrsearch-cli talks to an okrsearch server.

Use "search" for a one-shot lookup, "tui" for search-as-you-type,
and "seed" to load fixture entities into the configured store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", envOr("OKRSEARCH_URL", "http://localhost:8080"), "okrsearch server URL")
	cmd.PersistentFlags().StringVar(&opts.APIKey, "api-key", os.Getenv("OKRSEARCH_API_KEY"), "bearer API key")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "request timeout")
	cmd.PersistentFlags().BoolVar(&opts.Local, "local", false, "search the configured store directly, without a server")
	cmd.PersistentFlags().StringVar(&opts.Env, "env", config.GetEnv(), "configuration environment for --local and seed")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Client builds an SDK client from the global flags.
func (o *RootOptions) Client() (*okrsearch.Client, error) {
	return okrsearch.New( //nolint:wrapcheck // SDK errors are already prefixed
		okrsearch.WithBaseURL(o.Server),
		okrsearch.WithAPIKey(o.APIKey),
		okrsearch.WithTimeout(o.Timeout),
	)
}

// Fetcher returns the search backend selected by the flags and a release func.
func (o *RootOptions) Fetcher(ctx context.Context) (okrsearch.Fetcher, func(), error) {
	if !o.Local {
		c, err := o.Client()
		if err != nil {
			return nil, nil, err
		}
		return c, func() {}, nil
	}

	cfg, err := config.Load(o.Env)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // config errors are descriptive
	}
	l, err := okrsearch.NewLocal(ctx, cfg.Database, cfg.SearchDomain())
	if err != nil {
		return nil, nil, fmt.Errorf("local search: %w", err)
	}
	return l, l.Close, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

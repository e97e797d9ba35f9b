package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/okrsearch/internal/bootstrap"
	"github.com/kailas-cloud/okrsearch/internal/config"
	dombatch "github.com/kailas-cloud/okrsearch/internal/domain/batch"
	"github.com/kailas-cloud/okrsearch/internal/usecase/seed"
)

// ErrSeedIncomplete reports that at least one fixture was not stored.
var ErrSeedIncomplete = errors.New("seed incomplete")

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	File   string
	Driver string
	DSN    string
}

// NewSeedCommand creates the seed command. It writes to the store directly,
// using the server configuration selected by --env.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture entities into the configured store",
		Long: `Load objectives, key results, teams and users from a YAML file.

Entries without an id get a UUIDv7. Entries whose id already exists are
left untouched, so seeding is safe to repeat.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rootOpts.Env)
			if err != nil {
				return err //nolint:wrapcheck // config errors are descriptive
			}
			if opts.Driver != "" {
				cfg.Database.Driver = opts.Driver
			}
			if opts.DSN != "" {
				cfg.Database.DSN = opts.DSN
			}
			return runSeed(cmd.Context(), cmd.OutOrStdout(), cfg.Database, opts.File)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "fixtures YAML file")
	cmd.Flags().StringVar(&opts.Driver, "driver", "", "override database.driver")
	cmd.Flags().StringVar(&opts.DSN, "dsn", "", "override database.dsn")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSeed(ctx context.Context, out io.Writer, dbCfg config.DatabaseConfig, path string) error {
	fixtures, err := loadFixtures(path)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	results := seed.New(store).Seed(ctx, fixtures)
	for _, r := range results {
		if r.Status() == dombatch.StatusError {
			_, _ = fmt.Fprintf(out, "error  %-10s %s: %v\n", r.Kind(), r.ID(), r.Err())
		}
	}

	sum := dombatch.Summarize(results)
	_, _ = fmt.Fprintf(out, "seeded %d of %d entities\n", sum.OK, len(results))
	if sum.Failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrSeedIncomplete, sum.Failed)
	}
	return nil
}

func loadFixtures(path string) (seed.Fixtures, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return seed.Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}

	var f seed.Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return seed.Fixtures{}, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return f, nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search all entity kinds once and print the results as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, rootOpts, args[0])
		},
	}
}

func runSearch(cmd *cobra.Command, opts *RootOptions, q string) error {
	fetcher, release, err := opts.Fetcher(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	res, err := fetcher.Search(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/okrsearch/internal/tui"
	okrsearch "github.com/kailas-cloud/okrsearch/pkg/sdk"
)

// NewTUICommand creates the interactive search command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive search-as-you-type",
		Long: `Launch the interactive terminal search.

Results refresh once typing pauses. Terms shorter than two characters
are not searched.

Controls:
  Esc, Ctrl+C - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetcher, release, err := rootOpts.Fetcher(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return tui.Run(fetcher,
				okrsearch.WithDebounce(debounce),
				okrsearch.WithRequestTimeout(rootOpts.Timeout),
			)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "quiet period before a search is sent")
	return cmd
}

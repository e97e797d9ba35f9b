package cli

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/okrsearch/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("okrsearch-cli " + version.String())
		},
	}
}

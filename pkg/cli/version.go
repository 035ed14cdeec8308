package cli

import (
	"fmt"

	"github.com/cloudsleuth/scout-mcp/pkg/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the scout-mcp version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scout-mcp %s\n", version.Format())
		},
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/cloudsleuth/scout-mcp/pkg/util"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scout-mcp",
		Short: "MCP server that builds ScoutSuite audit commands",
		Long: `Scout-mcp - An MCP server that turns structured audit parameters into the
equivalent ScoutSuite command line.

The server never runs ScoutSuite itself: it returns the command as text for
the caller to execute on a machine with cloud credentials.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			util.InitLogger(verbose)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewPreviewCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewDoctorCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

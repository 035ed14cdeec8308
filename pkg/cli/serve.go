package cli

import (
	"github.com/cloudsleuth/scout-mcp/pkg/config"
	"github.com/cloudsleuth/scout-mcp/pkg/mcpserver"
	"github.com/cloudsleuth/scout-mcp/pkg/util"
	"github.com/cloudsleuth/scout-mcp/pkg/version"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var configFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the scout-mcp server on the configured transport.

With the default stdio transport, the MCP framing owns stdout; all logging
goes to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			log := util.GetLogger()
			log.Info("Starting scout-mcp",
				"version", version.Format(),
				"transport", cfg.Transport,
				"tool", cfg.ToolPath,
				"provider", cfg.Provider,
			)

			return mcpserver.New(cfg, version.Version).Serve(cmd.Context())
		},
	}

	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "Server configuration file (default: built-in defaults)")

	return serveCmd
}

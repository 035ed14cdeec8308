package cli

import (
	"fmt"

	"github.com/cloudsleuth/scout-mcp/pkg/config"
	"github.com/cloudsleuth/scout-mcp/pkg/util"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a server configuration",
		Long:  `Check if a server configuration file is valid without starting the server.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := args[0]
			log := util.GetLogger()

			log.Info("Validating server configuration", "file", configFile)

			// Load server configuration
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			// Validate server configuration
			if err := config.Validate(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration is valid: transport=%s tool=%s\n", cfg.Transport, cfg.ToolPath)
			return nil
		},
	}

	return validateCmd
}

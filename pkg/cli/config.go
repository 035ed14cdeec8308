package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudsleuth/scout-mcp/pkg/audit"
	"github.com/cloudsleuth/scout-mcp/pkg/config"
	"github.com/cloudsleuth/scout-mcp/pkg/util"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	configOutputFile string
)

// NewConfigCmd creates the config command with subcommands
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage scout-mcp configurations",
		Long:  `Create and manage server configurations for scout-mcp.`,
	}

	// Add subcommands
	configCmd.AddCommand(NewConfigInitCmd())

	return configCmd
}

// NewConfigInitCmd creates the config init command
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a server configuration file",
		Long: `Interactively create a server configuration file for scout-mcp.

A server configuration specifies:
  - The ScoutSuite invocation name placed in generated commands
  - The report directory named in the advisory text
  - The MCP transport (stdio or sse)`,
		RunE: runConfigInit,
	}

	cmd.Flags().StringVarP(&configOutputFile, "output", "o", "", "Output file path (default: ./scout-mcp.yaml)")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	log := util.GetLogger()

	cfg, err := createServerConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Determine output file
	outputFile := configOutputFile
	if outputFile == "" {
		outputFile = "./scout-mcp.yaml"
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(outputFile)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := config.Write(cfg, outputFile); err != nil {
		return err
	}

	log.Info("Server configuration created", "file", outputFile, "transport", cfg.Transport)
	fmt.Printf("✓ Created server configuration: %s\n", outputFile)

	return nil
}

// createServerConfig creates a server configuration interactively
func createServerConfig() (*config.Config, error) {
	cfg := config.Default()

	// Prompt for the tool invocation name (optional)
	prompt := promptui.Prompt{
		Label:   "ScoutSuite invocation name or path",
		Default: audit.DefaultTool,
	}
	toolPath, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	cfg.ToolPath = toolPath

	// Prompt for the report directory (optional)
	prompt = promptui.Prompt{
		Label:   "Report directory named in the advisory text",
		Default: audit.DefaultReportDir,
	}
	reportDir, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	cfg.ReportDir = reportDir

	// Prompt for the transport
	transportPrompt := promptui.Select{
		Label: "MCP transport",
		Items: []string{config.TransportStdio, config.TransportSSE},
	}
	_, transport, err := transportPrompt.Run()
	if err != nil {
		return nil, err
	}
	cfg.Transport = transport

	if transport == config.TransportSSE {
		prompt = promptui.Prompt{
			Label:   "Listen address",
			Default: ":8811",
		}
		listenAddr, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		cfg.ListenAddr = listenAddr
	}

	return cfg, nil
}

package cli

import (
	"fmt"

	"github.com/cloudsleuth/scout-mcp/pkg/audit"
	"github.com/cloudsleuth/scout-mcp/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// previewFlags mirrors every AuditRequest field as a CLI flag. Presence is
// tracked through pflag's Changed, so an unset flag stays an absent field.
type previewFlags struct {
	fullReport      bool
	maxWorkers      int
	services        []string
	skipServices    []string
	profile         string
	useAccessKeys   bool
	accessKeyID     string
	secretAccessKey string
	sessionToken    string
	regions         string
	excludeRegions  string
	ipRanges        string
	ipRangesNameKey string
}

// NewPreviewCmd creates the preview command
func NewPreviewCmd() *cobra.Command {
	var configFile string
	var f previewFlags

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Build an audit command locally",
		Long: `Build the same advisory text the MCP tool would return, from flags
instead of a client call. Useful for checking what a given parameter set
produces.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			req := buildPreviewRequest(cmd.Flags(), &f)
			text := audit.Advisory(cfg.ToolPath, cfg.Provider, cfg.ReportDir, req)

			header := color.New(color.FgCyan, color.Bold).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", header("scout-mcp preview"), text)
			return nil
		},
	}

	previewCmd.Flags().StringVarP(&configFile, "config", "c", "", "Server configuration file (default: built-in defaults)")

	previewCmd.Flags().BoolVar(&f.fullReport, "full-report", false, "Ask for the full report in the advisory text")
	previewCmd.Flags().IntVar(&f.maxWorkers, "max-workers", 0, "Maximum number of ScoutSuite worker threads")
	previewCmd.Flags().StringSliceVar(&f.services, "services", nil, "Services to audit (comma-separated, repeatable)")
	previewCmd.Flags().StringSliceVar(&f.skipServices, "skip-services", nil, "Services to skip (comma-separated, repeatable)")
	previewCmd.Flags().StringVar(&f.profile, "profile", "", "Named AWS credential profile")
	previewCmd.Flags().BoolVar(&f.useAccessKeys, "use-access-keys", false, "Use access keys instead of a profile")
	previewCmd.Flags().StringVar(&f.accessKeyID, "access-key-id", "", "AWS access key ID")
	previewCmd.Flags().StringVar(&f.secretAccessKey, "secret-access-key", "", "AWS secret access key")
	previewCmd.Flags().StringVar(&f.sessionToken, "session-token", "", "AWS session token")
	previewCmd.Flags().StringVar(&f.regions, "regions", "", "Comma-joined regions to include (passed through verbatim)")
	previewCmd.Flags().StringVar(&f.excludeRegions, "exclude-regions", "", "Comma-joined regions to exclude (passed through verbatim)")
	previewCmd.Flags().StringVar(&f.ipRanges, "ip-ranges", "", "Path to an ip-ranges JSON file")
	previewCmd.Flags().StringVar(&f.ipRangesNameKey, "ip-ranges-name-key", "", "Key used to name IP ranges")

	return previewCmd
}

// buildPreviewRequest maps changed flags onto an AuditRequest, leaving
// untouched flags as absent fields.
func buildPreviewRequest(flags *pflag.FlagSet, f *previewFlags) *audit.AuditRequest {
	req := &audit.AuditRequest{}

	if flags.Changed("full-report") {
		req.FullReport = &f.fullReport
	}
	if flags.Changed("max-workers") {
		req.MaxWorkers = &f.maxWorkers
	}
	if flags.Changed("services") {
		req.Services = f.services
	}
	if flags.Changed("skip-services") {
		req.SkipServices = f.skipServices
	}
	if flags.Changed("profile") {
		req.Profile = &f.profile
	}
	if flags.Changed("use-access-keys") {
		req.UseAccessKeys = &f.useAccessKeys
	}
	if flags.Changed("access-key-id") {
		req.AccessKeyID = &f.accessKeyID
	}
	if flags.Changed("secret-access-key") {
		req.SecretAccessKey = &f.secretAccessKey
	}
	if flags.Changed("session-token") {
		req.SessionToken = &f.sessionToken
	}
	if flags.Changed("regions") {
		req.Regions = &f.regions
	}
	if flags.Changed("exclude-regions") {
		req.ExcludeRegions = &f.excludeRegions
	}
	if flags.Changed("ip-ranges") {
		req.IPRanges = &f.ipRanges
	}
	if flags.Changed("ip-ranges-name-key") {
		req.IPRangesNameKey = &f.ipRangesNameKey
	}

	return req
}

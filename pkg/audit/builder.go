// Package audit builds ScoutSuite command lines from structured parameters.
//
// Nothing in this package executes anything: the output is advisory text for
// the caller to copy into a shell on a machine that has cloud credentials.
// Because of that, tokens are passed through without escaping or quoting.
package audit

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults for the pieces of the invocation that are not request parameters.
const (
	DefaultTool      = "scout"
	DefaultProvider  = "aws"
	DefaultReportDir = "scoutsuite-report"
)

// BuildArgs constructs the ScoutSuite argument vector for req.
//
// The vector always starts with the provider subcommand followed by --force
// and --no-browser, so the suggested command never blocks on a prompt or
// tries to open a browser. Optional flags follow in a fixed order, each
// appended only when its field is present. A nil req yields just the base
// tokens. The result is deterministic: equal requests produce equal vectors.
func BuildArgs(provider string, req *AuditRequest) []string {
	args := []string{provider, "--force", "--no-browser"}
	if req == nil {
		return args
	}

	if req.MaxWorkers != nil {
		args = append(args, "--max-workers", strconv.Itoa(*req.MaxWorkers))
	}

	// Service lists expand one element per token, preserving input order.
	if len(req.Services) > 0 {
		args = append(args, "--services")
		args = append(args, req.Services...)
	}
	if len(req.SkipServices) > 0 {
		args = append(args, "--skip")
		args = append(args, req.SkipServices...)
	}

	if req.Profile != nil {
		args = append(args, "--profile", *req.Profile)
	}

	// --access-keys takes no value; presence of the field is the toggle.
	if req.UseAccessKeys != nil {
		args = append(args, "--access-keys")
	}
	if req.AccessKeyID != nil {
		args = append(args, "--access-key-id", *req.AccessKeyID)
	}
	if req.SecretAccessKey != nil {
		args = append(args, "--secret-access-key", *req.SecretAccessKey)
	}
	if req.SessionToken != nil {
		args = append(args, "--session-token", *req.SessionToken)
	}

	if req.Regions != nil {
		args = append(args, "--regions", *req.Regions)
	}
	if req.ExcludeRegions != nil {
		args = append(args, "--exclude-regions", *req.ExcludeRegions)
	}

	if req.IPRanges != nil {
		args = append(args, "--ip-ranges", *req.IPRanges)
	}
	if req.IPRangesNameKey != nil {
		args = append(args, "--ip-ranges-name-key", *req.IPRangesNameKey)
	}

	return args
}

// CommandLine renders the full invocation as a single line: the tool name
// followed by the argument vector joined with single spaces.
func CommandLine(tool, provider string, req *AuditRequest) string {
	return tool + " " + strings.Join(BuildArgs(provider, req), " ")
}

// Advisory wraps the command line in the text returned to the caller: a
// notice that the audit has to run where credentials are available, the
// literal command, and a note on where ScoutSuite writes its report.
func Advisory(tool, provider, reportDir string, req *AuditRequest) string {
	var b strings.Builder

	b.WriteString("ScoutSuite audits a cloud account by calling its provider APIs directly, ")
	b.WriteString("which needs credentials and network access this server does not have. ")
	b.WriteString("Run the following command on a machine where the target account's credentials are configured:\n\n")

	b.WriteString("  ")
	b.WriteString(CommandLine(tool, provider, req))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "When the run finishes, ScoutSuite writes its HTML report under the %s/ directory relative to where the command was run.", reportDir)

	if req != nil && req.FullReport != nil && *req.FullReport {
		b.WriteString(" The full report covers every scanned service; open the generated HTML file in a browser to review all findings.")
	}

	return b.String()
}

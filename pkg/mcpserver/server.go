// Package mcpserver exposes the command builder over the Model Context
// Protocol. It owns the dispatch boundary: schema declaration, argument
// decoding, and the catch-all that turns an unexpected failure into a
// generic error response.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cloudsleuth/scout-mcp/pkg/audit"
	"github.com/cloudsleuth/scout-mcp/pkg/config"
	"github.com/cloudsleuth/scout-mcp/pkg/util"
)

// ToolName identifies the single operation this server exposes.
const ToolName = "scoutsuite_audit"

// Server wraps an MCP server with the scoutsuite_audit tool registered.
type Server struct {
	cfg *config.Config
	mcp *server.MCPServer

	// advisory is swappable so tests can exercise the catch-all path.
	advisory func(tool, provider, reportDir string, req *audit.AuditRequest) string
}

// New creates a Server from a validated configuration.
func New(cfg *config.Config, version string) *Server {
	s := &Server{
		cfg:      cfg,
		advisory: audit.Advisory,
	}

	m := server.NewMCPServer("scout-mcp", version,
		server.WithToolCapabilities(false),
	)
	m.AddTool(auditTool(), s.handleAudit)
	s.mcp = m

	return s
}

// auditTool declares the tool schema. The transport layer enforces these
// shapes before the handler runs, which is what lets the builder stay a
// trusted-input pure function.
func auditTool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Build the ScoutSuite command line for an AWS security audit. "+
			"The command is returned as text for you to run yourself; nothing is executed by this server."),
		mcp.WithBoolean("full_report",
			mcp.Description("Request the full report in the advisory text. Does not change the generated command.")),
		mcp.WithNumber("max_workers",
			mcp.Description("Maximum number of ScoutSuite worker threads.")),
		mcp.WithArray("services",
			mcp.Description("Services to audit, e.g. [\"iam\", \"s3\"]."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("skip_services",
			mcp.Description("Services to skip."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("profile",
			mcp.Description("Named AWS credential profile.")),
		mcp.WithBoolean("use_access_keys",
			mcp.Description("Use access keys instead of a profile. Supplying the field at all enables the flag.")),
		mcp.WithString("access_key_id",
			mcp.Description("AWS access key ID.")),
		mcp.WithString("secret_access_key",
			mcp.Description("AWS secret access key.")),
		mcp.WithString("session_token",
			mcp.Description("AWS session token.")),
		mcp.WithString("regions",
			mcp.Description("Comma-joined list of regions to include, passed through verbatim.")),
		mcp.WithString("exclude_regions",
			mcp.Description("Comma-joined list of regions to exclude, passed through verbatim.")),
		mcp.WithString("ip_ranges",
			mcp.Description("Path to an ip-ranges JSON file on your machine.")),
		mcp.WithString("ip_ranges_name_key",
			mcp.Description("Key used to name IP ranges from the ip-ranges file.")),
	)
}

// handleAudit dispatches one scoutsuite_audit call to the builder.
//
// The builder never errors on schema-valid input, so the only failure modes
// here are malformed arguments and the defensive catch-all. Neither leaks
// detail to the caller: both map to a short, generic error result.
func (s *Server) handleAudit(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	log := util.GetLogger()

	defer func() {
		if r := recover(); r != nil {
			log.Info("Audit handler panicked", "panic", fmt.Sprintf("%v", r))
			result = mcp.NewToolResultError("internal server error")
			err = nil
		}
	}()

	in, decodeErr := decodeRequest(req)
	if decodeErr != nil {
		log.Info("Rejecting malformed audit arguments", "error", decodeErr.Error())
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	log.V(1).Info("Building audit command",
		"tool", s.cfg.ToolPath, "provider", s.cfg.Provider)

	text := s.advisory(s.cfg.ToolPath, s.cfg.Provider, s.cfg.ReportDir, in)
	return mcp.NewToolResultText(text), nil
}

// decodeRequest converts the raw argument map into an AuditRequest. Going
// through JSON keeps absent fields as nil pointers instead of zero values.
func decodeRequest(req mcp.CallToolRequest) (*audit.AuditRequest, error) {
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments: %w", err)
	}

	var in audit.AuditRequest
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to decode arguments: %w", err)
	}

	return &in, nil
}

// Serve blocks, serving MCP clients on the configured transport.
func (s *Server) Serve(ctx context.Context) error {
	log := util.GetLogger()

	switch s.cfg.Transport {
	case config.TransportSSE:
		log.Info("Starting MCP server", "transport", config.TransportSSE, "addr", s.cfg.ListenAddr)
		return server.NewSSEServer(s.mcp).Start(s.cfg.ListenAddr)
	default:
		log.Info("Starting MCP server", "transport", config.TransportStdio)
		return server.ServeStdio(s.mcp)
	}
}

package config

import "github.com/cloudsleuth/scout-mcp/pkg/audit"

// Transport values accepted in the server configuration.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config controls how the server presents the ScoutSuite invocation and how
// it listens for MCP clients. Every field has a default, so running without
// a configuration file is valid.
type Config struct {
	// ToolPath is the invocation name (or path) placed before the argument
	// vector in the returned command line. It is never executed here.
	ToolPath string `yaml:"toolPath,omitempty" validate:"required"`

	// Provider is the ScoutSuite subcommand. Only AWS is wired up for now.
	Provider string `yaml:"provider,omitempty" validate:"required,oneof=aws"`

	// ReportDir is the directory named in the report-location note of the
	// returned text.
	ReportDir string `yaml:"reportDir,omitempty" validate:"required"`

	// Transport selects how the MCP server is exposed: stdio or sse.
	Transport string `yaml:"transport,omitempty" validate:"required,oneof=stdio sse"`

	// ListenAddr is the address for the sse transport, e.g. ":8811".
	// Required when Transport is sse; unused otherwise.
	ListenAddr string `yaml:"listenAddr,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		ToolPath:  audit.DefaultTool,
		Provider:  audit.DefaultProvider,
		ReportDir: audit.DefaultReportDir,
		Transport: TransportStdio,
	}
}

// applyDefaults fills any field left empty by the configuration file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.ToolPath == "" {
		c.ToolPath = d.ToolPath
	}
	if c.Provider == "" {
		c.Provider = d.Provider
	}
	if c.ReportDir == "" {
		c.ReportDir = d.ReportDir
	}
	if c.Transport == "" {
		c.Transport = d.Transport
	}
}

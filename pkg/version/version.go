package version

import "runtime/debug"

// Version is overridden at build time via
// -ldflags "-X github.com/cloudsleuth/scout-mcp/pkg/version.Version=...".
var Version = "0.1.0-dev"

// Format returns the version string, appending the VCS revision from the
// embedded build info when one is available.
func Format() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return Version + "+" + s.Value[:7]
		}
	}
	return Version
}

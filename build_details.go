// Package openapimerge provides build metadata for the openapi-merge tool
// and library: the version, commit, and build time baked in at release time
// via ldflags, plus the User-Agent string internal/loader sends when
// fetching an input over HTTP(S).
package openapimerge

import (
	"fmt"
	"runtime"
)

var (
	// version, commit, and buildTime are set via ldflags during release
	// builds. For development builds these show their defaults below.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return version
}

// Commit returns the compiled git commit or "unknown" if run from source.
func Commit() string {
	return commit
}

// BuildTime returns the compiled build timestamp (RFC3339) or "unknown" if
// run from source.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version used to compile the binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string internal/loader sends on every
// HTTP(S) input fetch.
func UserAgent() string {
	return fmt.Sprintf("openapi-merge/%s", version)
}

// BuildInfo returns a human-readable summary of all build metadata, as
// printed by the CLI's version output.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}

package oasgen

import (
	"fmt"
	"runtime"

	"github.com/oasgen/oasgen/internal/buildinfo"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return buildinfo.Version
}

// Commit returns the git commit hash this binary was built from, or
// "unknown" for development builds.
func Commit() string {
	return buildinfo.Commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown" for
// development builds.
func BuildTime() string {
	return buildinfo.BuildTime
}

// GoVersion returns the Go runtime version used to build this binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string oasgen uses when fetching
// anything over HTTP (presently nothing in the core does; reserved for
// collaborators at the CLI/MCP boundary).
func UserAgent() string {
	return buildinfo.UserAgent()
}

// BuildInfo returns a human-readable multi-line summary of build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}

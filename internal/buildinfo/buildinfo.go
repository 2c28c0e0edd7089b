// Package buildinfo holds the build-time metadata variables shared between
// the root oasgen package and internal packages that cannot import it
// directly (doing so would create an import cycle).
package buildinfo

import "fmt"

var (
	// Version, Commit, and BuildTime are set via -ldflags at build time.
	// Development builds keep the default values below.
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// UserAgent returns the User-Agent string oasgen uses when fetching
// anything over HTTP.
func UserAgent() string {
	return fmt.Sprintf("oasgen/%s", Version)
}

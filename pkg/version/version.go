// Package version holds build identification, overridable at link time.
package version

import "fmt"

var (
	// Version is the semantic version, set via -ldflags.
	Version = "dev"
	// Commit is the git commit hash, set via -ldflags.
	Commit = "none"
	// Date is the build date, set via -ldflags.
	Date = "unknown"
)

// String returns the full version string.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Package version holds build-time version information, overridden by the
// linker at release time.
package version

var (
	// Version is the semantic version of the build
	Version = "dev"

	// Commit is the git commit the build was produced from
	Commit = "none"

	// Date is the build timestamp
	Date = "unknown"
)

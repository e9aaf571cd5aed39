// Package version exposes build metadata stamped in via ldflags.
package version

import "fmt"

// Build metadata, overridden at build time with
// -ldflags "-X .../internal/version.Version=... -X .../internal/version.Commit=...".
var (
	// Version is the semantic version of the binary.
	Version = "0.1.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}

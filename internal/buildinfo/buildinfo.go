// Package buildinfo holds the release metadata stamped into skm binaries.
package buildinfo

// Set at release time via -ldflags; empty for local builds, in which case
// the version command falls back to debug.ReadBuildInfo.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

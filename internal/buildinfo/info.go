// Package buildinfo carries release metadata stamped in at build time.
package buildinfo

// Set with -ldflags "-X .../internal/buildinfo.Version=..." by the release
// build; the defaults identify a local development binary.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Huekit is the canonical application identifier used for filesystem paths and CLI branding.
	Huekit = "huekit"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build Provenance Metadata - these values are injected at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

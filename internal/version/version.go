// Package version provides build-time version information for the metadata
// library and the tools embedding it.
package version

import (
	"fmt"
	"runtime"

	"github.com/substrate-contracts/contract-metadata/metadata"
)

// Build-time variables set via ldflags.
var (
	// Version is the library version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the library version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// SchemaVersion is the metadata document schema version emitted by this
	// build.
	SchemaVersion string `json:"schemaVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		SchemaVersion: metadata.MetadataVersion,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("contract-metadata:\n  Version:  %s\n  Build ID: %s/%s\n  Schema:   %s",
		i.Version, i.BuildDate, i.GitCommit, i.SchemaVersion)
}

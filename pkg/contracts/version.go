package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the application
	Version = "0.1.0"

	// DataFormatVersion is the version of the cleaned CSV layout
	DataFormatVersion = "v1"
)

// VersionInfo returns a human-readable version string including the
// Go runtime it was built with.
func VersionInfo() string {
	return fmt.Sprintf("eegcli %s (data format %s, %s)", Version, DataFormatVersion, runtime.Version())
}

// Package cmdcommon provides common functionality for command-line tools.
package cmdcommon

import (
	"fmt"
	"runtime"
)

// Build-time variables (set via ldflags)
var (
	Version = "dev"
	Commit  = "unknown"
)

// VersionString describes the running binary for --version.
func VersionString(program string) string {
	return fmt.Sprintf("%s %s (commit %s, %s %s/%s)",
		program, Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

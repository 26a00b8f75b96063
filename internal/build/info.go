// Package build holds release metadata stamped in by the linker.
package build

import "fmt"

// Set with:
//
//	-ldflags "-X github.com/joestump/linkcat/internal/build.Version=v1.2.0 -X ...build.Date=2026-01-02"
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
	Date    = "unknown"
)

// Summary is the one-line description printed by `linkcat version`.
func Summary() string {
	return fmt.Sprintf("linkcat %s (commit %s, branch %s, built %s)", Version, Commit, Branch, Date)
}

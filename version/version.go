// Package version contains build and version details,
// set at build time via ldflags.
package version

import "fmt"

// Build and version details
var (
	GitCommit = ""
	GitBranch = ""
	BuildDate = ""
	Version   = "unknown"
)

var tpl = `git commit: %s
git branch: %s
build date: %s
version: %s`

// String formats a string with version details.
func String() string {
	return fmt.Sprintf(tpl, GitCommit, GitBranch, BuildDate, Version)
}

// LogFields returns the version details as logger fields.
func LogFields() []interface{} {
	return []interface{}{
		"GitCommit", GitCommit,
		"GitBranch", GitBranch,
		"BuildDate", BuildDate,
		"Version", Version,
	}
}

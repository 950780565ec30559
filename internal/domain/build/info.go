// Package build describes the binary as stamped at link time.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the version line printed by --version.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return fmt.Sprintf("%s (%s)", v, i.GoVersion)
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, built %s, %s)", v, commit, i.BuildDate, i.GoVersion)
}

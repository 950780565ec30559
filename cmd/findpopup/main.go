// Command findpopup runs the find popup and its terminal tooling.
package main

import (
	"context"
	"runtime"

	"github.com/bnema/findpopup/internal/cli/cmd"
	"github.com/bnema/findpopup/internal/domain/build"
	"github.com/bnema/findpopup/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	setupCrashDiagnostics(logging.WithContext(context.Background(), logging.NewFromEnv()))

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

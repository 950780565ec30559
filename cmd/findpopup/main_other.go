//go:build !linux && !darwin

package main

import (
	"context"
	"runtime/debug"
)

func setupCrashDiagnostics(context.Context) {
	debug.SetTraceback("crash")
}

//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/findpopup/internal/logging"
)

// setupCrashDiagnostics makes Go crashes dump every goroutine and raises the
// core file soft limit to the hard limit.
func setupCrashDiagnostics(ctx context.Context) {
	debug.SetTraceback("crash")
	log := logging.FromContext(ctx)

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		log.Debug().Err(err).Msg("failed to read RLIMIT_CORE")
		return
	}

	soft := limit.Cur
	if limit.Cur < limit.Max {
		limit.Cur = limit.Max
		if err := unix.Setrlimit(unix.RLIMIT_CORE, &limit); err != nil {
			log.Debug().Err(err).Msg("failed to raise RLIMIT_CORE")
			limit.Cur = soft
		}
	}

	log.Debug().
		Str("soft_before", rlimitString(soft)).
		Str("soft", rlimitString(limit.Cur)).
		Str("hard", rlimitString(limit.Max)).
		Msg("core dump limits")
}

func rlimitString(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/halvfigur/snyke/internal/ctxlog"
)

// Watch monitors sigCh and cancels the context on the second signal of a
// given type. The first signal of each type is recorded but otherwise
// ignored so that child processes get a chance to exit on their own.
// Watch returns when the channel is closed or the context is cancelled.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "watchdog",
				"detail", "received second signal of type, forcefully terminating",
				"signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "watchdog",
			"detail", "received first signal of type, waiting for tasks to stop",
			"signal", sig.String())

		seen[sig] = struct{}{}
	}
}

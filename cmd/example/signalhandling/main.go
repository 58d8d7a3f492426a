// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Demonstrates signal handling with the taskrun package.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/signalbroker"
	"github.com/halvfigur/snyke/internal/taskrun"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second) //nolint:mnd
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	ctxlog.LevelVar.Set(slog.LevelDebug)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	// A mix of OS processes and in-process functions, so both shutdown
	// paths are exercised when a signal arrives.
	group := createDemoGroup()

	fmt.Println("=== Signal Handling Demo ===")
	fmt.Println("1. Press Ctrl+C once to gracefully cancel all tasks")
	fmt.Println("2. Press Ctrl+C twice to forcefully terminate")
	fmt.Println("3. Wait 30 seconds for auto-timeout")
	fmt.Println("Running tasks...")

	results := group.Run(ctx)

	fmt.Println("\n=== Results ===")

	options := taskrun.DefaultOutputOptions()
	options.IncludeStdOut = true
	options.IncludeStdErr = true
	results.PrintWithOptions(options) //nolint:errcheck
}

func createDemoGroup() *taskrun.SerialGroup {
	return &taskrun.SerialGroup{
		BaseTask: taskrun.NewBaseTask("Signal Handling Demo", ".", taskrun.RunOnSuccess, nil, nil),
		Tasks: []taskrun.Runnable{
			&taskrun.OSTask{
				BaseTask: taskrun.NewBaseTask("Echo Start", ".", taskrun.RunOnSuccess, nil, nil),
				Path:     "/bin/sh",
				Args:     []string{"-c", "echo Starting demo..."},
			},
			&taskrun.ParallelGroup{
				BaseTask: taskrun.NewBaseTask("Parallel Tasks", ".", taskrun.RunOnSuccess, nil, nil),
				Tasks: []taskrun.Runnable{
					// A long-running process that will be interrupted
					&taskrun.OSTask{
						BaseTask: taskrun.NewBaseTask("Long Sleep", ".", taskrun.RunOnSuccess, nil, nil),
						Path:     "/bin/sleep",
						Args:     []string{"30"},
					},
					// An in-process function that watches for cancellation
					&taskrun.FuncTask{
						BaseTask: taskrun.NewBaseTask("Cancellable Function", ".", taskrun.RunOnSuccess, nil, nil),
						Func: func(ctx context.Context, _ string, _ ...string) taskrun.TaskFuncReturn {
							ticker := time.NewTicker(1 * time.Second)
							defer ticker.Stop()

							count := 0

							fmt.Println("Function running...")

							for {
								select {
								case <-ticker.C:
									count++
									fmt.Printf("Function tick %d\n", count)

									if count >= 60 { //nolint:mnd
										fmt.Println("Function completed naturally")
										return taskrun.TaskFuncReturn{}
									}
								case <-ctx.Done():
									fmt.Println("Function cancelled")

									return taskrun.TaskFuncReturn{
										Err: fmt.Errorf("function cancelled"), //nolint:err113
									}
								}
							}
						},
					},
				},
			},
			// This task should never run if we interrupt
			&taskrun.OSTask{
				BaseTask: taskrun.NewBaseTask("Final Echo", ".", taskrun.RunOnSuccess, nil, nil),
				Path:     "/bin/sh",
				Args:     []string{"-c", "echo This should only print if no interruption occurred"},
			},
		},
	}
}

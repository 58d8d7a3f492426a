// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Demonstrates driving the taskrun library directly, without a taskfile.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/taskrun"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	group := &taskrun.SerialGroup{
		BaseTask: taskrun.NewBaseTask("Demo Group", ".", taskrun.RunOnSuccess, nil, nil),
		Tasks: []taskrun.Runnable{
			&taskrun.OSTask{
				BaseTask: taskrun.NewBaseTask("Echo Task", ".", taskrun.RunOnSuccess, nil, nil),
				Path:     "/bin/echo",
				Args:     []string{"This is a successful task"},
			},
			&taskrun.ParallelGroup{
				BaseTask: taskrun.NewBaseTask("Parallel Tasks", ".", taskrun.RunOnAlways, nil, nil),
				Tasks: []taskrun.Runnable{
					&taskrun.OSTask{
						BaseTask: taskrun.NewBaseTask("Cat Hosts", ".", taskrun.RunOnSuccess, nil, nil),
						Path:     "/bin/cat",
						Args:     []string{"/etc/hosts"},
					},
					&taskrun.OSTask{
						BaseTask: taskrun.NewBaseTask("Failing Task", ".", taskrun.RunOnSuccess, nil, nil),
						Path:     "/bin/sh",
						Args: []string{
							"-c",
							"echo 'This task will fail with exit code 1' && echo 'This is stderr line 1' >&2 && exit 1",
						},
					},
				},
			},
			&taskrun.SerialGroup{
				BaseTask: taskrun.NewBaseTask("Nested Group", ".", taskrun.RunOnAlways, nil, nil),
				Tasks: []taskrun.Runnable{
					&taskrun.OSTask{
						BaseTask: taskrun.NewBaseTask("Nested Echo", ".", taskrun.RunOnSuccess, nil, nil),
						Path:     "/bin/echo",
						Args:     []string{"This is a nested task"},
					},
				},
			},
		},
	}

	results := group.Run(ctx)

	fmt.Println("\n=== Default Output (errors only) ===")
	results.Print() //nolint:errcheck

	fmt.Println("\n=== Full Output (includes stdout) ===")

	fullOptions := taskrun.DefaultOutputOptions()
	fullOptions.IncludeStdOut = true
	fullOptions.ShowSuccessDetails = true
	results.PrintWithOptions(fullOptions) //nolint:errcheck

	fmt.Println("\n=== Compact Output (no colors) ===")

	compactOptions := taskrun.DefaultOutputOptions()
	compactOptions.ColorOutput = false
	compactOptions.IncludeStdErr = true
	results.PrintWithOptions(compactOptions) //nolint:errcheck

	fmt.Println("\n=== Plain Writer Output ===")
	results.Write(os.Stdout) //nolint:errcheck
}

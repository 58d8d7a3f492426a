// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"context"

	"github.com/halvfigur/snyke/internal/progress"
)

// Runnable is implemented by anything that can run as part of a task
// tree, a single task or a nested group.
type Runnable interface {
	// Run executes the task or group and returns the results.
	// Implementations must honor context cancellation and relay signals
	// to any spawned process.
	Run(context.Context) Results
	// SetCwd resolves the working directory against base. An absolute
	// directory already set on the task is preserved; a relative one is
	// joined with base.
	SetCwd(base string) error
	// InheritEnv adds environment variables without overwriting any that
	// are already set.
	InheritEnv(env map[string]string)
	// GetLabel returns the label of the task or group.
	GetLabel() string
	// GetParent returns the parent group, or nil for the root.
	GetParent() Runnable
	// SetParent sets the parent group.
	SetParent(Runnable)
	// ShouldRun decides whether to run, skip, or fail based on the
	// outcome of the preceding task.
	ShouldRun(prev PreviousTaskStatus) ShouldRunAction
	// SetReporter attaches a progress reporter. A nil reporter disables
	// progress events.
	SetReporter(reporter progress.Reporter)
}

// PreviousTaskStatus holds the outcome of the preceding task in a serial
// group. ShouldRun implementations gate on it.
type PreviousTaskStatus struct {
	// Status is the result status of the previous task.
	Status ResultStatus
	// ExitCode is the exit code of the previous task.
	ExitCode int
	// Err is the error from the previous task, if any.
	Err error
}

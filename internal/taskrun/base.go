// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"errors"
	"maps"
	"path/filepath"
	"slices"

	"github.com/halvfigur/snyke/internal/progress"
)

// BaseTask carries the state shared by every task and group type. It is
// embedded by the concrete implementations and provides the common parts
// of the Runnable interface.
type BaseTask struct {
	Label           string            // Optional label for the task
	Cwd             string            // The working directory for the task
	RunsOnCondition RunCondition      // The condition under which the task runs
	RunsOnExitCodes []int             // Specific exit codes that trigger the task to run
	Env             map[string]string // Environment variables passed to the task
	parent          Runnable
	reporter        progress.Reporter
}

// NewBaseTask creates a BaseTask with the given parameters. A nil
// runOnExitCodes defaults to exit code 0.
func NewBaseTask(label, cwd string, runsOn RunCondition, runOnExitCodes []int, env map[string]string) *BaseTask {
	if runOnExitCodes == nil {
		runOnExitCodes = []int{0}
	}

	if env == nil {
		env = make(map[string]string)
	}

	return &BaseTask{
		Label:           label,
		Cwd:             cwd,
		RunsOnCondition: runsOn,
		RunsOnExitCodes: runOnExitCodes,
		Env:             env,
	}
}

// GetLabel returns the label of the task.
func (t *BaseTask) GetLabel() string {
	if t.Label == "" {
		return "Task"
	}

	return t.Label
}

// GetParent returns the parent group, or nil for the root.
func (t *BaseTask) GetParent() Runnable {
	return t.parent
}

// SetParent sets the parent group.
func (t *BaseTask) SetParent(parent Runnable) {
	t.parent = parent
}

// SetReporter attaches a progress reporter to the task.
func (t *BaseTask) SetReporter(reporter progress.Reporter) {
	t.reporter = reporter
}

// SetCwd resolves the task's working directory against base. An empty
// base leaves the task untouched. An absolute directory already set on
// the task is preserved; a relative one is joined with base.
func (t *BaseTask) SetCwd(base string) error {
	if base == "" {
		return nil
	}

	switch {
	case t.Cwd == "":
		t.Cwd = base
	case filepath.IsAbs(t.Cwd):
		// Explicit absolute directories win over inherited ones.
	default:
		t.Cwd = filepath.Join(base, t.Cwd)
	}

	return nil
}

// InheritEnv adds environment variables to the task without overwriting
// any that are already set.
func (t *BaseTask) InheritEnv(env map[string]string) {
	if len(t.Env) == 0 {
		t.Env = maps.Clone(env)
		return
	}

	for k, v := range maps.All(env) {
		if _, ok := t.Env[k]; !ok {
			t.Env[k] = v
		}
	}
}

// ShouldRun gates the task on the outcome of the preceding task.
func (t *BaseTask) ShouldRun(prev PreviousTaskStatus) ShouldRunAction {
	switch t.RunsOnCondition {
	case RunOnAlways:
		return ShouldRunActionRun
	case RunOnSuccess:
		if prev.Status != ResultStatusSuccess {
			return ShouldRunActionError
		}

		if errors.Is(prev.Err, ErrSkipIntentional) {
			return ShouldRunActionSkip
		}

		return ShouldRunActionRun
	case RunOnExitCodes:
		if !slices.Contains(t.RunsOnExitCodes, prev.ExitCode) {
			return ShouldRunActionSkip
		}

		return ShouldRunActionRun
	case RunOnError:
		if prev.Status != ResultStatusError {
			return ShouldRunActionError
		}

		return ShouldRunActionRun
	}

	return ShouldRunActionRun
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"errors"
)

var (
	// ErrSkipIntentional marks a task that chose to skip the remainder of
	// its group.
	ErrSkipIntentional = errors.New("intentionally skip execution")
	// ErrSkipOnError marks a task that did not run because an earlier
	// task failed.
	ErrSkipOnError = errors.New("skip execution due to previous error")
)

// ShouldRunAction is the decision produced by a task's pre-run check.
type ShouldRunAction int

const (
	// ShouldRunActionRun means run the task.
	ShouldRunActionRun ShouldRunAction = iota
	// ShouldRunActionSkip means skip the task.
	ShouldRunActionSkip
	// ShouldRunActionError means the task cannot run because its run
	// condition was not met.
	ShouldRunActionError
)

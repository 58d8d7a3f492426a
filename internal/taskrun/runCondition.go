// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"errors"
)

// RunCondition defines when a task runs based on the outcome of the
// preceding task in a serial group.
type RunCondition int

const (
	// RunOnSuccess runs the task only if the previous task succeeded.
	RunOnSuccess RunCondition = iota
	// RunOnError runs the task only if the previous task failed.
	RunOnError
	// RunOnAlways runs the task regardless of the previous outcome.
	RunOnAlways
	// RunOnExitCodes runs the task only if the previous exit code matches
	// one of the configured codes.
	RunOnExitCodes
)

const (
	runOnSuccessStr   = "success"
	runOnErrorStr     = "error"
	runOnAlwaysStr    = "always"
	runOnExitCodesStr = "exit-codes"
	runOnUnknownStr   = "unknown"
)

// ErrRunConditionUnknown is returned when an unknown RunCondition value
// is encountered.
var ErrRunConditionUnknown = errors.New("unknown RunCondition value")

// String returns the string representation of the RunCondition.
func (r RunCondition) String() string {
	switch r {
	case RunOnSuccess:
		return runOnSuccessStr
	case RunOnError:
		return runOnErrorStr
	case RunOnAlways:
		return runOnAlwaysStr
	case RunOnExitCodes:
		return runOnExitCodesStr
	default:
		return runOnUnknownStr
	}
}

// NewRunCondition parses a RunCondition from its string form.
func NewRunCondition(s string) (RunCondition, error) {
	switch s {
	case runOnSuccessStr:
		return RunOnSuccess, nil
	case runOnErrorStr:
		return RunOnError, nil
	case runOnAlwaysStr:
		return RunOnAlways, nil
	case runOnExitCodesStr:
		return RunOnExitCodes, nil
	default:
		return RunCondition(-1), ErrRunConditionUnknown
	}
}

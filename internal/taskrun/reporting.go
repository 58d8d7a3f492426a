// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/progress"
)

// ReportGroupStarted reports that a group has started.
// A nil reporter makes this a no-op.
func ReportGroupStarted(reporter progress.Reporter, label, groupType string) {
	if reporter == nil {
		return
	}

	reporter.Report(progress.Event{
		TaskPath:  []string{label},
		Type:      progress.EventStarted,
		Message:   fmt.Sprintf("Starting %s group", groupType),
		Timestamp: time.Now(),
	})
}

// ReportTaskStarted reports that a task has started.
// A nil reporter makes this a no-op.
func ReportTaskStarted(reporter progress.Reporter, label string) {
	if reporter == nil {
		return
	}

	reporter.Report(progress.Event{
		TaskPath:  []string{label},
		Type:      progress.EventStarted,
		Message:   fmt.Sprintf("Starting %s", label),
		Timestamp: time.Now(),
	})
}

// ReportTaskProgress reports an in-flight status message for a task,
// optionally carrying the most recent line of its output.
// A nil reporter makes this a no-op.
func ReportTaskProgress(reporter progress.Reporter, label, message, outputLine string) {
	if reporter == nil {
		return
	}

	reporter.Report(progress.Event{
		TaskPath:  []string{label},
		Type:      progress.EventProgress,
		Message:   message,
		Timestamp: time.Now(),
		Data: progress.EventData{
			OutputLine:      outputLine,
			ProgressMessage: message,
		},
	})
}

// ReportTaskSkipped reports that a task was skipped, with the reason.
// A nil reporter makes this a no-op.
func ReportTaskSkipped(reporter progress.Reporter, label string, reason error) {
	if reporter == nil {
		return
	}

	reporter.Report(progress.Event{
		TaskPath:  []string{label},
		Type:      progress.EventSkipped,
		Message:   fmt.Sprintf("Skipped %s", label),
		Timestamp: time.Now(),
		Data: progress.EventData{
			Error: reason,
		},
	})
}

// ReportExecutionComplete reports completion of a task or group from its
// results, distinguishing success, failure and intentional skip.
// A nil reporter makes this a no-op.
func ReportExecutionComplete(
	ctx context.Context,
	reporter progress.Reporter,
	label string,
	results Results,
	successMsg, failureMsg string,
) {
	if reporter == nil {
		return
	}

	taskPath := []string{label}

	if len(results) > 0 && errors.Is(results[0].Error, ErrSkipIntentional) {
		reporter.Report(progress.Event{
			TaskPath:  taskPath,
			Type:      progress.EventSkipped,
			Message:   fmt.Sprintf("Skipped %s", label),
			Timestamp: time.Now(),
			Data: progress.EventData{
				Error: results[0].Error,
			},
		})

		return
	}

	if results.HasError() {
		exitCode := -1
		err := ErrChildTasksFailed
		outputLine := ""

		if len(results) > 0 {
			exitCode = results[0].ExitCode
			err = results[0].Error
			firstErrLine, _, _ := strings.Cut(string(results[0].StdErr), "\n")

			if firstErrLine != "" {
				outputLine = firstErrLine
			}
		}

		ctxlog.Debug(ctx, "reporting failed task",
			"label", label,
			"exitCode", exitCode,
			"resultsLength", len(results))

		reporter.Report(progress.Event{
			TaskPath:  taskPath,
			Type:      progress.EventFailed,
			Message:   failureMsg,
			Timestamp: time.Now(),
			Data: progress.EventData{
				ExitCode:   exitCode,
				Error:      err,
				IsStderr:   true,
				OutputLine: outputLine,
			},
		})

		return
	}

	var exitCode int
	if len(results) > 0 {
		exitCode = results[0].ExitCode
	}

	reporter.Report(progress.Event{
		TaskPath:  taskPath,
		Type:      progress.EventCompleted,
		Message:   successMsg,
		Timestamp: time.Now(),
		Data: progress.EventData{
			ExitCode: exitCode,
		},
	})
}

// ChildReporter prefixes event task paths with the labels of the
// enclosing groups, producing full paths for nested trees.
type ChildReporter struct {
	parent progress.Reporter
	prefix []string
}

// NewChildReporter creates a ChildReporter with the given path prefix.
func NewChildReporter(parent progress.Reporter, prefix []string) *ChildReporter {
	return &ChildReporter{
		parent: parent,
		prefix: prefix,
	}
}

// Report implements progress.Reporter by prepending the prefix to the
// event's task path.
func (cr *ChildReporter) Report(event progress.Event) {
	if len(event.TaskPath) > 0 {
		fullPath := make([]string, 0, len(cr.prefix)+len(event.TaskPath))
		fullPath = append(fullPath, cr.prefix...)
		fullPath = append(fullPath, event.TaskPath...)
		event.TaskPath = fullPath
	} else {
		event.TaskPath = cr.prefix
	}

	cr.parent.Report(event)
}

// Close implements progress.Reporter. The parent reporter is left open
// as it may be shared with other children.
func (cr *ChildReporter) Close() {}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"context"
	"slices"

	"github.com/halvfigur/snyke/internal/progress"
)

var _ Runnable = (*SerialGroup)(nil)

// SerialGroup runs its tasks one after another. Each task is gated on
// the outcome of its predecessor through its run condition, and a task
// that changes the working directory changes it for the tasks that
// follow.
type SerialGroup struct {
	*BaseTask
	Tasks []Runnable // The tasks or nested groups to run
}

// Run implements the Runnable interface for SerialGroup.
func (g *SerialGroup) Run(ctx context.Context) Results {
	ReportGroupStarted(g.reporter, g.Label, "serial")

	var childRep progress.Reporter
	if g.reporter != nil {
		childRep = NewChildReporter(g.reporter, []string{g.Label})
		for _, task := range g.Tasks {
			task.SetReporter(childRep)
		}
	}

	results := make(Results, 0, len(g.Tasks))
	newCwd := ""

	prev := PreviousTaskStatus{
		Status:   ResultStatusSuccess,
		ExitCode: 0,
		Err:      nil,
	}

OuterLoop:
	for i, task := range slices.All(g.Tasks) {
		select {
		case <-ctx.Done():
			break OuterLoop
		default:
			// Inherit env and cwd from the group if not already set.
			task.InheritEnv(g.Env)

			if err := task.SetCwd(g.Cwd); err != nil {
				results = append(results, &Result{
					Label:  task.GetLabel(),
					Status: ResultStatusError,
					Error:  err,
				})

				continue OuterLoop
			}

			switch task.ShouldRun(prev) {
			case ShouldRunActionSkip:
				ReportTaskSkipped(childRep, task.GetLabel(), ErrSkipIntentional)
				results = append(results, &Result{
					Label:  task.GetLabel(),
					Status: ResultStatusSkipped,
					Error:  ErrSkipIntentional,
				})

				continue OuterLoop
			case ShouldRunActionError:
				ReportTaskSkipped(childRep, task.GetLabel(), ErrSkipOnError)
				results = append(results, &Result{
					Label:  task.GetLabel(),
					Status: ResultStatusSkipped,
					Error:  ErrSkipOnError,
				})

				continue OuterLoop
			case ShouldRunActionRun:
			}

			childResults := task.Run(ctx)

			prev.Status = childResults[0].Status
			prev.ExitCode = childResults[0].ExitCode
			prev.Err = childResults[0].Error

			newCwd = childResults[0].newCwd

			if newCwd != "" && i < len(g.Tasks)-1 {
				// The new working directory applies to the remaining
				// tasks in this group.
				for rest := range slices.Values(g.Tasks[i+1:]) {
					if err := rest.SetCwd(newCwd); err != nil {
						results = append(results, &Result{
							Label:  rest.GetLabel(),
							Status: ResultStatusError,
							Error:  err,
						})

						continue OuterLoop
					}
				}
			}

			results = slices.Concat(results, childResults)
		}
	}

	res := Results{&Result{
		Label:    g.Label,
		Children: results,
		Status:   ResultStatusSuccess,
	}}
	if results.HasError() {
		res[0].ExitCode = -1
		res[0].Error = ErrChildTasksFailed
		res[0].Status = ResultStatusError
	}

	ReportExecutionComplete(ctx, g.reporter, g.Label, res,
		"Serial group completed", "Serial group failed")

	return res
}

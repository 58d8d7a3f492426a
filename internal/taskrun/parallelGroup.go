// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"context"
	"slices"
	"sync"

	"github.com/halvfigur/snyke/internal/ctxlog"
)

var _ Runnable = (*ParallelGroup)(nil)

// ParallelGroup runs all its tasks concurrently. Run conditions do not
// apply between siblings; every task starts regardless of the others.
type ParallelGroup struct {
	*BaseTask
	Tasks []Runnable // The tasks or nested groups to run
}

// Run implements the Runnable interface for ParallelGroup.
func (g *ParallelGroup) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).
		With("label", FullLabel(g)).
		With("runnableType", "ParallelGroup")

	ReportGroupStarted(g.reporter, g.Label, "parallel")

	if g.reporter != nil {
		childRep := NewChildReporter(g.reporter, []string{g.Label})
		for _, task := range g.Tasks {
			task.SetReporter(childRep)
		}
	}

	for _, task := range g.Tasks {
		task.InheritEnv(g.Env)

		logger.Debug("setting environment for child tasks",
			"taskLabel", task.GetLabel(),
			"env", g.Env)
	}

	children := make(Results, 0, len(g.Tasks))
	wg := &sync.WaitGroup{}
	resChan := make(chan Results, len(g.Tasks))

	for _, task := range g.Tasks {
		wg.Add(1)

		go func(r Runnable) {
			defer wg.Done()

			resChan <- r.Run(ctx)
		}(task)
	}

	wg.Wait()
	close(resChan)

	for r := range resChan {
		children = slices.Concat(children, r)
	}

	res := Results{&Result{
		Label:    g.Label,
		Children: children,
		Status:   ResultStatusSuccess,
	}}
	if children.HasError() {
		res[0].ExitCode = -1
		res[0].Error = ErrChildTasksFailed
		res[0].Status = ResultStatusError
	}

	ReportExecutionComplete(ctx, g.reporter, g.Label, res,
		"Parallel group completed", "Parallel group failed")

	return res
}

// SetCwd resolves the working directory for the group and all its tasks.
func (g *ParallelGroup) SetCwd(base string) error {
	if err := g.BaseTask.SetCwd(base); err != nil {
		return err
	}

	for _, task := range g.Tasks {
		if err := task.SetCwd(g.Cwd); err != nil {
			return err
		}
	}

	return nil
}

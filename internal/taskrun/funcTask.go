// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"context"
	"errors"
	"fmt"

	"github.com/halvfigur/snyke/internal/ctxlog"
)

var _ Runnable = (*FuncTask)(nil)

// ErrFuncTaskPanic is the error returned when a function task panics.
// It is constructed with the value that caused the panic.
type ErrFuncTaskPanic struct {
	v any
}

// Error implements the error interface for ErrFuncTaskPanic.
func (e *ErrFuncTaskPanic) Error() string {
	const prefix = "function task panic:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

// NewErrFuncTaskPanic creates an ErrFuncTaskPanic with the given value.
func NewErrFuncTaskPanic(v any) error {
	return &ErrFuncTaskPanic{v: v}
}

// FuncTask runs an in-process Go function as a task.
type FuncTask struct {
	*BaseTask
	Func TaskFunc // The function to run
}

// TaskFunc is the function signature run by FuncTask. It receives the
// task's working directory and optional arguments.
type TaskFunc func(ctx context.Context, workingDirectory string, args ...string) TaskFuncReturn

// TaskFuncReturn is the outcome of a TaskFunc.
type TaskFuncReturn struct {
	NewCwd string // The new working directory, if changed
	Err    error  // Any error that occurred during execution
}

// Run implements the Runnable interface for FuncTask.
func (t *FuncTask) Run(ctx context.Context) Results {
	fullLabel := FullLabel(t)
	logger := ctxlog.Logger(ctx).
		With("runnableType", "FuncTask").
		With("label", fullLabel)

	if t.Func == nil {
		logger.Debug("no function to run, returning success")

		return Results{{Label: t.Label, Status: ResultStatusSuccess}}
	}

	ReportTaskStarted(t.reporter, t.GetLabel())

	// frCh is buffered and never closed so a late send after cancellation
	// can neither block nor panic.
	frCh := make(chan TaskFuncReturn, 1)

	done := make(chan struct{})
	defer close(done)

	go func() {
		// Convert panics into errors rather than taking the whole run down.
		defer func() {
			if r := recover(); r != nil {
				logger.Error("function task panicked", "panic", r)

				select {
				case <-done:
					logger.Debug("function task done, dropping panic result")
				default:
					frCh <- TaskFuncReturn{Err: NewErrFuncTaskPanic(r)}
				}
			}
		}()

		logger.Info(fmt.Sprintf("Executing: %s", fullLabel))

		fr := t.Func(ctx, t.Cwd)

		logger.Debug("function task completed", "resultErr", fr.Err, "newCwd", fr.NewCwd)

		select {
		case <-done:
			logger.Debug("function task done, dropping result")
		default:
			frCh <- fr
		}
	}()

	res := &Result{
		Label:  t.Label,
		Status: ResultStatusSuccess,
	}

	select {
	case fr := <-frCh:
		if fr.Err != nil {
			failed := &Result{
				Label:    t.Label,
				ExitCode: -1,
				Error:    fr.Err,
				Status:   ResultStatusError,
			}

			if errors.Is(fr.Err, ErrSkipIntentional) {
				failed.ExitCode = 0
				failed.Status = ResultStatusSuccess
			}

			ReportExecutionComplete(ctx, t.reporter, t.GetLabel(), Results{failed},
				fmt.Sprintf("Completed %s", t.GetLabel()),
				fmt.Sprintf("Failed %s", t.GetLabel()))

			return Results{failed}
		}

		if fr.NewCwd != "" {
			res.newCwd = fr.NewCwd
		}

	case <-ctx.Done():
		logger.Debug("function task context cancelled", "error", ctx.Err())

		failed := &Result{
			Label:    t.Label,
			ExitCode: -1,
			Error:    ctx.Err(),
			Status:   ResultStatusError,
		}

		ReportExecutionComplete(ctx, t.reporter, t.GetLabel(), Results{failed},
			"", fmt.Sprintf("Cancelled %s", t.GetLabel()))

		return Results{failed}
	}

	logger.Debug("function task completed successfully", "newCwd", res.newCwd)

	ReportExecutionComplete(ctx, t.reporter, t.GetLabel(), Results{res},
		fmt.Sprintf("Completed %s", t.GetLabel()),
		fmt.Sprintf("Failed %s", t.GetLabel()))

	return Results{res}
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasktui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halvfigur/snyke/internal/progress"
	"github.com/halvfigur/snyke/internal/taskrun"
)

// Runner manages the TUI application and progress event integration.
type Runner struct {
	model    *Model
	program  *tea.Program
	reporter *Reporter
	mutex    sync.Mutex
}

// Reporter implements progress.Reporter and forwards events to the TUI.
type Reporter struct {
	program *tea.Program
	closed  bool
	mutex   sync.RWMutex
}

// NewReporter creates a progress reporter feeding the given program.
func NewReporter(program *tea.Program) *Reporter {
	return &Reporter{
		program: program,
	}
}

// Report implements progress.Reporter.
func (r *Reporter) Report(event progress.Event) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.closed || r.program == nil {
		return
	}

	r.program.Send(ProgressEventMsg{Event: event})
}

// Close implements progress.Reporter.
func (r *Reporter) Close() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.closed = true
}

// NewRunner creates a new TUI runner.
func NewRunner(ctx context.Context) *Runner {
	model := NewModel(ctx)
	program := tea.NewProgram(model, tea.WithAltScreen())
	reporter := NewReporter(program)

	return &Runner{
		model:    model,
		program:  program,
		reporter: reporter,
	}
}

// GetReporter returns the progress reporter for this TUI runner.
func (r *Runner) GetReporter() progress.Reporter {
	return r.reporter
}

// Run starts the TUI and executes the given runnable under it. It blocks
// until the user exits the interface, then returns the run results.
func (r *Runner) Run(ctx context.Context, runnable taskrun.Runnable) (taskrun.Results, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	runnable.SetReporter(r.reporter)

	resultChan := make(chan taskrun.Results, 1)

	go func() {
		defer close(resultChan)

		resultChan <- runnable.Run(ctx)
	}()

	tuiDone := make(chan error, 1)

	go func() {
		_, err := r.program.Run()
		tuiDone <- err
	}()

	var result taskrun.Results

	var tuiErr error

	select {
	case result = <-resultChan:
		// The run finished. Tell the TUI and keep it on screen until the
		// user dismisses it.
		r.program.Send(RunCompletedMsg{Results: result})

		tuiErr = <-tuiDone

		r.reporter.Close()

	case err := <-tuiDone:
		// The user left the TUI while tasks were still running.
		tuiErr = err

		r.reporter.Close()

		select {
		case result = <-resultChan:
		case <-ctx.Done():
			if result == nil {
				result = taskrun.Results{&taskrun.Result{
					Error: ctx.Err(),
				}}
			}
		}

	case <-ctx.Done():
		r.reporter.Close()
		r.program.Quit()

		select {
		case result = <-resultChan:
		default:
			result = taskrun.Results{&taskrun.Result{
				Error: ctx.Err(),
			}}
		}

		<-tuiDone
	}

	return result, tuiErr
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/linetail"
	"github.com/halvfigur/snyke/internal/signalbroker"
)

const (
	maxBufferSize   = 8 * 1024 * 1024  // 8MB cap on captured output per stream
	tickerInterval  = 10 * time.Second // Interval for the process watchdog ticker
	progressLineMax = 120              // Max length of the output line in progress events
	outputFileMode  = 0o644
)

var _ Runnable = (*OSTask)(nil)

var (
	// ErrBufferOverflow is returned when the output exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToReadBuffer is returned when the operating system pipe could not be read.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrTimeoutExceeded is returned when the task exceeds the context deadline.
	ErrTimeoutExceeded = errors.New("timeout exceeded")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrSignalReceived is returned when an operating system signal is relayed to the child process.
	ErrSignalReceived = errors.New("signal received")
	// ErrDuplicateSignalReceived is returned when a duplicate signal forces process termination.
	ErrDuplicateSignalReceived = errors.New("duplicate signal received, process forcefully terminated")
	// ErrWriteOutputFile is returned when captured stdout could not be written to the output file.
	ErrWriteOutputFile = errors.New("failed to write output file")
)

// OSTask runs a single operating system process.
type OSTask struct {
	*BaseTask
	Args             []string       // Arguments to the command, not including the executable itself.
	Path             string         // The executable to run, as a full path.
	SuccessExitCodes []int          // Exit codes that indicate success, defaults to 0.
	SkipExitCodes    []int          // Exit codes that skip the remaining tasks in the group.
	OutputFile       string         // When set, captured stdout is written here on success.
	sigCh            chan os.Signal // Channel to receive signals, allows mocking in tests.
}

// Run implements the Runnable interface for OSTask.
func (t *OSTask) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).
		With("runnableType", "OSTask").
		With("label", t.Label)

	logger.Debug("task info", "path", t.Path, "cwd", t.Cwd, "args", t.Args)

	if t.SuccessExitCodes == nil {
		t.SuccessExitCodes = []int{0}
	}

	if t.SkipExitCodes == nil {
		t.SkipExitCodes = []int{}
	}

	if t.sigCh == nil {
		t.sigCh = signalbroker.New(ctx)
	}

	res := &Result{
		Label:    t.Label,
		ExitCode: 0,
	}

	env := os.Environ()

	for k, v := range t.Env {
		logger.Debug("adding environment variable", "key", k, "value", v)
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		res.Error = errors.Join(ErrFailedToCreatePipe, err)
		res.ExitCode = -1
		res.Status = ResultStatusError

		return Results{res}
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)

		res.Error = errors.Join(ErrFailedToCreatePipe, err)
		res.ExitCode = -1
		res.Status = ResultStatusError

		return Results{res}
	}

	execName := filepath.Base(t.Path)
	args := slices.Concat([]string{execName}, t.Args)

	fullLabel := FullLabel(t)
	startTime := time.Now()

	ReportTaskStarted(t.reporter, t.GetLabel())

	if t.reporter == nil {
		fmt.Printf("Starting %s: at %s\n", fullLabel, startTime.Format(ctxlog.TimeFormat))
	}

	logger.Debug("starting process")

	ps, err := os.StartProcess(t.Path, args, &os.ProcAttr{
		Dir:   t.Cwd,
		Env:   env,
		Files: []*os.File{os.Stdin, wOut, wErr},
	})
	if err != nil {
		closeAll(rOut, wOut, rErr, wErr)

		res.Error = errors.Join(ErrCouldNotStartProcess, err)
		res.ExitCode = -1
		res.Status = ResultStatusError

		ReportExecutionComplete(ctx, t.reporter, t.GetLabel(), Results{res},
			"", fmt.Sprintf("Could not start %s", t.GetLabel()))

		return Results{res}
	}

	logger.Debug("process started", "pid", ps.Pid)

	// Drain both pipes while the process runs. Waiting for exit before
	// reading would stall any child that fills the pipe buffer.
	outTail := linetail.New(rOut)
	outCh := make(chan pipeCapture, 1)

	go drainPipe(ctx, outTail, rOut, outCh)

	errTail := linetail.New(rErr)
	errCh := make(chan pipeCapture, 1)

	go drainPipe(ctx, errTail, rErr, errCh)

	// The watchdog kills the process when the context ends and relays
	// any received signals, forcing termination on a duplicate.
	done := make(chan struct{})
	// Tracks why the process was killed. Buffered so the watchdog's send
	// cannot race the shutdown; the channel is never closed.
	wasKilled := make(chan error, 1)

	go func() {
		signalCount := make(map[os.Signal]struct{})

		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				elapsed := time.Since(startTime).Round(time.Second)

				if t.reporter != nil {
					ReportTaskProgress(t.reporter, t.GetLabel(),
						fmt.Sprintf("running [%s]", elapsed),
						outTail.LastLine(progressLineMax))

					continue
				}

				fmt.Printf("Running %s: [%s]...\n", fullLabel, elapsed)

			case s := <-t.sigCh:
				// Second signal of the same type forces termination.
				if _, ok := signalCount[s]; ok {
					logger.Info("received duplicate signal, killing process", "signal", s.String())
					fmt.Fprintf(wErr, "received duplicate signal, killing process: %s\n", s.String()) //nolint:errcheck
					killPs(ctx, ps)

					select {
					case wasKilled <- ErrDuplicateSignalReceived:
					case <-done:
					}

					return
				}

				signalCount[s] = struct{}{}

				logger.Info("received signal", "signal", s.String())
				fmt.Fprintf(wErr, "received signal: %s\n", s.String()) //nolint:errcheck

				if err := ps.Signal(s); err != nil {
					logger.Info("failed to send signal", "signal", s.String(), "error", err)
				}

				select {
				case wasKilled <- ErrSignalReceived:
				case <-done:
				}

			case <-ctx.Done():
				logger.Info("context done, killing process")
				fmt.Fprintln(wErr, "context done, killing process") //nolint:errcheck
				killPs(ctx, ps)

				select {
				case wasKilled <- ErrTimeoutExceeded:
				case <-done:
				}

				return

			case <-done:
				return
			}
		}
	}()

	logger.Debug("waiting for process to finish")

	state, psErr := ps.Wait()

	if t.reporter == nil {
		fmt.Printf("Finished %s: at %s\n", fullLabel, time.Now().Format(ctxlog.TimeFormat))
	}

	_ = wOut.Close()
	_ = wErr.Close()

	res.ExitCode = state.ExitCode()
	res.Error = psErr
	res.Status = ResultStatusUnknown

	logger.Debug("process finished", "exitCode", res.ExitCode)

	select {
	case e := <-wasKilled:
		res.Error = errors.Join(res.Error, e)
		res.ExitCode = -1
		res.Status = ResultStatusError
	default:
		// No watchdog intervention, the process completed on its own.
	}

	close(done)

	switch {
	case res.Status == ResultStatusError:
		// Already classified by the watchdog.
	case slices.Contains(t.SuccessExitCodes, res.ExitCode) && res.Error == nil:
		logger.Debug("process exit code indicates success", "exitCode", res.ExitCode)

		res.Status = ResultStatusSuccess
	case slices.Contains(t.SkipExitCodes, res.ExitCode) && res.Error == nil:
		logger.Debug("process exit code indicates skip remaining tasks", "exitCode", res.ExitCode)

		res.Error = ErrSkipIntentional
		res.Status = ResultStatusSuccess
	case res.Error != nil || !slices.Contains(t.SuccessExitCodes, res.ExitCode):
		// A non-zero exit code does not produce an error from Wait, so
		// this has to be an OR.
		logger.Debug("process error", "error", res.Error, "exitCode", res.ExitCode)

		if res.ExitCode == 0 {
			res.ExitCode = -1
		}

		res.Status = ResultStatusError
	}

	outCap := <-outCh

	logger.Debug("stdout length", "bytes", len(outCap.data), "maxBytes", maxBufferSize)

	res.StdOut = outCap.data
	if outCap.err != nil {
		res.Error = errors.Join(res.Error, outCap.err)
		res.ExitCode = -1
		res.Status = ResultStatusError
	}

	errCap := <-errCh

	logger.Debug("stderr length", "bytes", len(errCap.data), "maxBytes", maxBufferSize)

	res.StdErr = errCap.data
	if errCap.err != nil {
		res.Error = errors.Join(res.Error, errCap.err)
		res.ExitCode = -1
		res.Status = ResultStatusError
	}

	_ = rOut.Close()
	_ = rErr.Close()

	if t.OutputFile != "" && res.Status == ResultStatusSuccess {
		if err := t.writeOutputFile(res.StdOut); err != nil {
			res.Error = errors.Join(res.Error, err)
			res.ExitCode = -1
			res.Status = ResultStatusError
		}
	}

	ReportExecutionComplete(ctx, t.reporter, t.GetLabel(), Results{res},
		fmt.Sprintf("Completed %s", t.GetLabel()),
		fmt.Sprintf("Failed %s", t.GetLabel()))

	return Results{res}
}

// writeOutputFile writes captured stdout to the configured file,
// resolving a relative path against the task's working directory.
func (t *OSTask) writeOutputFile(data []byte) error {
	path := t.OutputFile
	if !filepath.IsAbs(path) && t.Cwd != "" {
		path = filepath.Join(t.Cwd, path)
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return errors.Join(ErrWriteOutputFile, err)
	}

	return nil
}

type pipeCapture struct {
	data []byte
	err  error
}

// drainPipe captures up to maxBufferSize bytes through the line tracker
// and keeps draining the raw pipe on overflow so the child process never
// blocks on a full pipe buffer.
func drainPipe(ctx context.Context, tail *linetail.Reader, raw *os.File, ch chan<- pipeCapture) {
	data, err := readAllUpToMax(ctx, tail, maxBufferSize)
	if errors.Is(err, ErrBufferOverflow) {
		_, _ = io.Copy(io.Discard, raw)
	}

	ch <- pipeCapture{data: data, err: err}
}

func readAllUpToMax(ctx context.Context, r io.Reader, maxBufferSize int64) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, maxBufferSize+1)
	if err != nil && err != io.EOF {
		return nil, errors.Join(ErrFailedToReadBuffer, err)
	}

	if n > maxBufferSize {
		ctxlog.Logger(ctx).Debug(
			"buffer overflow in readAllUpToMax",
			"bytesRead", n,
			"maxBytes", maxBufferSize,
		)

		return buf.Bytes()[:maxBufferSize], ErrBufferOverflow
	}

	return buf.Bytes(), nil
}

// killPs kills the process, tolerating one that has already exited.
func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Logger(ctx).Debug("process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Logger(ctx).Error("process kill error", "pid", ps.Pid, "error", err)
	}

	ctxlog.Logger(ctx).Info("process killed", "pid", ps.Pid)
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

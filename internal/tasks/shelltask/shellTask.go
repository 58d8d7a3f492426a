// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shelltask provides a task type that runs a command line through the
// system shell.
package shelltask

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/taskrun"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows          = "windows"
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for Unix-like shells
	winSystem32          = "System32"   // System32 is the directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // cmdExe is the name of the command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Default shell for Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
)

var (
	// ErrCommandNotFound is returned when the command line is empty.
	ErrCommandNotFound = errors.New("command not found")
)

// New creates a new taskrun.OSTask that runs commandLine through the system
// shell ($SHELL, falling back to /bin/sh; cmd.exe on Windows). When
// outputFile is set the task's captured stdout is written there on success.
func New(
	ctx context.Context,
	base *taskrun.BaseTask,
	commandLine string,
	successExitCodes []int,
	skipExitCodes []int,
	outputFile string,
) (*taskrun.OSTask, error) {
	if commandLine == "" {
		return nil, ErrCommandNotFound
	}

	var osTaskArgs []string

	switch runtime.GOOS {
	case GOOSWindows:
		osTaskArgs = []string{commandSwitchWindows, commandLine}
	default:
		osTaskArgs = []string{commandSwitchUnix, commandLine}
	}

	return &taskrun.OSTask{
		BaseTask:         base,
		Path:             defaultShell(ctx),
		Args:             osTaskArgs,
		SuccessExitCodes: successExitCodes,
		SkipExitCodes:    skipExitCodes,
		OutputFile:       outputFile,
	}, nil
}

func defaultShell(ctx context.Context) string {
	if runtime.GOOS == GOOSWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "Using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}

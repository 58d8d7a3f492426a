// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResults_SimpleSuccess(t *testing.T) {
	results := Results{
		{
			Label:    "simple-task",
			ExitCode: 0,
			Status:   ResultStatusSuccess,
			StdOut:   []byte("success output"),
		},
	}

	var buf bytes.Buffer

	opts := &OutputOptions{
		IncludeStdOut:      true,
		IncludeStdErr:      true,
		ColorOutput:        false,
		ShowSuccessDetails: true,
	}

	err := WriteResults(&buf, results, opts)
	assert.NoError(t, err)

	output := buf.String()

	assert.Contains(t, output, "✓ simple-task")
	assert.Contains(t, output, "success output")
}

func TestWriteResults_SimpleFailure(t *testing.T) {
	results := Results{
		{
			Label:    "failed-task",
			ExitCode: 1,
			Status:   ResultStatusError,
			Error:    errors.New("command failed"),
			StdErr:   []byte("error details"),
		},
	}

	var buf bytes.Buffer

	opts := &OutputOptions{
		IncludeStdOut: false,
		IncludeStdErr: true,
		ColorOutput:   false,
	}

	err := WriteResults(&buf, results, opts)
	assert.NoError(t, err)

	output := buf.String()

	assert.Contains(t, output, "✗ failed-task")
	assert.Contains(t, output, "(exit code: 1)")
	assert.Contains(t, output, "➜ Error: command failed")
	assert.Contains(t, output, "error details")
}

func TestWriteResults_SkippedTask(t *testing.T) {
	results := Results{
		{
			Label:  "skipped-task",
			Status: ResultStatusSkipped,
			Error:  ErrSkipOnError,
		},
	}

	var buf bytes.Buffer

	err := WriteResults(&buf, results, &OutputOptions{ColorOutput: false})
	assert.NoError(t, err)

	output := buf.String()

	assert.Contains(t, output, "~ skipped-task")
	assert.Contains(t, output, ErrSkipOnError.Error())
}

func TestWriteResults_HierarchicalResults(t *testing.T) {
	childResults := Results{
		{
			Label:    "child-success",
			ExitCode: 0,
			Status:   ResultStatusSuccess,
			StdOut:   []byte("child success output"),
		},
		{
			Label:    "child-failure",
			ExitCode: 2,
			Status:   ResultStatusError,
			Error:    errors.New("child command failed"),
			StdErr:   []byte("child error details"),
		},
	}

	results := Results{
		{
			Label:    "parent-group",
			ExitCode: -1,
			Status:   ResultStatusError,
			Error:    ErrChildTasksFailed,
			Children: childResults,
		},
	}

	var buf bytes.Buffer

	opts := &OutputOptions{
		IncludeStdOut: true,
		IncludeStdErr: true,
		ColorOutput:   false,
	}

	err := WriteResults(&buf, results, opts)
	assert.NoError(t, err)

	output := buf.String()

	assert.Contains(t, output, "✗ parent-group")

	// The aggregate error is implied by the children and not repeated.
	assert.NotContains(t, output, ErrChildTasksFailed.Error())

	assert.Contains(t, output, "  ✓ child-success")
	assert.Contains(t, output, "  ✗ child-failure")
	assert.Contains(t, output, "  ➜ Error: child command failed")
	assert.Contains(t, output, "child error details")
}

func TestWriteResults_DefaultOptions(t *testing.T) {
	results := Results{
		{
			Label:    "default-options",
			ExitCode: 0,
			Status:   ResultStatusSuccess,
			StdOut:   []byte("standard output"),
			StdErr:   []byte("error output"),
		},
	}

	var buf bytes.Buffer
	err := WriteResults(&buf, results, nil)
	assert.NoError(t, err)

	// Default options exclude stdout and hide details for successful tasks.
	output := buf.String()
	assert.NotContains(t, output, "standard output")
	assert.NotContains(t, output, "error output")
}

func TestWriteResults_StdErrFormatting(t *testing.T) {
	results := Results{
		{
			Label:    "multiline-stderr",
			ExitCode: 1,
			Status:   ResultStatusError,
			Error:    errors.New("command failed"),
			StdErr:   []byte("Error line 1\nError line 2\nError line 3\n  Indented error line"),
		},
	}

	var buf bytes.Buffer

	opts := &OutputOptions{
		IncludeStdOut: false,
		IncludeStdErr: true,
		ColorOutput:   false,
	}

	err := WriteResults(&buf, results, opts)
	assert.NoError(t, err)

	output := buf.String()

	assert.Contains(t, output, "✗ multiline-stderr")
	assert.Contains(t, output, "➜ Error: command failed")

	assert.Contains(t, output, "     Error line 1")
	assert.Contains(t, output, "     Error line 2")
	assert.Contains(t, output, "     Error line 3")
	assert.Contains(t, output, "       Indented error line")
}

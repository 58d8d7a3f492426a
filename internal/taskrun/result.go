// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"errors"
	"io"
	"os"
	"slices"
)

// ErrChildTasksFailed marks a group result whose children contain at
// least one failure.
var ErrChildTasksFailed = errors.New("one or more child tasks failed")

// ResultStatus classifies the outcome of a task or group.
type ResultStatus int

const (
	// ResultStatusUnknown means the outcome has not been classified.
	ResultStatusUnknown ResultStatus = iota
	// ResultStatusSuccess means the task completed successfully.
	ResultStatusSuccess
	// ResultStatusError means the task failed.
	ResultStatusError
	// ResultStatusSkipped means the task did not run.
	ResultStatusSkipped
)

// String implements fmt.Stringer.
func (s ResultStatus) String() string {
	switch s {
	case ResultStatusSuccess:
		return "success"
	case ResultStatusError:
		return "error"
	case ResultStatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of running a single task or group.
type Result struct {
	ExitCode int          // Exit code of the task or group
	Error    error        // Error, if any
	StdOut   []byte       // Captured standard output
	StdErr   []byte       // Captured standard error
	Label    string       // Label of the task or group
	Status   ResultStatus // Classified outcome
	Children Results      // Nested results for tree output
	newCwd   string       // New working directory, if the task changed it
}

// Results is a slice of Result pointers representing a result tree.
type Results []*Result

// HasError reports whether any result in the tree failed. Skipped
// results and intentional skips do not count as failures.
func (r Results) HasError() bool {
	for v := range slices.Values(r) {
		switch v.Status {
		case ResultStatusError:
			return true
		case ResultStatusUnknown:
			// Unclassified results fall back to exit code and error
			// inspection so that hand-built results still aggregate.
			if v.ExitCode != 0 {
				return true
			}

			if v.Error != nil && !errors.Is(v.Error, ErrSkipIntentional) {
				return true
			}
		}

		if v.Children.HasError() {
			return true
		}
	}

	return false
}

// Failed returns the leaf results that failed, in tree order.
func (r Results) Failed() Results {
	var failed Results

	for v := range slices.Values(r) {
		if len(v.Children) > 0 {
			failed = slices.Concat(failed, v.Children.Failed())
			continue
		}

		if v.Status == ResultStatusError {
			failed = append(failed, v)
		}
	}

	return failed
}

// Print writes the results to stdout with default options.
func (r Results) Print() error {
	return WriteResults(os.Stdout, r, nil)
}

// PrintWithOptions writes the results to stdout with the given options.
func (r Results) PrintWithOptions(options *OutputOptions) error {
	return WriteResults(os.Stdout, r, options)
}

// Write writes the results to w with default options.
func (r Results) Write(w io.Writer) error {
	return WriteResults(w, r, nil)
}

// WriteWithOptions writes the results to w with the given options.
func (r Results) WriteWithOptions(w io.Writer, options *OutputOptions) error {
	return WriteResults(w, r, options)
}

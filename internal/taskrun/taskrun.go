// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"strconv"
	"strings"
)

// GroupError aggregates the failures of a task tree into a single error
// with one line per failed leaf task.
type GroupError struct {
	FailedResults Results
}

func (e *GroupError) Error() string {
	sb := strings.Builder{}
	sb.WriteString("task execution failed:\n")

	for _, r := range e.FailedResults {
		sb.WriteString(r.Label)
		sb.WriteString(": ")

		if r.Error != nil {
			sb.WriteString(r.Error.Error())
		} else {
			sb.WriteString("unknown error")
		}

		sb.WriteString(" (exit code: ")
		sb.WriteString(strconv.Itoa(r.ExitCode))
		sb.WriteString(")\n")
	}

	return sb.String()
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/halvfigur/snyke/internal/color"
)

// OutputOptions controls what is included in formatted result output.
type OutputOptions struct {
	IncludeStdOut      bool // Whether to include stdout in the output
	IncludeStdErr      bool // Whether to include stderr in the output
	ColorOutput        bool // Whether to colorize the output
	ShowSuccessDetails bool // Whether to show details for successful tasks
}

// DefaultOutputOptions returns the default output options. Color follows
// the terminal detection of the color package.
func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{
		IncludeStdOut:      false,
		IncludeStdErr:      true,
		ColorOutput:        color.Enabled(),
		ShowSuccessDetails: false,
	}
}

// WriteResults writes the result tree to w as indented text. A nil
// options uses DefaultOutputOptions.
func WriteResults(w io.Writer, results Results, options *OutputOptions) error {
	if options == nil {
		options = DefaultOutputOptions()
	}

	for _, r := range results {
		if err := writeResultWithIndent(w, r, "", options); err != nil {
			return err
		}
	}

	return nil
}

func writeResultWithIndent(w io.Writer, r *Result, indent string, options *OutputOptions) error {
	colorize := func(str string, codes ...color.Code) string {
		if !options.ColorOutput {
			return str
		}

		return color.Colorize(str, codes...)
	}
	seq := func(codes ...color.Code) string {
		if !options.ColorOutput {
			return ""
		}

		return color.Sequence(codes...)
	}

	var statusStr, labelPrefix string

	switch r.Status {
	case ResultStatusSkipped:
		statusStr = colorize("~", color.FgYellow)
		labelPrefix = seq(color.Bold, color.FgYellow)
	case ResultStatusError:
		statusStr = colorize("✗", color.FgRed)
		labelPrefix = seq(color.Bold, color.FgRed)
	case ResultStatusSuccess:
		statusStr = colorize("✓", color.FgGreen)
		labelPrefix = seq(color.Bold, color.FgGreen)
	default:
		statusStr = colorize("?", color.FgWhite)
	}

	label := r.Label
	if label == "" {
		label = "[unnamed]"
	}

	fmt.Fprintf( //nolint:errcheck
		w,
		"%s%s %s%s%s",
		indent,
		statusStr,
		labelPrefix,
		label,
		seq(color.Reset),
	)

	if r.ExitCode != 0 {
		fmt.Fprintf(w, " (exit code: %d)", r.ExitCode) //nolint:errcheck
	}

	fmt.Fprintln(w) //nolint:errcheck

	if r.Error != nil {
		var errColor color.Code

		switch r.Status {
		case ResultStatusSkipped:
			errColor = color.FgYellow
		case ResultStatusError:
			errColor = color.FgRed
		default:
			errColor = color.FgWhite
		}

		// ErrChildTasksFailed is redundant with the children shown below.
		if !errors.Is(r.Error, ErrChildTasksFailed) {
			fmt.Fprintf( //nolint:errcheck
				w,
				"%s  %s%s %s%s\n",
				indent,
				seq(errColor),
				"➜ Error:",
				r.Error.Error(),
				seq(color.Reset),
			)
		}
	}

	// Details are shown for failed leaf tasks, or for all leaf tasks when
	// requested.
	shouldShowDetails := (r.Error != nil || r.ExitCode != 0 || options.ShowSuccessDetails) &&
		len(r.Children) == 0

	if shouldShowDetails && options.IncludeStdOut && len(r.StdOut) > 0 {
		fmt.Fprintf(w, "%s  ➜ Output:\n", indent)                    //nolint:errcheck
		fmt.Fprintf(w, "%s", formatOutput(r.StdOut, indent+"     ")) //nolint:errcheck
	}

	if shouldShowDetails && options.IncludeStdErr && len(r.StdErr) > 0 {
		fmt.Fprintf(w, "%s  %s\n", indent, colorize("➜ Error Output:", color.FgHiRed)) //nolint:errcheck
		fmt.Fprintf(w, "%s", formatOutput(r.StdErr, indent+"     "))                   //nolint:errcheck
	}

	if len(r.Children) > 0 {
		childIndent := indent + "  "
		for _, child := range r.Children {
			if err := writeResultWithIndent(w, child, childIndent, options); err != nil {
				return err
			}
		}
	}

	return nil
}

// formatOutput indents every line of output.
func formatOutput(output []byte, indent string) string {
	sb := strings.Builder{}
	lines := strings.Split(string(output), "\n")
	sb.Grow(len(output) + len(lines)*len(indent))

	for _, line := range lines {
		if line == "" {
			sb.WriteString("\n")
			continue
		}

		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

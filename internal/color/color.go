// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	csi       = "\033["
	sgrSuffix = "m"
	reset     = csi + "0" + sgrSuffix

	builderPadding = 16 // headroom for the strings.Builder
)

// Code represents an ANSI SGR code for text formatting.
type Code int

// Text attributes.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground hi-intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled = detect()

// Sequence returns the bare ANSI control sequence for the given codes,
// without any text or trailing reset. Callers are responsible for
// eventually writing a Reset sequence.
func Sequence(codes ...Code) string {
	if !enabled {
		return ""
	}

	sb := strings.Builder{}
	sb.Grow(len(csi) + len(sgrSuffix) + builderPadding)
	sb.WriteString(csi)

	for i, c := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(c)))
	}

	sb.WriteString(sgrSuffix)

	return sb.String()
}

// Colorize wraps str in the given ANSI codes followed by a reset.
// When color output is disabled the string is returned untouched.
func Colorize(str string, codes ...Code) string {
	if !enabled {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(csi) + len(sgrSuffix) + len(reset) + builderPadding)
	sb.WriteString(Sequence(codes...))
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled reports whether color output is active for this process.
//
// Color is disabled when NO_COLOR is set, forced when FORCE_COLOR is set,
// and otherwise follows whether stdout is a terminal.
func Enabled() bool {
	return enabled
}

func detect() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

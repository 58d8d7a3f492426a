// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color colorizes strings with ANSI escape codes.
// Color output is disabled when the NO_COLOR environment variable is set,
// forced when FORCE_COLOR is set, and otherwise enabled only when stdout
// is a terminal, as determined by the golang.org/x/term package.
package color

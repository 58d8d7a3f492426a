// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a structured logger in a context.Context.
// It is built on the slog package and defaults to a pretty console
// handler that renders attributes as colorized JSON.
//
// The log level is read from the SNYKE_LOG_LEVEL environment variable
// at startup and may be changed at runtime through LevelVar.
package ctxlog

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress carries real-time task execution events from the
// runner to interested observers such as the terminal UI. Tasks emit
// events as they start, produce output and finish; observers consume
// them without ever blocking execution.
package progress

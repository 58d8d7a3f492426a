// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tasktui provides a real-time terminal user interface for
// monitoring task execution. It displays a live tree of the running
// targets with status indicators, elapsed times and the last output
// line of each running task.
//
// The view is fed by the progress event stream, so nested serial and
// parallel groups appear as they start rather than all at once.
package tasktui

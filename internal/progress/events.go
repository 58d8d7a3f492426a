// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event is a real-time update emitted during task execution.
type Event struct {
	TaskPath  []string  // Hierarchical path to the task, e.g. ["build", "typecheck"]
	Type      EventType // What happened
	Message   string    // Human-readable status message
	Timestamp time.Time // When the event occurred
	Data      EventData // Type-specific payload
}

// EventType identifies what an Event describes.
type EventType int

const (
	// EventStarted indicates a task has begun execution.
	EventStarted EventType = iota
	// EventProgress indicates general progress information.
	EventProgress
	// EventOutput indicates new stdout or stderr output is available.
	EventOutput
	// EventCompleted indicates successful completion.
	EventCompleted
	// EventFailed indicates the task failed.
	EventFailed
	// EventSkipped indicates the task was skipped by its run condition.
	EventSkipped
)

// String implements fmt.Stringer.
func (et EventType) String() string {
	switch et {
	case EventStarted:
		return "started"
	case EventProgress:
		return "progress"
	case EventOutput:
		return "output"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	case EventSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// EventData carries type-specific fields; which fields are meaningful
// depends on the Event's Type.
type EventData struct {
	// For EventOutput.
	OutputLine string
	IsStderr   bool

	// For EventCompleted and EventFailed.
	ExitCode int
	Error    error

	// For EventProgress.
	ProgressMessage string
}

// Reporter is implemented by sinks that receive task execution events.
type Reporter interface {
	// Report delivers an event. Implementations must not block and must
	// tolerate nobody listening.
	Report(event Event)
	// Close signals that no more events will be sent.
	Close()
}

// Listener consumes events delivered by a Reporter.
// Implementations should return quickly to avoid stalling delivery.
type Listener interface {
	OnEvent(event Event)
}

// NullReporter discards every event.
type NullReporter struct{}

// Report implements Reporter by doing nothing.
func (nr *NullReporter) Report(event Event) {}

// Close implements Reporter by doing nothing.
func (nr *NullReporter) Close() {}

// NewNullReporter returns a Reporter that discards every event.
func NewNullReporter() Reporter {
	return &NullReporter{}
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		eventType EventType
		expected  string
	}{
		{eventType: EventStarted, expected: "started"},
		{eventType: EventProgress, expected: "progress"},
		{eventType: EventOutput, expected: "output"},
		{eventType: EventCompleted, expected: "completed"},
		{eventType: EventFailed, expected: "failed"},
		{eventType: EventSkipped, expected: "skipped"},
		{eventType: EventType(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.eventType.String())
		})
	}
}

func TestNullReporter(t *testing.T) {
	reporter := NewNullReporter()
	require.NotNil(t, reporter)

	// Must not panic.
	reporter.Report(Event{
		TaskPath:  []string{"test"},
		Type:      EventStarted,
		Message:   "test message",
		Timestamp: time.Now(),
	})

	reporter.Close()
}

func TestChannelReporter(t *testing.T) {
	reporter := NewChannelReporter(context.Background(), 10)
	require.NotNil(t, reporter)

	event := Event{
		TaskPath:  []string{"build", "typecheck"},
		Type:      EventStarted,
		Message:   "typecheck started",
		Timestamp: time.Now(),
	}

	reporter.Report(event)

	select {
	case received := <-reporter.Events():
		assert.Equal(t, event.TaskPath, received.TaskPath)
		assert.Equal(t, event.Type, received.Type)
		assert.Equal(t, event.Message, received.Message)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("event not received within timeout")
	}

	reporter.Close()

	// A closed reporter silently drops events.
	reporter.Report(Event{
		Type:    EventCompleted,
		Message: "should be dropped",
	})
}

func TestChannelReporterBufferOverflow(t *testing.T) {
	reporter := NewChannelReporter(context.Background(), 1)
	require.NotNil(t, reporter)

	reporter.Report(Event{Type: EventStarted, Message: "event 1"})

	// Buffer is full now; this must not block.
	reporter.Report(Event{Type: EventProgress, Message: "event 2"})

	reporter.Close()
}

type mockListener struct {
	events []Event
}

func (ml *mockListener) OnEvent(event Event) {
	ml.events = append(ml.events, event)
}

func TestChannelReporterListen(t *testing.T) {
	reporter := NewChannelReporter(context.Background(), 10)
	require.NotNil(t, reporter)

	listener := &mockListener{}
	reporter.Listen(listener)

	events := []Event{
		{Type: EventStarted, Message: "started"},
		{Type: EventProgress, Message: "progress"},
		{Type: EventCompleted, Message: "completed"},
	}

	for _, event := range events {
		reporter.Report(event)
	}

	time.Sleep(10 * time.Millisecond)

	reporter.Close()

	require.Len(t, listener.events, len(events))

	for i, expected := range events {
		assert.Equal(t, expected.Type, listener.events[i].Type)
		assert.Equal(t, expected.Message, listener.events[i].Message)
	}
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasktui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halvfigur/snyke/internal/progress"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedModel(t *testing.T) *Model {
	t.Helper()

	model := NewModel(context.Background())

	events := []progress.Event{
		{TaskPath: []string{"ci"}, Type: progress.EventStarted},
		{TaskPath: []string{"ci", "format"}, Type: progress.EventStarted},
		{TaskPath: []string{"ci", "format"}, Type: progress.EventCompleted},
		{TaskPath: []string{"ci", "typecheck"}, Type: progress.EventStarted},
	}

	for _, event := range events {
		model.processProgressEvent(event)
	}

	return model
}

func TestModel_View(t *testing.T) {
	model := populatedModel(t)

	view := model.View()

	assert.Contains(t, view, "snyke task runner")
	assert.Contains(t, view, "ci")
	assert.Contains(t, view, "format")
	assert.Contains(t, view, "typecheck")
}

func TestModel_View_Completed(t *testing.T) {
	model := populatedModel(t)

	updated, _ := model.Update(RunCompletedMsg{
		Results: taskrun.Results{&taskrun.Result{
			Label:  "ci",
			Status: taskrun.ResultStatusSuccess,
		}},
	})

	m, ok := updated.(*Model)
	require.True(t, ok)
	assert.True(t, m.completed)

	view := m.View()
	assert.Contains(t, view, "Run completed successfully")
}

func TestModel_View_Quitting(t *testing.T) {
	model := populatedModel(t)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	m, ok := updated.(*Model)
	require.True(t, ok)
	assert.True(t, m.quitting)
	assert.Equal(t, "Shutting down...\n", m.View())
}

func TestModel_WindowSize(t *testing.T) {
	model := populatedModel(t)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m, ok := updated.(*Model)
	require.True(t, ok)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120-viewportFrameWidth, m.viewport.Width)
	assert.Equal(t, 40-reservedLines, m.viewport.Height)
}

func TestModel_StatusCounts(t *testing.T) {
	model := populatedModel(t)

	model.processProgressEvent(progress.Event{
		TaskPath: []string{"ci", "lint"},
		Type:     progress.EventSkipped,
	})

	pending, running, succeeded, failed, skipped := model.statusCounts()

	assert.Equal(t, 0, pending)
	assert.Equal(t, 2, running) // ci and typecheck
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 1, skipped)

	bar := model.renderStatusBar()
	assert.Contains(t, bar, "2 running")
	assert.Contains(t, bar, "1 ok")
	assert.True(t, strings.Contains(bar, "%"))
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasktui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halvfigur/snyke/internal/progress"
	"github.com/halvfigur/snyke/internal/taskrun"
)

const (
	initialViewportWidth  = 80
	initialViewportHeight = 24
	viewportFrameWidth    = 2 // Width consumed by the viewport border
	minViewportWidth      = 20
	// Lines reserved for the title, border, status bar and help text.
	reservedLines               = 7
	minStatusBarAvailableHeight = 10
	taskDurationRounding        = 100 * time.Millisecond
	ellipsis                    = "..."
)

// ProgressEventMsg wraps a progress event for the tea framework.
type ProgressEventMsg struct {
	Event progress.Event
}

// RunCompletedMsg indicates that all tasks have finished executing.
type RunCompletedMsg struct {
	Results taskrun.Results
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.EnableMouseCellMotion,
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// The viewport handles scrolling keys and mouse wheel events.
	m.viewport, cmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.mutex.Lock()
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportSize()
		m.mutex.Unlock()

		return m, cmd

	case ProgressEventMsg:
		progressCmd := m.processProgressEvent(msg.Event)
		return m, tea.Batch(cmd, progressCmd)

	case RunCompletedMsg:
		m.mutex.Lock()
		m.completed = true
		m.results = msg.Results
		m.updateErrorsFromResults()
		m.mutex.Unlock()

		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// handleKeyPress processes keyboard input not consumed by the viewport.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "r":
		// Refresh view
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var content strings.Builder

	m.renderTaskTree(&content, m.rootNode, "", true)

	if m.completed {
		content.WriteString("\n")

		if m.results != nil && m.results.HasError() {
			content.WriteString(m.styles.Failed.Render("⚠️  Run completed with errors"))
		} else {
			content.WriteString(m.styles.Success.Render("✅ Run completed successfully"))
		}

		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())

	var view strings.Builder

	title := m.styles.Title.Render("🐍 snyke task runner")
	view.WriteString(title)
	view.WriteString("\n")

	view.WriteString(m.styles.Border.Render(m.viewport.View()))

	if m.height > minStatusBarAvailableHeight {
		view.WriteString("\n\n")
		view.WriteString(m.renderStatusBar())
		view.WriteString("\n")

		helpText := "↑/↓ or j/k to scroll, PgUp/PgDn for pages, 'q' to quit, 'r' to refresh"
		if m.completed {
			helpText = "↑/↓ or j/k to scroll, 'q' to quit and return to the terminal"
		}

		view.WriteString(m.styles.Help.Render(helpText))
	}

	return view.String()
}

// renderStatusBar summarizes the run: per-status task counts and the
// scroll position.
// Callers must hold the model mutex.
func (m *Model) renderStatusBar() string {
	pending, running, succeeded, failed, skipped := m.statusCounts()

	parts := make([]string, 0, 5)

	if running > 0 {
		parts = append(parts, m.styles.Running.Render(fmt.Sprintf("⚡ %d running", running)))
	}

	if succeeded > 0 {
		parts = append(parts, m.styles.Success.Render(fmt.Sprintf("✅ %d ok", succeeded)))
	}

	if failed > 0 {
		parts = append(parts, m.styles.Failed.Render(fmt.Sprintf("❌ %d failed", failed)))
	}

	if skipped > 0 {
		parts = append(parts, m.styles.Pending.Render(fmt.Sprintf("⏭  %d skipped", skipped)))
	}

	if pending > 0 {
		parts = append(parts, m.styles.Pending.Render(fmt.Sprintf("⏳ %d pending", pending)))
	}

	if len(parts) == 0 {
		parts = append(parts, m.styles.Pending.Render("waiting for tasks..."))
	}

	bar := strings.Join(parts, m.styles.StatusBar.Render(" · "))
	scroll := m.styles.StatusBar.Render(fmt.Sprintf(" %3.0f%%", m.viewport.ScrollPercent()*100)) //nolint:mnd

	return bar + scroll
}

// renderTaskTree recursively renders the task tree.
func (m *Model) renderTaskTree(b *strings.Builder, node *TaskNode, prefix string, isLast bool) {
	if node == nil {
		return
	}

	// Skip rendering the root node itself.
	if len(node.Path) == 0 {
		for i, child := range node.Children {
			m.renderTaskTree(b, child, "", i == len(node.Children)-1)
		}

		return
	}

	m.renderTaskNode(b, node, prefix, isLast)

	if len(node.Children) > 0 {
		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}

		for i, child := range node.Children {
			m.renderTaskTree(b, child, childPrefix, i == len(node.Children)-1)
		}
	}
}

// renderTaskNode renders a single task node with inline output display.
func (m *Model) renderTaskNode(b *strings.Builder, node *TaskNode, prefix string, isLast bool) {
	status, name, output, errorMsg, startTime, endTime := node.GetDisplayInfo()

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	var statusIcon string

	var nameStyle func(...string) string

	switch status {
	case StatusPending:
		statusIcon = "⏳"
		nameStyle = m.styles.Pending.Render
	case StatusRunning:
		statusIcon = "⚡"
		nameStyle = m.styles.Running.Render
	case StatusSuccess:
		statusIcon = "✅"
		nameStyle = m.styles.Success.Render
	case StatusFailed:
		statusIcon = "❌"
		nameStyle = m.styles.Failed.Render
	case StatusSkipped:
		statusIcon = "⏭"
		nameStyle = m.styles.Pending.Render
	default:
		statusIcon = "❓"
		nameStyle = m.styles.Pending.Render
	}

	// Truncation happens on the plain text. Styling afterwards keeps the
	// ANSI escape sequences out of the width arithmetic.
	leftPlain := fmt.Sprintf("%s %s", statusIcon, name)

	if startTime != nil {
		elapsed := time.Since(*startTime)
		if endTime != nil {
			elapsed = endTime.Sub(*startTime)
		}

		leftPlain += fmt.Sprintf(" (%v)", elapsed.Round(taskDurationRounding))
	}

	var rightPlain string

	var rightStyle func(...string) string

	switch {
	case errorMsg != "" && status == StatusFailed:
		rightPlain = "Error: " + errorMsg
		rightStyle = m.styles.Error.Render
	case output != "" && status == StatusRunning:
		rightPlain = output
		rightStyle = m.styles.Output.Render
	}

	availableWidth := m.viewport.Width - len(prefix+connector) - viewportFrameWidth
	if availableWidth < minViewportWidth {
		availableWidth = minViewportWidth
	}

	// Half the width each for the task and its output.
	leftWidth := availableWidth / 2 //nolint:mnd
	rightWidth := availableWidth - leftWidth

	leftPlain = truncate(leftPlain, leftWidth)
	rightPlain = truncate(rightPlain, rightWidth)

	b.WriteString(m.styles.TreeBranch.Render(prefix + connector))
	b.WriteString(nameStyle(leftPlain))

	if rightPlain != "" {
		b.WriteString(strings.Repeat(" ", leftWidth-len([]rune(leftPlain))))
		b.WriteString(rightStyle(rightPlain))
	}

	b.WriteString("\n")
}

// truncate shortens s to at most width characters, ending in an ellipsis
// when anything was cut.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	if width > len(ellipsis) {
		return string(runes[:width-len(ellipsis)]) + ellipsis
	}

	return string(runes[:width])
}

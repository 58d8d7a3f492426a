// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasktui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/halvfigur/snyke/internal/progress"
	"github.com/halvfigur/snyke/internal/taskrun"
)

// Status represents the current state of a task in the TUI.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
	StatusSkipped
)

// String returns a string representation of the task status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// TaskNode represents a task in the execution tree.
type TaskNode struct {
	Path       []string    // Hierarchical path to this task
	Name       string      // Display name of the task
	Status     Status      // Current execution status
	StartTime  *time.Time  // When execution started
	EndTime    *time.Time  // When execution completed
	LastOutput string      // Last line of output from this task
	ErrorMsg   string      // Error message if failed
	Children   []*TaskNode // Child tasks for hierarchical display
	mutex      sync.RWMutex
}

// NewTaskNode creates a new task node.
func NewTaskNode(path []string, name string) *TaskNode {
	pathCopy := make([]string, len(path))
	copy(pathCopy, path)

	return &TaskNode{
		Path:     pathCopy,
		Name:     name,
		Status:   StatusPending,
		Children: make([]*TaskNode, 0),
	}
}

// UpdateStatus safely updates the task status.
func (tn *TaskNode) UpdateStatus(status Status) {
	tn.mutex.Lock()
	defer tn.mutex.Unlock()

	tn.Status = status
	now := time.Now()

	switch status {
	case StatusRunning:
		if tn.StartTime == nil {
			tn.StartTime = &now
		}
	case StatusSuccess, StatusFailed, StatusSkipped:
		if tn.EndTime == nil {
			tn.EndTime = &now
		}
	}
}

// UpdateOutput safely updates the last output line.
func (tn *TaskNode) UpdateOutput(output string) {
	tn.mutex.Lock()
	defer tn.mutex.Unlock()

	// Keep only the last line and trim whitespace.
	if output != "" {
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 0 {
			tn.LastOutput = strings.TrimSpace(lines[len(lines)-1])
		}
	}
}

// UpdateError safely updates the error message.
func (tn *TaskNode) UpdateError(err string) {
	tn.mutex.Lock()
	defer tn.mutex.Unlock()

	tn.ErrorMsg = err
}

// GetDisplayInfo safely retrieves display information.
func (tn *TaskNode) GetDisplayInfo() (Status, string, string, string, *time.Time, *time.Time) {
	tn.mutex.RLock()
	defer tn.mutex.RUnlock()

	return tn.Status, tn.Name, tn.LastOutput, tn.ErrorMsg, tn.StartTime, tn.EndTime
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	rootNode  *TaskNode
	nodeMap   map[string]*TaskNode // Maps path strings to nodes for quick lookup
	viewport  viewport.Model
	width     int
	height    int
	quitting  bool
	completed bool            // Track if all tasks have completed
	results   taskrun.Results // Final results once the run has finished
	mutex     sync.RWMutex

	styles *Styles
}

// Styles contains all the styling for the TUI.
type Styles struct {
	Title      lipgloss.Style
	Pending    lipgloss.Style
	Running    lipgloss.Style
	Success    lipgloss.Style
	Failed     lipgloss.Style
	Output     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	TreeBranch lipgloss.Style
	Border     lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			MarginBottom(1),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
		TreeBranch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
	}
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context) *Model {
	return &Model{
		ctx:      ctx,
		rootNode: NewTaskNode([]string{}, "Root"),
		nodeMap:  make(map[string]*TaskNode),
		viewport: viewport.New(initialViewportWidth, initialViewportHeight),
		styles:   NewStyles(),
	}
}

// updateViewportSize resizes the viewport to fit the current window,
// reserving room for the title, status bar and help line.
// Callers must hold the model mutex.
func (m *Model) updateViewportSize() {
	width := m.width - viewportFrameWidth
	if width < minViewportWidth {
		width = minViewportWidth
	}

	height := m.height - reservedLines
	if height < 1 {
		height = 1
	}

	m.viewport.Width = width
	m.viewport.Height = height
}

// pathToString converts a task path to a string key.
func pathToString(path []string) string {
	return strings.Join(path, "/")
}

// getOrCreateNode safely gets or creates a task node and ensures the full
// hierarchy exists.
func (m *Model) getOrCreateNode(path []string, name string) *TaskNode {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	pathKey := pathToString(path)
	if node, exists := m.nodeMap[pathKey]; exists {
		return node
	}

	m.ensureParentNodes(path)

	node := NewTaskNode(path, name)
	m.nodeMap[pathKey] = node

	// Add to parent's children.
	if len(path) > 1 {
		parentPath := path[:len(path)-1]
		parentKey := pathToString(parentPath)

		if parent, exists := m.nodeMap[parentKey]; exists {
			parent.Children = append(parent.Children, node)
		}
	} else if len(path) == 1 {
		m.rootNode.Children = append(m.rootNode.Children, node)
	}

	return node
}

// ensureParentNodes recursively creates all parent nodes if they don't exist.
func (m *Model) ensureParentNodes(path []string) {
	if len(path) <= 1 {
		return // No parents to create
	}

	for i := 1; i < len(path); i++ {
		parentPath := path[:i]
		parentKey := pathToString(parentPath)

		if _, exists := m.nodeMap[parentKey]; exists {
			continue
		}

		parentName := parentPath[len(parentPath)-1]
		parentNode := NewTaskNode(parentPath, parentName)
		m.nodeMap[parentKey] = parentNode

		if len(parentPath) > 1 {
			grandParentPath := parentPath[:len(parentPath)-1]
			grandParentKey := pathToString(grandParentPath)

			if grandParent, exists := m.nodeMap[grandParentKey]; exists {
				grandParent.Children = append(grandParent.Children, parentNode)
			}
		} else {
			m.rootNode.Children = append(m.rootNode.Children, parentNode)
		}
	}
}

// processProgressEvent handles incoming progress events.
func (m *Model) processProgressEvent(event progress.Event) tea.Cmd {
	// Extract the task name from the last element of the path.
	taskName := "Unknown"
	if len(event.TaskPath) > 0 {
		taskName = event.TaskPath[len(event.TaskPath)-1]
	}

	node := m.getOrCreateNode(event.TaskPath, taskName)

	switch event.Type {
	case progress.EventStarted:
		node.UpdateStatus(StatusRunning)

	case progress.EventProgress, progress.EventOutput:
		if event.Data.OutputLine != "" {
			node.UpdateOutput(event.Data.OutputLine)
		}

	case progress.EventCompleted:
		node.UpdateStatus(StatusSuccess)

	case progress.EventFailed:
		node.UpdateStatus(StatusFailed)

		if event.Data.Error != nil {
			node.UpdateError(event.Data.Error.Error())
		}

	case progress.EventSkipped:
		node.UpdateStatus(StatusSkipped)
	}

	return nil
}

// updateErrorsFromResults copies error details from the final result tree
// onto the matching nodes, so failures report the precise error rather
// than the generic progress message.
// Callers must hold the model mutex.
func (m *Model) updateErrorsFromResults() {
	if m.results == nil {
		return
	}

	var walk func(res *taskrun.Result, path []string)

	walk = func(res *taskrun.Result, path []string) {
		fullPath := append(append([]string{}, path...), res.Label)

		if node, exists := m.nodeMap[pathToString(fullPath)]; exists {
			if res.Status == taskrun.ResultStatusError {
				node.UpdateStatus(StatusFailed)

				if res.Error != nil {
					node.UpdateError(res.Error.Error())
				}
			}
		}

		for _, child := range res.Children {
			walk(child, fullPath)
		}
	}

	for _, res := range m.results {
		walk(res, nil)
	}
}

// statusCounts tallies the nodes by status for the status bar.
// Callers must hold the model mutex.
func (m *Model) statusCounts() (pending, running, succeeded, failed, skipped int) {
	for _, node := range m.nodeMap {
		status, _, _, _, _, _ := node.GetDisplayInfo()

		switch status {
		case StatusPending:
			pending++
		case StatusRunning:
			running++
		case StatusSuccess:
			succeeded++
		case StatusFailed:
			failed++
		case StatusSkipped:
			skipped++
		}
	}

	return pending, running, succeeded, failed, skipped
}

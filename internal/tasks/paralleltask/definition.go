// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package paralleltask

import (
	"errors"
	"strings"

	"github.com/halvfigur/snyke/internal/tasks"
)

var (
	// ErrBothTasksAndGroup is returned when a definition sets both an
	// inline tasks list and a task group reference.
	ErrBothTasksAndGroup = errors.New("only one of tasks and task_group may be set")
	// ErrEmptyTaskGroup is returned when a task group reference is blank.
	ErrEmptyTaskGroup = errors.New("task_group must not be blank")
)

// Definition represents the YAML configuration for the parallel task.
type Definition struct {
	tasks.BaseDefinition `yaml:",inline"`
	Tasks                []any  `yaml:"tasks,omitempty" docdesc:"List of tasks to execute in parallel"`
	TaskGroup            string `yaml:"task_group,omitempty" docdesc:"Name of a task group whose tasks replace the tasks list"`
}

// Validate checks that the definition is well formed.
func (d *Definition) Validate() error {
	hasTasks := len(d.Tasks) > 0
	hasGroup := d.TaskGroup != ""

	if hasTasks && hasGroup {
		return ErrBothTasksAndGroup
	}

	if hasGroup && strings.TrimSpace(d.TaskGroup) == "" {
		return ErrEmptyTaskGroup
	}

	return nil
}

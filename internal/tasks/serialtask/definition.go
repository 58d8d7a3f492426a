// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package serialtask

import (
	"errors"
	"strings"

	"github.com/halvfigur/snyke/internal/tasks"
)

var (
	// ErrBothTasksAndGroup is returned when a definition sets both tasks and task_group.
	ErrBothTasksAndGroup = errors.New("only one of tasks and task_group may be set")
	// ErrEmptyTaskGroup is returned when task_group is set but blank.
	ErrEmptyTaskGroup = errors.New("task_group must not be blank")
)

// Definition represents the YAML configuration for the serial task.
type Definition struct {
	tasks.BaseDefinition `yaml:",inline"`
	Tasks                []any  `yaml:"tasks,omitempty" docdesc:"List of tasks to execute sequentially"`                        //nolint:lll
	TaskGroup            string `yaml:"task_group,omitempty" docdesc:"Name of a task group whose tasks replace the tasks list"` //nolint:lll
}

// Validate checks that the definition names its children exactly one way.
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

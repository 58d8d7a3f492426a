// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasks

// BaseDefinition contains fields common to all task types.
type BaseDefinition struct {
	// Type is the type of task, e.g., "shell", "serial", "parallel".
	Type string `yaml:"type" docdesc:"The type of task (e.g., 'shell', 'serial', 'parallel')"` //nolint:lll
	// Name is the descriptive name of the task.
	Name string `yaml:"name" docdesc:"Descriptive name for the task"` //nolint:lll
	// WorkingDirectory is the directory in which the task should be run.
	WorkingDirectory string `yaml:"working_directory,omitempty" docdesc:"Directory in which the task should be executed"` //nolint:lll
	// RunsOnCondition can be success, error, always, or exit-codes.
	RunsOnCondition string `yaml:"runs_on_condition,omitempty" docdesc:"Condition that determines when this task runs: 'success', 'error', 'always', or 'exit-codes'"` //nolint:lll
	// RunsOnExitCodes is used when RunsOnCondition is set to exit-codes.
	RunsOnExitCodes []int `yaml:"runs_on_exit_codes,omitempty" docdesc:"Specific exit codes that trigger execution (used with runs_on_condition: exit-codes)"` //nolint:lll
	// Env is a map of environment variables to be set for the task.
	Env map[string]string `yaml:"env,omitempty" docdesc:"Environment variables to set for the task"` //nolint:lll
}

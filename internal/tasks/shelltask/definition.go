// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package shelltask

import "github.com/halvfigur/snyke/internal/tasks"

// Definition is the YAML definition for the shell task.
type Definition struct {
	tasks.BaseDefinition `yaml:",inline"`
	// The command to execute, can be a path or a command name.
	CommandLine string `yaml:"command_line" docdesc:"The command to execute, can be a path or a command name"` //nolint:lll
	// Exit codes that indicate success, defaults to 0.
	SuccessExitCodes []int `yaml:"success_exit_codes,omitempty" docdesc:"Exit codes that indicate success, defaults to 0"` //nolint:lll
	// Exit codes that indicate skip remaining tasks, defaults to empty.
	SkipExitCodes []int `yaml:"skip_exit_codes,omitempty" docdesc:"Exit codes that indicate skip remaining tasks, defaults to empty"` //nolint:lll
	// File that captured stdout is written to when the task succeeds.
	OutputFile string `yaml:"output_file,omitempty" docdesc:"File that captured stdout is written to when the task succeeds"` //nolint:lll
}

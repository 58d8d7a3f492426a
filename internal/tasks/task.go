// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasks

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
)

var (
	// ErrYamlUnmarshal is returned when a YAML task definition cannot be unmarshaled.
	ErrYamlUnmarshal = errors.New(
		"failed to decode YAML task definition, please check the syntax and structure of your YAML file",
	)
	// ErrHclConfig is returned when a HCL task definition cannot be decoded.
	ErrHclConfig = errors.New(
		"failed to decode HCL task definition, please check the syntax and structure of your HCL file",
	)
	// ErrFailedToCreateRunnable is returned when a runnable task cannot be created.
	ErrFailedToCreateRunnable = errors.New(
		"failed to create runnable task, please check the task definition and ensure all required fields are set",
	)
)

// ErrTaskCreate is returned when a task cannot be created.
// It includes the task name for easier debugging.
type ErrTaskCreate struct {
	taskName string
}

// Error implements the error interface for ErrTaskCreate.
func (e *ErrTaskCreate) Error() string {
	return fmt.Sprintf("failed to create task %q", e.taskName)
}

// NewErrTaskCreate creates a new ErrTaskCreate error.
func NewErrTaskCreate(taskName string) error {
	return &ErrTaskCreate{taskName: taskName}
}

// ToBaseTask converts the BaseDefinition to a taskrun.BaseTask.
// An empty runs_on_condition defaults to success. The caller is responsible
// for wiring the parent with SetParent; a root task has none.
func (d *BaseDefinition) ToBaseTask() (*taskrun.BaseTask, error) {
	if d.RunsOnCondition == "" {
		d.RunsOnCondition = taskrun.RunOnSuccess.String()
	}

	ro, err := taskrun.NewRunCondition(d.RunsOnCondition)
	if err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	return taskrun.NewBaseTask(
		d.Name,
		d.WorkingDirectory,
		ro,
		slices.Clone(d.RunsOnExitCodes),
		maps.Clone(d.Env)), nil
}

// HclTaskToBaseTask converts an HCL task block to a taskrun.BaseTask.
func HclTaskToBaseTask(block *hcl.TaskBlock) (*taskrun.BaseTask, error) {
	if block.RunsOnCondition == "" {
		block.RunsOnCondition = taskrun.RunOnSuccess.String()
	}

	ro, err := taskrun.NewRunCondition(block.RunsOnCondition)
	if err != nil {
		return nil, errors.Join(ErrHclConfig, err)
	}

	return taskrun.NewBaseTask(
		block.Name,
		block.WorkingDirectory,
		ro,
		slices.Clone(block.RunsOnExitCodes),
		maps.Clone(block.Env)), nil
}

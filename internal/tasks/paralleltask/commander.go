// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package paralleltask provides a task type for running tasks in parallel.
package paralleltask

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/halvfigur/snyke/internal/schema"
	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/halvfigur/snyke/internal/tasks"
)

var _ tasks.Commander = (*Commander)(nil)
var _ tasks.HclCommander = (*Commander)(nil)
var _ schema.Writer = (*Commander)(nil)
var _ schema.Provider = (*Commander)(nil)

// Commander is a struct that implements the tasks.Commander interface.
type Commander struct {
	schemaGenerator *schema.BaseSchemaGenerator
}

// NewCommander creates a new paralleltask Commander.
func NewCommander() *Commander {
	c := &Commander{}
	c.schemaGenerator = schema.NewBaseSchemaGenerator(c)

	return c
}

// Create creates a new runnable task and implements the tasks.Commander interface.
func (c *Commander) Create(ctx context.Context, factory tasks.Factory, payload []byte) (taskrun.Runnable, error) {
	def := new(Definition)
	if err := yaml.Unmarshal(payload, def); err != nil {
		return nil, errors.Join(tasks.ErrYamlUnmarshal, err)
	}

	if err := def.Validate(); err != nil {
		return nil, errors.Join(tasks.NewErrTaskCreate(def.Name), err)
	}

	base, err := def.ToBaseTask()
	if err != nil {
		return nil, errors.Join(tasks.NewErrTaskCreate(def.Name), err)
	}

	group := &taskrun.ParallelGroup{
		BaseTask: base,
	}

	taskDefs := def.Tasks

	if def.TaskGroup != "" {
		taskDefs, err = factory.ResolveTaskGroup(def.TaskGroup)
		if err != nil {
			return nil, errors.Join(tasks.NewErrTaskCreate(def.Name), err)
		}
	}

	runnables := make([]taskrun.Runnable, 0, len(taskDefs))

	for i, taskDef := range taskDefs {
		taskYAML, err := yaml.Marshal(taskDef)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal task %d: %w", i, err)
		}

		runnable, err := factory.CreateRunnableFromYAML(ctx, taskYAML)
		if err != nil {
			return nil, fmt.Errorf("failed to create runnable for task %d: %w", i, err)
		}

		runnable.SetParent(group)

		runnables = append(runnables, runnable)
	}

	group.Tasks = runnables

	return group, nil
}

// CreateFromHcl creates a new runnable task from a decoded HCL task block.
func (c *Commander) CreateFromHcl(
	ctx context.Context, factory tasks.Factory, block *hcl.TaskBlock,
) (taskrun.Runnable, error) {
	base, err := tasks.HclTaskToBaseTask(block)
	if err != nil {
		return nil, errors.Join(tasks.NewErrTaskCreate(block.Name), err)
	}

	group := &taskrun.ParallelGroup{
		BaseTask: base,
	}

	runnables := make([]taskrun.Runnable, 0, len(block.Tasks))

	for i, child := range block.Tasks {
		runnable, err := factory.CreateRunnableFromHcl(ctx, child)
		if err != nil {
			return nil, fmt.Errorf("failed to create runnable for task %d: %w", i, err)
		}

		runnable.SetParent(group)

		runnables = append(runnables, runnable)
	}

	group.Tasks = runnables

	return group, nil
}

// GetSchemaFields returns the schema fields for the paralleltask type.
func (c *Commander) GetSchemaFields() []schema.Field {
	def := &Definition{}
	generator := schema.NewGenerator()

	schemaObj, err := generator.Generate(taskType, def)
	if err != nil {
		return []schema.Field{}
	}

	return schemaObj.Fields
}

// GetTaskType returns the task type string.
func (c *Commander) GetTaskType() string {
	return taskType
}

// GetTaskDescription returns a description of what this task does.
func (c *Commander) GetTaskDescription() string {
	return "Executes a list of tasks in parallel (all at once)"
}

// GetExampleDefinition returns an example definition for YAML generation.
func (c *Commander) GetExampleDefinition() interface{} {
	return &Definition{
		BaseDefinition: tasks.BaseDefinition{
			Type: taskType,
			Name: "example-parallel-task",
		},
		Tasks: []any{
			map[string]any{
				"type":         "shell",
				"name":         "first-task",
				"command_line": "echo 'First task'",
			},
			map[string]any{
				"type":         "shell",
				"name":         "second-task",
				"command_line": "echo 'Second task'",
			},
		},
	}
}

// WriteYAMLExample writes the YAML schema documentation to the provided writer.
func (c *Commander) WriteYAMLExample(w io.Writer) error {
	return c.schemaGenerator.WriteYAMLExample(w)
}

// WriteMarkdownDoc writes the Markdown schema documentation to the provided writer.
func (c *Commander) WriteMarkdownDoc(w io.Writer) error {
	return c.schemaGenerator.WriteMarkdownDoc(w)
}

// WriteJSONSchema writes the JSON schema to the provided writer.
func (c *Commander) WriteJSONSchema(w io.Writer) error {
	return c.schemaGenerator.WriteJSONSchema(w)
}

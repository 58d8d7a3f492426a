// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package shelltask

import (
	"context"
	"errors"
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

// NewCommander creates a new shelltask Commander.
func NewCommander() *Commander {
	c := &Commander{}
	c.schemaGenerator = schema.NewBaseSchemaGenerator(c)

	return c
}

// Create creates a new runnable task and implements the tasks.Commander interface.
func (c *Commander) Create(ctx context.Context, _ tasks.Factory, payload []byte) (taskrun.Runnable, error) {
	def := new(Definition)
	if err := yaml.Unmarshal(payload, def); err != nil {
		return nil, errors.Join(tasks.ErrYamlUnmarshal, err)
	}

	base, err := def.ToBaseTask()
	if err != nil {
		return nil, errors.Join(tasks.NewErrTaskCreate(def.Name), err)
	}

	return New(ctx, base, def.CommandLine, def.SuccessExitCodes, def.SkipExitCodes, def.OutputFile)
}

// CreateFromHcl creates a new runnable task from a decoded HCL task block.
func (c *Commander) CreateFromHcl(
	ctx context.Context, _ tasks.Factory, block *hcl.TaskBlock,
) (taskrun.Runnable, error) {
	base, err := tasks.HclTaskToBaseTask(block)
	if err != nil {
		return nil, errors.Join(tasks.NewErrTaskCreate(block.Name), err)
	}

	return New(ctx, base, block.CommandLine, block.SuccessExitCodes, block.SkipExitCodes, block.OutputFile)
}

// GetSchemaFields returns the schema fields for the shelltask type.
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
	return "Executes a command line through the system shell"
}

// GetExampleDefinition returns an example definition for YAML generation.
func (c *Commander) GetExampleDefinition() interface{} {
	return &Definition{
		BaseDefinition: tasks.BaseDefinition{
			Type: taskType,
			Name: "example-shell-task",
		},
		CommandLine: "echo 'Hello, World!'",
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

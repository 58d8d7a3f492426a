// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package serialtask

import (
	"context"
	"testing"

	"github.com/halvfigur/snyke/internal/taskregistry"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/halvfigur/snyke/internal/tasks"
	"github.com/halvfigur/snyke/internal/tasks/shelltask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *taskregistry.Registry {
	return taskregistry.New(
		Register,
		shelltask.Register,
	)
}

func TestCommander_Create_Success(t *testing.T) {
	t.Run("simple serial task with shell tasks", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Test Serial Task"
working_directory: "/tmp"
runs_on_condition: "success"
env:
  TEST_VAR: "test_value"
tasks:
  - type: "shell"
    name: "First Task"
    command_line: "echo hello"
  - type: "shell"
    name: "Second Task"
    command_line: "echo world"
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		require.NoError(t, err)
		require.NotNil(t, runnable)

		group, ok := runnable.(*taskrun.SerialGroup)
		require.True(t, ok, "Expected SerialGroup, got %T", runnable)

		assert.Equal(t, "Test Serial Task", group.Label)
		assert.Equal(t, "/tmp", group.Cwd)
		assert.Equal(t, taskrun.RunOnSuccess, group.RunsOnCondition)
		assert.Equal(t, map[string]string{"TEST_VAR": "test_value"}, group.Env)

		assert.Len(t, group.Tasks, 2)

		for i, task := range group.Tasks {
			assert.Equal(t, group, task.GetParent(), "Task %d should have the serial group as parent", i)
		}
	})

	t.Run("empty tasks list", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Empty Serial Task"
tasks: []
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		require.NoError(t, err)
		require.NotNil(t, runnable)

		group, ok := runnable.(*taskrun.SerialGroup)
		require.True(t, ok)

		assert.Equal(t, "Empty Serial Task", group.Label)
		assert.Empty(t, group.Tasks)
	})

	t.Run("nested serial tasks", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Nested Serial Task"
tasks:
  - type: "serial"
    name: "Inner Serial"
    tasks:
      - type: "shell"
        name: "Nested Task"
        command_line: "echo nested"
  - type: "shell"
    name: "Outer Task"
    command_line: "echo outer"
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		require.NoError(t, err)
		require.NotNil(t, runnable)

		group, ok := runnable.(*taskrun.SerialGroup)
		require.True(t, ok)

		assert.Equal(t, "Nested Serial Task", group.Label)
		assert.Len(t, group.Tasks, 2)

		inner, ok := group.Tasks[0].(*taskrun.SerialGroup)
		require.True(t, ok, "Expected nested SerialGroup, got %T", group.Tasks[0])
		assert.Equal(t, "Inner Serial", inner.Label)
		assert.Len(t, inner.Tasks, 1)
	})

	t.Run("environment variables inherited by the group", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Env Test"
env:
  PARENT_VAR: "parent_value"
  COMPLEX_VAR: "value with spaces and symbols !@#$%"
runs_on_condition: "always"
tasks:
  - type: "shell"
    name: "Env Task"
    command_line: "env | grep PARENT"
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		require.NoError(t, err)
		require.NotNil(t, runnable)

		group, ok := runnable.(*taskrun.SerialGroup)
		require.True(t, ok)

		assert.Equal(t, "Env Test", group.Label)
		assert.Equal(t, taskrun.RunOnAlways, group.RunsOnCondition)
		assert.Contains(t, group.Env, "PARENT_VAR")
		assert.Equal(t, "value with spaces and symbols !@#$%", group.Env["COMPLEX_VAR"])
	})
}

func TestCommander_Create_TaskGroups(t *testing.T) {
	t.Run("resolves a registered task group", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		registry := newTestRegistry()
		registry.AddTaskGroup("build_steps", []any{
			map[string]any{
				"type":         "shell",
				"name":         "compile",
				"command_line": "echo compile",
			},
			map[string]any{
				"type":         "shell",
				"name":         "link",
				"command_line": "echo link",
			},
		})

		yamlPayload := []byte(`
type: serial
name: "Grouped Task"
task_group: build_steps
`)

		runnable, err := commander.Create(ctx, registry, yamlPayload)
		require.NoError(t, err)
		require.NotNil(t, runnable)

		group, ok := runnable.(*taskrun.SerialGroup)
		require.True(t, ok)

		assert.Equal(t, "Grouped Task", group.Label)
		require.Len(t, group.Tasks, 2)
		assert.Equal(t, "compile", group.Tasks[0].GetLabel())
		assert.Equal(t, "link", group.Tasks[1].GetLabel())
	})

	t.Run("unknown task group", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Grouped Task"
task_group: does_not_exist
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		assert.Nil(t, runnable)
		require.Error(t, err)
		require.ErrorIs(t, err, taskregistry.ErrUnknownTaskGroup)
	})

	t.Run("both tasks and task group", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Conflicted Task"
task_group: build_steps
tasks:
  - type: "shell"
    name: "Inline Task"
    command_line: "echo inline"
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		assert.Nil(t, runnable)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrBothTasksAndGroup)
	})
}

func TestCommander_Create_Errors(t *testing.T) {
	t.Run("invalid YAML", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Test Task"
tasks: [
  invalid yaml structure
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		assert.Nil(t, runnable)
		require.Error(t, err)
		require.ErrorIs(t, err, tasks.ErrYamlUnmarshal)
	})

	t.Run("invalid base definition", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Test Task"
runs_on_condition: "invalid_condition"
tasks:
  - type: "shell"
    name: "Test Task"
    command_line: "echo test"
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		assert.Nil(t, runnable)
		require.Error(t, err)

		var taskCreateErr *tasks.ErrTaskCreate

		require.ErrorAs(t, err, &taskCreateErr)
	})

	t.Run("task with unknown sub-task type", func(t *testing.T) {
		ctx := context.Background()
		commander := NewCommander()

		yamlPayload := []byte(`
type: serial
name: "Test Task"
tasks:
  - type: "nonexistent_task_type"
    name: "Invalid Task"
    some_field: "value"
`)

		runnable, err := commander.Create(ctx, newTestRegistry(), yamlPayload)
		assert.Nil(t, runnable)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create runnable for task 0")
	})
}

func TestDefinition_Structure(t *testing.T) {
	t.Run("definition includes BaseDefinition", func(t *testing.T) {
		def := &Definition{}

		def.Type = "serial"
		def.Name = "test"
		def.WorkingDirectory = "/tmp"
		def.RunsOnCondition = "success"
		def.Env = map[string]string{"key": "value"}
		def.Tasks = []any{}
		def.TaskGroup = ""

		assert.Equal(t, "serial", def.Type)
		assert.Equal(t, "test", def.Name)
		assert.Equal(t, "/tmp", def.WorkingDirectory)
		assert.Equal(t, "success", def.RunsOnCondition)
		assert.Equal(t, map[string]string{"key": "value"}, def.Env)
		assert.Equal(t, []any{}, def.Tasks)
	})
}

func TestCommander_SchemaDocumentation(t *testing.T) {
	commander := NewCommander()

	assert.Equal(t, "serial", commander.GetTaskType())
	assert.NotEmpty(t, commander.GetTaskDescription())

	fields := commander.GetSchemaFields()
	require.NotEmpty(t, fields)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	assert.Contains(t, names, "type")
	assert.Contains(t, names, "tasks")
	assert.Contains(t, names, "task_group")
}

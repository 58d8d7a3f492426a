// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tasks

import (
	"errors"
	"testing"

	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrTaskCreate tests the ErrTaskCreate error type
func TestErrTaskCreate(t *testing.T) {
	t.Run("Error method returns formatted string", func(t *testing.T) {
		err := &ErrTaskCreate{taskName: "test-task"}
		expected := `failed to create task "test-task"`
		assert.Equal(t, expected, err.Error())
	})

	t.Run("Error method with empty task name", func(t *testing.T) {
		err := &ErrTaskCreate{taskName: ""}
		expected := `failed to create task ""`
		assert.Equal(t, expected, err.Error())
	})
}

// TestNewErrTaskCreate tests the NewErrTaskCreate function
func TestNewErrTaskCreate(t *testing.T) {
	t.Run("creates ErrTaskCreate with task name", func(t *testing.T) {
		err := NewErrTaskCreate("shell-task")

		require.Error(t, err)

		var taskErr *ErrTaskCreate
		assert.True(t, errors.As(err, &taskErr))
		assert.Equal(t, "shell-task", taskErr.taskName)
		assert.Equal(t, `failed to create task "shell-task"`, err.Error())
	})

	t.Run("returns error interface", func(t *testing.T) {
		err := NewErrTaskCreate("test")
		assert.Implements(t, (*error)(nil), err)
	})
}

// TestBaseDefinition_ToBaseTask tests the ToBaseTask method
func TestBaseDefinition_ToBaseTask(t *testing.T) {
	t.Run("successful conversion with all fields", func(t *testing.T) {
		def := &BaseDefinition{
			Type:             "shell",
			Name:             "Test Task",
			WorkingDirectory: "/tmp",
			RunsOnCondition:  "success",
			RunsOnExitCodes:  []int{0, 1},
			Env: map[string]string{
				"VAR1": "value1",
				"VAR2": "value2",
			},
		}

		base, err := def.ToBaseTask()
		require.NoError(t, err)
		require.NotNil(t, base)

		assert.Equal(t, "Test Task", base.Label)
		assert.Equal(t, "/tmp", base.Cwd)
		assert.Equal(t, taskrun.RunOnSuccess, base.RunsOnCondition)
		assert.Equal(t, []int{0, 1}, base.RunsOnExitCodes)
		assert.Equal(t, map[string]string{"VAR1": "value1", "VAR2": "value2"}, base.Env)
	})

	t.Run("successful conversion with minimal fields", func(t *testing.T) {
		def := &BaseDefinition{
			Type: "shell",
			Name: "Minimal Task",
		}

		base, err := def.ToBaseTask()
		require.NoError(t, err)
		require.NotNil(t, base)

		assert.Equal(t, "Minimal Task", base.Label)
		assert.Equal(t, "", base.Cwd)
		assert.Equal(t, taskrun.RunOnSuccess, base.RunsOnCondition)
		assert.Equal(t, []int{0}, base.RunsOnExitCodes)
		assert.Empty(t, base.Env)
	})

	t.Run("defaults empty RunsOnCondition to success", func(t *testing.T) {
		def := &BaseDefinition{
			Type:            "shell",
			Name:            "Default Condition",
			RunsOnCondition: "",
		}

		base, err := def.ToBaseTask()
		require.NoError(t, err)
		require.NotNil(t, base)

		assert.Equal(t, taskrun.RunOnSuccess, base.RunsOnCondition)
		assert.Equal(t, "success", def.RunsOnCondition)
	})

	t.Run("handles different run conditions", func(t *testing.T) {
		testCases := []struct {
			name      string
			condition string
			expected  taskrun.RunCondition
		}{
			{"success condition", "success", taskrun.RunOnSuccess},
			{"error condition", "error", taskrun.RunOnError},
			{"always condition", "always", taskrun.RunOnAlways},
			{"exit-codes condition", "exit-codes", taskrun.RunOnExitCodes},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				def := &BaseDefinition{
					Type:            "shell",
					Name:            "Test",
					RunsOnCondition: tc.condition,
				}

				base, err := def.ToBaseTask()
				require.NoError(t, err)
				assert.Equal(t, tc.expected, base.RunsOnCondition)
			})
		}
	})

	t.Run("error with invalid run condition", func(t *testing.T) {
		def := &BaseDefinition{
			Type:            "shell",
			Name:            "Invalid Condition",
			RunsOnCondition: "invalid-condition",
		}

		base, err := def.ToBaseTask()
		assert.Error(t, err)
		assert.Nil(t, base)
		assert.True(t, errors.Is(err, ErrYamlUnmarshal))
	})

	t.Run("preserves all exit codes", func(t *testing.T) {
		exitCodes := []int{0, 1, 2, 255, 127}
		def := &BaseDefinition{
			Type:            "shell",
			Name:            "Multiple Exit Codes",
			RunsOnCondition: "exit-codes",
			RunsOnExitCodes: exitCodes,
		}

		base, err := def.ToBaseTask()
		require.NoError(t, err)
		assert.Equal(t, exitCodes, base.RunsOnExitCodes)
	})
}

// TestBaseDefinition_Mutability tests that ToBaseTask doesn't share state with the definition
func TestBaseDefinition_Mutability(t *testing.T) {
	t.Run("ToBaseTask doesn't modify original definition", func(t *testing.T) {
		def := &BaseDefinition{
			Type:             "shell",
			Name:             "Original",
			WorkingDirectory: "/original",
			RunsOnCondition:  "success",
			RunsOnExitCodes:  []int{0, 1},
			Env:              map[string]string{"KEY": "value"},
		}

		base, err := def.ToBaseTask()
		require.NoError(t, err)

		base.Label = "Modified"
		base.Cwd = "/modified"
		base.Env["NEW_KEY"] = "new_value"
		base.RunsOnExitCodes[0] = 999

		assert.Equal(t, "Original", def.Name)
		assert.Equal(t, "/original", def.WorkingDirectory)
		assert.Equal(t, map[string]string{"KEY": "value"}, def.Env)
		assert.Equal(t, []int{0, 1}, def.RunsOnExitCodes)
	})
}

// TestHclTaskToBaseTask tests conversion of HCL task blocks
func TestHclTaskToBaseTask(t *testing.T) {
	t.Run("successful conversion with all fields", func(t *testing.T) {
		block := &hcl.TaskBlock{
			Type:             "shell",
			Name:             "hcl-task",
			WorkingDirectory: "/srv",
			RunsOnCondition:  "always",
			RunsOnExitCodes:  []int{0, 2},
			Env:              map[string]string{"MODE": "fast"},
		}

		base, err := HclTaskToBaseTask(block)
		require.NoError(t, err)
		require.NotNil(t, base)

		assert.Equal(t, "hcl-task", base.Label)
		assert.Equal(t, "/srv", base.Cwd)
		assert.Equal(t, taskrun.RunOnAlways, base.RunsOnCondition)
		assert.Equal(t, []int{0, 2}, base.RunsOnExitCodes)
		assert.Equal(t, map[string]string{"MODE": "fast"}, base.Env)
	})

	t.Run("defaults empty RunsOnCondition to success", func(t *testing.T) {
		block := &hcl.TaskBlock{
			Type: "shell",
			Name: "defaulted",
		}

		base, err := HclTaskToBaseTask(block)
		require.NoError(t, err)
		assert.Equal(t, taskrun.RunOnSuccess, base.RunsOnCondition)
	})

	t.Run("error with invalid run condition", func(t *testing.T) {
		block := &hcl.TaskBlock{
			Type:            "shell",
			Name:            "broken",
			RunsOnCondition: "whenever",
		}

		base, err := HclTaskToBaseTask(block)
		assert.Error(t, err)
		assert.Nil(t, base)
		assert.True(t, errors.Is(err, ErrHclConfig))
	})
}

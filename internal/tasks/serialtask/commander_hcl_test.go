// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package serialtask

import (
	"context"
	"testing"

	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/halvfigur/snyke/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommander_CreateFromHcl(t *testing.T) {
	ctx := context.Background()
	commander := NewCommander()

	testCases := []struct {
		name           string
		block          *hcl.TaskBlock
		expectError    bool
		errorType      error
		validateResult func(t *testing.T, runnable taskrun.Runnable)
	}{
		{
			name: "valid HCL with single task",
			block: &hcl.TaskBlock{
				Type: "serial",
				Name: "test-serial",
				Tasks: []*hcl.TaskBlock{
					{
						Type:        "shell",
						Name:        "shell-task-1",
						CommandLine: "echo 'test1'",
					},
				},
			},
			expectError: false,
			validateResult: func(t *testing.T, runnable taskrun.Runnable) {
				group, ok := runnable.(*taskrun.SerialGroup)
				require.True(t, ok, "expected SerialGroup")
				assert.Contains(t, group.GetLabel(), "test-serial")
				assert.Len(t, group.Tasks, 1)
			},
		},
		{
			name: "valid HCL with multiple tasks",
			block: &hcl.TaskBlock{
				Type: "serial",
				Name: "test-multi-serial",
				Tasks: []*hcl.TaskBlock{
					{
						Type:        "shell",
						Name:        "shell-task-1",
						CommandLine: "echo 'test1'",
					},
					{
						Type:        "shell",
						Name:        "shell-task-2",
						CommandLine: "echo 'test2'",
					},
					{
						Type:        "shell",
						Name:        "shell-task-3",
						CommandLine: "echo 'test3'",
					},
				},
			},
			expectError: false,
			validateResult: func(t *testing.T, runnable taskrun.Runnable) {
				group, ok := runnable.(*taskrun.SerialGroup)
				require.True(t, ok, "expected SerialGroup")
				assert.Len(t, group.Tasks, 3)

				for i, task := range group.Tasks {
					assert.Equal(t, group, task.GetParent(), "task %d should have the group as parent", i)
				}
			},
		},
		{
			name: "valid HCL with working directory",
			block: &hcl.TaskBlock{
				Type:             "serial",
				Name:             "test-serial-wd",
				WorkingDirectory: "/tmp",
				Tasks: []*hcl.TaskBlock{
					{
						Type:        "shell",
						Name:        "shell-task",
						CommandLine: "pwd",
					},
				},
			},
			expectError: false,
			validateResult: func(t *testing.T, runnable taskrun.Runnable) {
				group, ok := runnable.(*taskrun.SerialGroup)
				require.True(t, ok, "expected SerialGroup")
				assert.Equal(t, "/tmp", group.Cwd)
			},
		},
		{
			name: "valid HCL with environment variables",
			block: &hcl.TaskBlock{
				Type: "serial",
				Name: "test-serial-env",
				Env: map[string]string{
					"TEST_VAR": "test_value",
				},
				Tasks: []*hcl.TaskBlock{
					{
						Type:        "shell",
						Name:        "shell-task",
						CommandLine: "env | grep TEST",
					},
				},
			},
			expectError: false,
			validateResult: func(t *testing.T, runnable taskrun.Runnable) {
				group, ok := runnable.(*taskrun.SerialGroup)
				require.True(t, ok, "expected SerialGroup")
				assert.Equal(t, map[string]string{"TEST_VAR": "test_value"}, group.Env)
			},
		},
		{
			name: "valid HCL with runs on condition",
			block: &hcl.TaskBlock{
				Type:            "serial",
				Name:            "test-serial-condition",
				RunsOnCondition: "always",
				Tasks: []*hcl.TaskBlock{
					{
						Type:        "shell",
						Name:        "shell-task",
						CommandLine: "echo 'conditional'",
					},
				},
			},
			expectError: false,
			validateResult: func(t *testing.T, runnable taskrun.Runnable) {
				group, ok := runnable.(*taskrun.SerialGroup)
				require.True(t, ok, "expected SerialGroup")
				assert.Equal(t, taskrun.RunOnAlways, group.RunsOnCondition)
			},
		},
		{
			name: "empty tasks list",
			block: &hcl.TaskBlock{
				Type:  "serial",
				Name:  "test-empty-serial",
				Tasks: []*hcl.TaskBlock{},
			},
			expectError: false,
			validateResult: func(t *testing.T, runnable taskrun.Runnable) {
				group, ok := runnable.(*taskrun.SerialGroup)
				require.True(t, ok, "expected SerialGroup")
				assert.Empty(t, group.Tasks)
			},
		},
		{
			name: "invalid runs on condition",
			block: &hcl.TaskBlock{
				Type:            "serial",
				Name:            "test-invalid-condition",
				RunsOnCondition: "invalid-condition",
				Tasks: []*hcl.TaskBlock{
					{
						Type:        "shell",
						Name:        "shell-task",
						CommandLine: "echo 'test'",
					},
				},
			},
			expectError: true,
			errorType:   tasks.ErrHclConfig,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runnable, err := commander.CreateFromHcl(ctx, newTestRegistry(), tc.block)

			if tc.expectError {
				require.Error(t, err)

				if tc.errorType != nil {
					require.ErrorIs(t, err, tc.errorType)
				}

				assert.Nil(t, runnable)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, runnable)

			if tc.validateResult != nil {
				tc.validateResult(t, runnable)
			}
		})
	}
}

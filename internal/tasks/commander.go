// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tasks provides the shared definition types and interfaces used to
// build runnable tasks from taskfile payloads.
package tasks

import (
	"context"

	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
)

// FactoryContextKey is the context key under which the task registry
// travels from main to the command actions.
type FactoryContextKey struct{}

// Factory resolves task definitions into runnables. It is implemented by the
// task registry and passed into Commanders so that group task types can build
// their children without reaching for package-level state.
type Factory interface {
	// CreateRunnableFromYAML creates a runnable from a raw YAML task definition.
	CreateRunnableFromYAML(ctx context.Context, yamlData []byte) (taskrun.Runnable, error)
	// CreateRunnableFromHcl creates a runnable from a decoded HCL task block.
	CreateRunnableFromHcl(ctx context.Context, block *hcl.TaskBlock) (taskrun.Runnable, error)
	// ResolveTaskGroup returns the task definitions of a named task group,
	// validating any nested group references.
	ResolveTaskGroup(name string) ([]any, error)
}

// Commander is an interface for creating runnable tasks.
type Commander interface {
	// Create creates a runnable from the raw YAML payload of a task definition.
	// Group task types use the supplied factory to create their children.
	Create(ctx context.Context, factory Factory, payload []byte) (taskrun.Runnable, error)
}

// HclCommander is implemented by commanders that can build runnables directly
// from HCL task blocks.
type HclCommander interface {
	CreateFromHcl(ctx context.Context, factory Factory, block *hcl.TaskBlock) (taskrun.Runnable, error)
}

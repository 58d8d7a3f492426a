// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskregistry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/halvfigur/snyke/internal/tasks"
)

var (
	// ErrUnknownTaskType is returned when a task type is not registered.
	ErrUnknownTaskType = errors.New("unknown task type")
	// ErrTaskCreation is returned when a task cannot be created.
	ErrTaskCreation = errors.New("failed to create task")
	// ErrTaskUnmarshal is returned when a task cannot be unmarshaled.
	ErrTaskUnmarshal = errors.New("failed to unmarshal task definition")
	// ErrUnknownTaskGroup is returned when a task group reference cannot be resolved.
	ErrUnknownTaskGroup = errors.New("unknown task group")
	// ErrHclNotSupported is returned when a task type has no HCL support.
	ErrHclNotSupported = errors.New("task type cannot be built from HCL")
	// ErrCircularDependency is returned when task groups reference each other in a cycle.
	ErrCircularDependency = errors.New("circular dependency detected in task groups")
	// ErrMaxRecursionDepth is returned when task group nesting exceeds MaxRecursionDepth.
	ErrMaxRecursionDepth = errors.New("maximum task group recursion depth exceeded")
)

// MaxRecursionDepth bounds how deeply task groups may reference each other.
const MaxRecursionDepth = 100

// Registration adds a task type to a registry. Task type packages export
// one for New to apply.
type Registration func(*Registry)

// Registry holds the mapping between task types and their commanders,
// together with the named task groups that definitions may reference.
type Registry struct {
	commanders map[string]tasks.Commander
	groups     map[string][]any
}

var _ tasks.Factory = (*Registry)(nil)

// New creates a Registry and applies the given registrations.
func New(registrations ...Registration) *Registry {
	r := &Registry{
		commanders: make(map[string]tasks.Commander),
		groups:     make(map[string][]any),
	}

	for _, register := range registrations {
		register(r)
	}

	return r
}

// Register registers a new task type with its commander.
func (r *Registry) Register(taskType string, commander tasks.Commander) {
	r.commanders[taskType] = commander
}

// Get returns the commander for the given task type.
func (r *Registry) Get(taskType string) (tasks.Commander, bool) {
	commander, ok := r.commanders[taskType]
	return commander, ok
}

// TaskTypes returns the registered task types in lexical order.
func (r *Registry) TaskTypes() []string {
	types := make([]string, 0, len(r.commanders))
	for taskType := range r.commanders {
		types = append(types, taskType)
	}

	sort.Strings(types)

	return types
}

// AddTaskGroup registers a named group of task definitions.
func (r *Registry) AddTaskGroup(name string, taskDefs []any) {
	r.groups[name] = taskDefs
}

// ResolveTaskGroup returns the task definitions of a named group after
// validating that every nested group reference resolves and that the
// reference graph is acyclic.
func (r *Registry) ResolveTaskGroup(name string) ([]any, error) {
	if err := r.validateGroup(name, nil, 0); err != nil {
		return nil, err
	}

	return r.groups[name], nil
}

func (r *Registry) validateGroup(name string, path []string, depth int) error {
	if depth >= MaxRecursionDepth {
		return fmt.Errorf("%w (%d): %s",
			ErrMaxRecursionDepth, MaxRecursionDepth, strings.Join(append(slices.Clone(path), name), " → "))
	}

	if idx := slices.Index(path, name); idx >= 0 {
		return fmt.Errorf("%w: %s", ErrCircularDependency, formatCircularDependencyPath(path[idx:]))
	}

	group, ok := r.groups[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTaskGroup, name)
	}

	return r.validateItems(group, append(path, name), depth)
}

func (r *Registry) validateItems(items []any, path []string, depth int) error {
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if ref, ok := m["task_group"].(string); ok && ref != "" {
			if err := r.validateGroup(ref, path, depth+1); err != nil {
				return err
			}
		}

		if nested, ok := m["tasks"].([]any); ok {
			if err := r.validateItems(nested, path, depth); err != nil {
				return err
			}
		}
	}

	return nil
}

// formatCircularDependencyPath renders a dependency cycle, ending back at
// the first group to show where the loop closes.
func formatCircularDependencyPath(path []string) string {
	if len(path) == 0 {
		return "unknown path"
	}

	return strings.Join(append(slices.Clone(path), path[0]), " → ")
}

// taskType probes the type discriminator of a task definition.
type taskType struct {
	Type string `yaml:"type"`
}

// CreateRunnableFromYAML creates a runnable from YAML data using the
// registered commanders.
func (r *Registry) CreateRunnableFromYAML(ctx context.Context, yamlData []byte) (taskrun.Runnable, error) {
	var tt taskType
	if err := yaml.Unmarshal(yamlData, &tt); err != nil {
		return nil, errors.Join(ErrTaskUnmarshal, err)
	}

	commander, exists := r.commanders[tt.Type]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTaskType, tt.Type)
	}

	runnable, err := commander.Create(ctx, r, yamlData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTaskCreation, tt.Type, err)
	}

	return runnable, nil
}

// CreateRunnableFromHcl creates a runnable from a decoded HCL task block
// using the registered commanders.
func (r *Registry) CreateRunnableFromHcl(ctx context.Context, block *hcl.TaskBlock) (taskrun.Runnable, error) {
	commander, exists := r.commanders[block.Type]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTaskType, block.Type)
	}

	hclCommander, ok := commander.(tasks.HclCommander)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHclNotSupported, block.Type)
	}

	runnable, err := hclCommander.CreateFromHcl(ctx, r, block)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTaskCreation, block.Type, err)
	}

	return runnable, nil
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskfile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskregistry"
	"github.com/halvfigur/snyke/internal/taskrun"
)

var (
	// ErrInvalidYaml is returned when the taskfile cannot be parsed as YAML.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrNoTasks is returned when a taskfile declares no tasks.
	ErrNoTasks = errors.New("no tasks specified")
	// ErrNoTargets is returned when a target build is requested without
	// any target names.
	ErrNoTargets = errors.New("no targets specified")
	// ErrUnknownTarget is returned when a requested target is neither
	// declared in the taskfile nor built in.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrUnnamedGroup is returned when a task group has a blank name.
	ErrUnnamedGroup = errors.New("task group must have a name")
	// ErrDuplicateGroup is returned when two task groups share a name.
	ErrDuplicateGroup = errors.New("duplicate task group name")
)

// Definition represents the root taskfile structure.
type Definition struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	TaskGroups  []TaskGroup `yaml:"task_groups,omitempty"`
	Tasks       []any       `yaml:"tasks"`
}

// TaskGroup is a named, reusable list of task definitions. Serial and
// parallel tasks reference a group by name instead of declaring their
// tasks inline.
type TaskGroup struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Tasks       []any  `yaml:"tasks"`
}

// Target describes a top level task in a taskfile.
type Target struct {
	// Name is the target's task name.
	Name string
	// Type is the target's task type.
	Type string
	// BuiltIn is true for targets supplied by the built-in taskfile
	// rather than declared in the project's own.
	BuiltIn bool
}

func parseDefinition(yamlData []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(yamlData, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	return &def, nil
}

// registerGroups adds the taskfile's task groups to the registry so that
// serial and parallel tasks can resolve them during the build.
func registerGroups(registry *taskregistry.Registry, def *Definition) error {
	seen := make(map[string]struct{}, len(def.TaskGroups))

	for _, group := range def.TaskGroups {
		if strings.TrimSpace(group.Name) == "" {
			return ErrUnnamedGroup
		}

		if _, ok := seen[group.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateGroup, group.Name)
		}

		seen[group.Name] = struct{}{}

		registry.AddTaskGroup(group.Name, group.Tasks)
	}

	return nil
}

type targetProbe struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

func probeTask(item any) (*targetProbe, error) {
	itemYAML, err := yaml.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	probe := &targetProbe{}
	if err := yaml.Unmarshal(itemYAML, probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	return probe, nil
}

// BuildFromYAML creates a runnable from a YAML taskfile. Every top level
// task is built and the results are wrapped in a serial group labeled
// with the taskfile's name.
func BuildFromYAML(
	ctx context.Context, registry *taskregistry.Registry, yamlData []byte,
) (taskrun.Runnable, error) {
	def, err := parseDefinition(yamlData)
	if err != nil {
		return nil, err
	}

	if len(def.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	if err := registerGroups(registry, def); err != nil {
		return nil, err
	}

	return assembleSerial(ctx, registry, def.Name, def.Tasks)
}

// BuildTargets creates a runnable for the named targets of a YAML
// taskfile, in the order the names are given. Names not declared in the
// taskfile fall back to the built-in targets. When parallel is true the
// targets run all at once instead of one after another.
func BuildTargets(
	ctx context.Context,
	registry *taskregistry.Registry,
	yamlData []byte,
	names []string,
	parallel bool,
) (taskrun.Runnable, error) {
	if len(names) == 0 {
		return nil, ErrNoTargets
	}

	def, err := parseDefinition(yamlData)
	if err != nil {
		return nil, err
	}

	if err := registerGroups(registry, def); err != nil {
		return nil, err
	}

	index, err := targetIndex(def.Tasks)
	if err != nil {
		return nil, err
	}

	selected, err := selectTargets(index, names)
	if err != nil {
		return nil, err
	}

	if parallel {
		return assembleParallel(ctx, registry, def.Name, selected)
	}

	return assembleSerial(ctx, registry, def.Name, selected)
}

// Targets returns the targets of a YAML taskfile, followed by any
// built-in targets not shadowed by it.
func Targets(yamlData []byte) ([]Target, error) {
	def, err := parseDefinition(yamlData)
	if err != nil {
		return nil, err
	}

	targets := make([]Target, 0, len(def.Tasks))
	declared := make(map[string]struct{}, len(def.Tasks))

	for _, item := range def.Tasks {
		probe, err := probeTask(item)
		if err != nil {
			return nil, err
		}

		targets = append(targets, Target{Name: probe.Name, Type: probe.Type})
		declared[probe.Name] = struct{}{}
	}

	for _, name := range builtinTargetNames() {
		if _, ok := declared[name]; ok {
			continue
		}

		probe, err := probeTask(builtinTargets()[name])
		if err != nil {
			return nil, err
		}

		targets = append(targets, Target{Name: probe.Name, Type: probe.Type, BuiltIn: true})
	}

	return targets, nil
}

// targetIndex maps target names to their task definitions. The first
// declaration of a name wins.
func targetIndex(items []any) (map[string]any, error) {
	index := make(map[string]any, len(items))

	for _, item := range items {
		probe, err := probeTask(item)
		if err != nil {
			return nil, err
		}

		if _, ok := index[probe.Name]; ok {
			continue
		}

		index[probe.Name] = item
	}

	return index, nil
}

func selectTargets(index map[string]any, names []string) ([]any, error) {
	builtins := builtinTargets()
	selected := make([]any, 0, len(names))

	for _, name := range names {
		item, ok := index[name]
		if !ok {
			item, ok = builtins[name]
		}

		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}

		selected = append(selected, item)
	}

	return selected, nil
}

func assembleSerial(
	ctx context.Context, registry *taskregistry.Registry, label string, items []any,
) (taskrun.Runnable, error) {
	group := &taskrun.SerialGroup{
		BaseTask: taskrun.NewBaseTask(label, ".", taskrun.RunOnSuccess, nil, nil),
	}

	runnables, err := buildChildren(ctx, registry, group, items)
	if err != nil {
		return nil, err
	}

	group.Tasks = runnables

	return group, nil
}

func assembleParallel(
	ctx context.Context, registry *taskregistry.Registry, label string, items []any,
) (taskrun.Runnable, error) {
	group := &taskrun.ParallelGroup{
		BaseTask: taskrun.NewBaseTask(label, ".", taskrun.RunOnSuccess, nil, nil),
	}

	runnables, err := buildChildren(ctx, registry, group, items)
	if err != nil {
		return nil, err
	}

	group.Tasks = runnables

	return group, nil
}

func buildChildren(
	ctx context.Context, registry *taskregistry.Registry, parent taskrun.Runnable, items []any,
) ([]taskrun.Runnable, error) {
	runnables := make([]taskrun.Runnable, 0, len(items))

	for i, item := range items {
		itemYAML, err := yaml.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal task %d: %w", i, err)
		}

		runnable, err := registry.CreateRunnableFromYAML(ctx, itemYAML)
		if err != nil {
			return nil, fmt.Errorf("failed to create runnable for task %d: %w", i, err)
		}

		runnable.SetParent(parent)

		runnables = append(runnables, runnable)
	}

	return runnables, nil
}

// BuildFromHcl creates a runnable from a parsed HCL taskfile. Every top
// level task block is built and the results are wrapped in a serial
// group labeled with the taskfile's name.
func BuildFromHcl(
	ctx context.Context, registry *taskregistry.Registry, cfg *hcl.Config,
) (taskrun.Runnable, error) {
	if len(cfg.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	group := &taskrun.SerialGroup{
		BaseTask: taskrun.NewBaseTask(cfg.Name, ".", taskrun.RunOnSuccess, nil, nil),
	}

	runnables, err := buildHclChildren(ctx, registry, group, cfg.Tasks)
	if err != nil {
		return nil, err
	}

	group.Tasks = runnables

	return group, nil
}

// BuildHclTargets creates a runnable for the named targets of a parsed
// HCL taskfile. Names not declared in the taskfile fall back to the
// built-in targets, which are defined in YAML.
func BuildHclTargets(
	ctx context.Context,
	registry *taskregistry.Registry,
	cfg *hcl.Config,
	names []string,
	parallel bool,
) (taskrun.Runnable, error) {
	if len(names) == 0 {
		return nil, ErrNoTargets
	}

	index := make(map[string]*hcl.TaskBlock, len(cfg.Tasks))

	for _, block := range cfg.Tasks {
		if _, ok := index[block.Name]; ok {
			continue
		}

		index[block.Name] = block
	}

	if parallel {
		group := &taskrun.ParallelGroup{
			BaseTask: taskrun.NewBaseTask(cfg.Name, ".", taskrun.RunOnSuccess, nil, nil),
		}

		runnables, err := buildHclSelection(ctx, registry, group, index, names)
		if err != nil {
			return nil, err
		}

		group.Tasks = runnables

		return group, nil
	}

	group := &taskrun.SerialGroup{
		BaseTask: taskrun.NewBaseTask(cfg.Name, ".", taskrun.RunOnSuccess, nil, nil),
	}

	runnables, err := buildHclSelection(ctx, registry, group, index, names)
	if err != nil {
		return nil, err
	}

	group.Tasks = runnables

	return group, nil
}

func buildHclSelection(
	ctx context.Context,
	registry *taskregistry.Registry,
	parent taskrun.Runnable,
	index map[string]*hcl.TaskBlock,
	names []string,
) ([]taskrun.Runnable, error) {
	builtins := builtinTargets()
	runnables := make([]taskrun.Runnable, 0, len(names))

	for i, name := range names {
		var (
			runnable taskrun.Runnable
			err      error
		)

		if block, ok := index[name]; ok {
			runnable, err = registry.CreateRunnableFromHcl(ctx, block)
		} else if item, ok := builtins[name]; ok {
			var itemYAML []byte

			itemYAML, err = yaml.Marshal(item)
			if err == nil {
				runnable, err = registry.CreateRunnableFromYAML(ctx, itemYAML)
			}
		} else {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create runnable for task %d: %w", i, err)
		}

		runnable.SetParent(parent)

		runnables = append(runnables, runnable)
	}

	return runnables, nil
}

// HclTargets returns the targets of a parsed HCL taskfile, followed by
// any built-in targets not shadowed by it.
func HclTargets(cfg *hcl.Config) ([]Target, error) {
	targets := make([]Target, 0, len(cfg.Tasks))
	declared := make(map[string]struct{}, len(cfg.Tasks))

	for _, block := range cfg.Tasks {
		targets = append(targets, Target{Name: block.Name, Type: block.Type})
		declared[block.Name] = struct{}{}
	}

	for _, name := range builtinTargetNames() {
		if _, ok := declared[name]; ok {
			continue
		}

		probe, err := probeTask(builtinTargets()[name])
		if err != nil {
			return nil, err
		}

		targets = append(targets, Target{Name: probe.Name, Type: probe.Type, BuiltIn: true})
	}

	return targets, nil
}

func buildHclChildren(
	ctx context.Context, registry *taskregistry.Registry, parent taskrun.Runnable, blocks []*hcl.TaskBlock,
) ([]taskrun.Runnable, error) {
	runnables := make([]taskrun.Runnable, 0, len(blocks))

	for i, block := range blocks {
		runnable, err := registry.CreateRunnableFromHcl(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("failed to create runnable for task %d: %w", i, err)
		}

		runnable.SetParent(parent)

		runnables = append(runnables, runnable)
	}

	return runnables, nil
}

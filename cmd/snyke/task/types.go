// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/halvfigur/snyke/internal/schema"
	"github.com/halvfigur/snyke/internal/taskregistry"
	"github.com/urfave/cli/v3"
)

const (
	taskTypeArg = "task-type"
	formatFlag  = "format"
)

// typesCmd is the command that displays schema documentation for task types.
var typesCmd = &cli.Command{
	Name:        "types",
	Description: "Display schema documentation for the task types a taskfile can use",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: taskTypeArg,
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        formatFlag,
			Aliases:     []string{"f"},
			Usage:       "Output format: yaml, markdown, or json",
			DefaultText: "yaml",
			Value:       "yaml",
		},
	},
	Action: typesAction,
}

func typesAction(ctx context.Context, cmd *cli.Command) error {
	registry := registryFrom(ctx)

	taskType := cmd.StringArg(taskTypeArg)
	format := cmd.String(formatFlag)

	// If no task type specified, list all available types; json format
	// emits the schema of the whole taskfile instead.
	if taskType == "" {
		if strings.EqualFold(format, "json") {
			return writeTaskfileSchema(cmd, registry)
		}

		return listTaskTypes(cmd, registry)
	}

	commander, ok := registry.Get(taskType)
	if !ok {
		return cli.Exit(fmt.Sprintf("Unknown task type: %s", taskType), 1)
	}

	writer, ok := commander.(schema.Writer)
	if !ok {
		return cli.Exit(fmt.Sprintf("Task type %s does not support schema generation", taskType), 1)
	}

	switch strings.ToLower(format) {
	case "yaml":
		return writer.WriteYAMLExample(cmd.Writer)
	case "markdown", "md":
		return writer.WriteMarkdownDoc(cmd.Writer)
	case "json":
		return writer.WriteJSONSchema(cmd.Writer)
	default:
		return cli.Exit(fmt.Sprintf("Invalid format: %s. Valid formats: yaml, markdown, json", format), 1)
	}
}

func listTaskTypes(cmd *cli.Command, registry *taskregistry.Registry) error {
	fmt.Fprintln(cmd.Writer, "Available task types:")
	fmt.Fprintln(cmd.Writer)

	for _, taskType := range registry.TaskTypes() {
		fmt.Fprintf(cmd.Writer, "  %-15s - %s\n", taskType, taskTypeDescription(registry, taskType))
	}

	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "Use 'snyke task types <task-type>' to see an example definition.")
	fmt.Fprintln(cmd.Writer, "Use 'snyke task types <task-type> --format markdown' for markdown documentation.")
	fmt.Fprintln(cmd.Writer, "Use 'snyke task types <task-type> --format json' for the JSON Schema.")
	fmt.Fprintln(cmd.Writer, "Use 'snyke task types --format json' for the full taskfile JSON Schema.")

	return nil
}

// writeTaskfileSchema emits a JSON schema covering the whole taskfile,
// with every registered task type that exposes schema information.
func writeTaskfileSchema(cmd *cli.Command, registry *taskregistry.Registry) error {
	providers := make(map[string]schema.Provider)

	for _, taskType := range registry.TaskTypes() {
		commander, ok := registry.Get(taskType)
		if !ok {
			continue
		}

		if provider, ok := commander.(schema.Provider); ok {
			providers[taskType] = provider
		}
	}

	schemaJSON, err := schema.NewGenerator().GenerateJSONSchemaString(providers)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Writer, schemaJSON)

	return nil
}

func taskTypeDescription(registry *taskregistry.Registry, taskType string) string {
	commander, ok := registry.Get(taskType)
	if !ok {
		return "Description not available"
	}

	provider, ok := commander.(schema.Provider)
	if !ok {
		return "Description not available"
	}

	return provider.GetTaskDescription()
}

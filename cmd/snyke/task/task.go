// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package task provides the task runner command family.
package task

import (
	"context"

	"github.com/halvfigur/snyke/internal/config"
	"github.com/halvfigur/snyke/internal/taskfile"
	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskregistry"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/halvfigur/snyke/internal/tasks"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag   = "file"
	cliExitStr = ""
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// TaskCmd groups the task runner commands.
var TaskCmd = &cli.Command{
	Name: "task",
	Description: `Run and inspect development tasks.
Targets are declared in a taskfile (` + taskfile.DefaultYamlName + `, snyke.yml or ` + taskfile.DefaultHclName + `
in the working directory) and fall back to the built-in targets when no
taskfile exists. Built-in targets also fill in for names a taskfile does
not declare itself.`,
	Commands: []*cli.Command{
		runCmd,
		listCmd,
		typesCmd,
		replCmd,
		initCmd,
	},
}

func newFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    fileFlag,
		Aliases: []string{"f"},
		Usage: "Specify the URL of the taskfile to use. " +
			"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
		OnlyOnce: true,
	}
}

// registryFrom pulls the task registry out of the context, where main
// placed it before running the root command.
func registryFrom(ctx context.Context) *taskregistry.Registry {
	return ctx.Value(tasks.FactoryContextKey{}).(*taskregistry.Registry)
}

// resolveLocation returns the taskfile location to load. The --file flag
// wins, then the tasks.file setting of the configuration file. An empty
// result selects the standard discovery order.
func resolveLocation(cmd *cli.Command) (string, error) {
	if location := cmd.String(fileFlag); location != "" {
		return location, nil
	}

	cfg, err := config.Load(FsFactory(), "")
	if err != nil {
		return "", err
	}

	return cfg.Tasks.File, nil
}

// loadTargets parses the source just far enough to enumerate its
// targets, built-in fallbacks included.
func loadTargets(source *taskfile.Source) ([]taskfile.Target, error) {
	if source.Format == taskfile.FormatHCL {
		cfg, err := hcl.ParseConfig(source.Data, source.Path)
		if err != nil {
			return nil, err
		}

		return taskfile.HclTargets(cfg)
	}

	return taskfile.Targets(source.Data)
}

// buildRunnable assembles the named targets of the source into a single
// runnable, dispatching on the taskfile format.
func buildRunnable(
	ctx context.Context,
	registry *taskregistry.Registry,
	source *taskfile.Source,
	names []string,
	parallel bool,
) (taskrun.Runnable, error) {
	if source.Format == taskfile.FormatHCL {
		cfg, err := hcl.ParseConfig(source.Data, source.Path)
		if err != nil {
			return nil, err
		}

		return taskfile.BuildHclTargets(ctx, registry, cfg, names, parallel)
	}

	return taskfile.BuildTargets(ctx, registry, source.Data, names, parallel)
}

// describeSource names the source for log and display output.
func describeSource(source *taskfile.Source) string {
	if source.BuiltIn {
		return "the built-in taskfile"
	}

	return source.Path
}

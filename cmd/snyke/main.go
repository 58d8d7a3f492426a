// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the snyke command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/halvfigur/snyke"
	"github.com/halvfigur/snyke/cmd/snyke/config"
	"github.com/halvfigur/snyke/cmd/snyke/play"
	"github.com/halvfigur/snyke/cmd/snyke/show"
	"github.com/halvfigur/snyke/cmd/snyke/task"
	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/signalbroker"
	"github.com/halvfigur/snyke/internal/taskregistry"
	"github.com/halvfigur/snyke/internal/tasks"
	"github.com/halvfigur/snyke/internal/tasks/paralleltask"
	"github.com/halvfigur/snyke/internal/tasks/serialtask"
	"github.com/halvfigur/snyke/internal/tasks/shelltask"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		play.PlayCmd,
		task.TaskCmd,
		show.ShowCmd,
		config.ConfigCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "snyke",
	Description: `Snyke is a terminal snake game that carries its own task runner.
Play in the terminal with 'snyke play'. Drive the development workflow with
'snyke task run', which executes the targets of a YAML or HCL taskfile with
serial and parallel composition and full result reporting.`,
	Usage:     "snyke play",
	Copyright: "Copyright (c) halvfigur 2026. All rights reserved.",
	Authors: []any{
		"halvfigur",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", snyke.Version, snyke.Commit)

	registry := taskregistry.New(
		serialtask.Register,
		paralleltask.Register,
		shelltask.Register,
	)

	ctx = context.WithValue(ctx, tasks.FactoryContextKey{}, registry)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

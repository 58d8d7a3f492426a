// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"fmt"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/taskfile"
	"github.com/urfave/cli/v3"
)

// listCmd is the command that lists the targets of the active taskfile.
var listCmd = &cli.Command{
	Name: "list",
	Description: `List the targets of the active taskfile.
Built-in targets not shadowed by the taskfile are listed as well, since
they can be run by name like any declared target.`,
	Flags: []cli.Flag{
		newFileFlag(),
	},
	Action: listAction,
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running list command")

	location, err := resolveLocation(cmd)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to resolve taskfile location: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	source, err := taskfile.Load(ctx, FsFactory(), location)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load taskfile: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	targets, err := loadTargets(source)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read targets from %s: %s", describeSource(source), err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	fmt.Fprintf(cmd.Writer, "Targets from %s:\n\n", describeSource(source))

	for _, target := range targets {
		marker := ""
		if target.BuiltIn {
			marker = " (built-in)"
		}

		fmt.Fprintf(cmd.Writer, "  %-15s %s%s\n", target.Name, target.Type, marker)
	}

	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "Use 'snyke task run <target>' to run a target.")

	return nil
}

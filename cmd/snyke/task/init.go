// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"fmt"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/taskfile"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const forceFlag = "force"

// initCmd is the command that writes the built-in taskfile to disk.
var initCmd = &cli.Command{
	Name: "init",
	Description: `Write the built-in taskfile to ` + taskfile.DefaultYamlName + ` as a starting point.
The file declares the standard targets, which can then be edited to fit
the project. An existing taskfile is left alone unless --force is given.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        forceFlag,
			Usage:       "Overwrite an existing taskfile",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
	},
	Action: initAction,
}

func initAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running init command")

	fsys := FsFactory()

	if !cmd.Bool(forceFlag) {
		exists, err := afero.Exists(fsys, taskfile.DefaultYamlName)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to check for existing taskfile: %s", err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		if exists {
			logger.Error(fmt.Sprintf("%s already exists. Use --force to overwrite it.", taskfile.DefaultYamlName))
			return cli.Exit(cliExitStr, 1)
		}
	}

	if err := afero.WriteFile(fsys, taskfile.DefaultYamlName, taskfile.Builtin(), 0o644); err != nil {
		logger.Error(fmt.Sprintf("Failed to write %s: %s", taskfile.DefaultYamlName, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	fmt.Fprintf(cmd.Writer, "Wrote %s\n", taskfile.DefaultYamlName)

	return nil
}

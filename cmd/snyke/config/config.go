// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config provides the commands that inspect and create the
// configuration file.
package config

import (
	"context"
	"fmt"

	"github.com/halvfigur/snyke/internal/config"
	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	configFlag = "config"
	forceFlag  = "force"
	cliExitStr = ""
)

// ConfigCmd groups the configuration commands.
var ConfigCmd = &cli.Command{
	Name: "config",
	Description: `Inspect and create the configuration file.
The configuration covers the game parameters and the task runner
defaults. Values not present in the file fall back to the built-in
defaults, so a partial file is fine.`,
	Commands: []*cli.Command{
		showCmd,
		initCmd,
	},
}

// showCmd prints the effective configuration, defaults layered in.
var showCmd = &cli.Command{
	Name:        "show",
	Description: "Show the effective configuration as YAML, defaults included.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the configuration file. Defaults to " + config.DefaultPath + " in the current directory.",
			TakesFile: true,
			Value:     "",
			OnlyOnce:  true,
		},
	},
	Action: showAction,
}

// initCmd writes the default configuration to disk.
var initCmd = &cli.Command{
	Name: "init",
	Description: `Write the default configuration to ` + config.DefaultPath + ` as a starting point.
An existing file is left alone unless --force is given.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        forceFlag,
			Usage:       "Overwrite an existing configuration file",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
	},
	Action: initAction,
}

func showAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running config show command")

	cfg, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load configuration: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	data, err := cfg.YAML()
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to render configuration: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if _, err := cmd.Writer.Write(data); err != nil {
		logger.Error(fmt.Sprintf("Failed to write configuration: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

func initAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running config init command")

	fsys := afero.NewOsFs()

	if !cmd.Bool(forceFlag) {
		exists, err := afero.Exists(fsys, config.DefaultPath)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to check for existing configuration: %s", err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		if exists {
			logger.Error(fmt.Sprintf("%s already exists. Use --force to overwrite it.", config.DefaultPath))
			return cli.Exit(cliExitStr, 1)
		}
	}

	if err := config.Default().Write(fsys, config.DefaultPath); err != nil {
		logger.Error(fmt.Sprintf("Failed to write %s: %s", config.DefaultPath, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	fmt.Fprintf(cmd.Writer, "Wrote %s\n", config.DefaultPath)

	return nil
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/taskfile"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/halvfigur/snyke/internal/tasktui"
	"github.com/urfave/cli/v3"
)

const (
	outFlag                     = "out"
	noOutputStdErrFlag          = "no-output-stderr"
	outputStdOutFlag            = "output-stdout"
	outputSuccessDetailsFlag    = "output-success-details"
	parallelFlag                = "parallel"
	parallelismFlag             = "parallelism"
	tuiFlag                     = "tui"
	configTimeoutFlag           = "config-timeout"
	configTimeoutSecondsDefault = 30
)

// runCmd is the command that runs taskfile targets.
var runCmd = &cli.Command{
	Name: "run",
	Description: `Run one or more taskfile targets.
Targets are named on the command line and run one after another, or all at
once with --parallel. Without a target the taskfile's first target runs,
like make's default goal.

Taskfile URLs use Hashicorp's go-getter syntax, which allows for fetching
files from various sources. See https://github.com/hashicorp/go-getter.

To save the results to a file, specify the output file name with --out.
`,
	Arguments: []cli.Argument{},
	Flags: []cli.Flag{
		newFileFlag(),
		&cli.StringFlag{
			Name:      outFlag,
			Aliases:   []string{"o"},
			Usage:     "Specify the output file name",
			TakesFile: true,
			Value:     "",
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:        outputSuccessDetailsFlag,
			Aliases:     []string{"success"},
			Usage:       "Include successful results in the output",
			TakesFile:   false,
			DefaultText: "false",
			Value:       false,
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        noOutputStdErrFlag,
			Aliases:     []string{"no-stderr"},
			Usage:       "Exclude stderr output in the results",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        outputStdOutFlag,
			Aliases:     []string{"stdout"},
			Usage:       "Include stdout output in the results",
			TakesFile:   false,
			DefaultText: "false",
			Value:       false,
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        parallelFlag,
			Usage:       "Run the named targets in parallel instead of serially",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
		&cli.IntFlag{
			Name:    parallelismFlag,
			Aliases: []string{"p"},
			Usage: "Set the maximum number of concurrent tasks to run. " +
				"Defaults to the number of CPU cores available.",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:        tuiFlag,
			Aliases:     []string{"t", "interactive"},
			Usage:       "Run with interactive Terminal User Interface (TUI) showing real-time progress",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
		&cli.IntFlag{
			Name:    configTimeoutFlag,
			Aliases: []string{"timeout"},
			Usage: "Set the maximum time in seconds to wait for taskfile loading and building. " +
				"Defaults to 30 seconds.",
			Value: configTimeoutSecondsDefault,
		},
	},
	Action: runAction,
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running run command")

	if cmd.Int(parallelismFlag) > 0 {
		runtime.GOMAXPROCS(cmd.Int(parallelismFlag))
	}

	registry := registryFrom(ctx)

	location, err := resolveLocation(cmd)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to resolve taskfile location: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	// Create a timeout context for taskfile loading and building
	configCtx, configCancel := context.WithTimeout(ctx, time.Duration(cmd.Int(configTimeoutFlag))*time.Second)
	defer configCancel()

	source, err := taskfile.Load(configCtx, FsFactory(), location)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load taskfile: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	logger.Debug("Loaded taskfile", "source", describeSource(source), "format", source.Format.String())

	names := cmd.Args().Slice()

	if len(names) == 0 {
		targets, err := loadTargets(source)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to read targets from %s: %s", describeSource(source), err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		if len(targets) == 0 {
			logger.Error("The taskfile declares no targets.")
			return cli.Exit(cliExitStr, 1)
		}

		names = []string{targets[0].Name}

		logger.Debug("No target named, running the default goal", "target", names[0])
	}

	runnable, err := buildRunnable(configCtx, registry, source, names, cmd.Bool(parallelFlag))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to build targets from %s: %s", describeSource(source), err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	// Execute with TUI or regular mode based on flag
	var res taskrun.Results

	var execErr error

	switch cmd.Bool(tuiFlag) {
	case true:
		// Run with TUI - use TUI-compatible logger that won't interfere with display
		logger.Info("Starting interactive TUI mode...")

		buf := new(bytes.Buffer)
		// Create a TUI-friendly context that suppresses log output
		tuiCtx := ctxlog.NewForTUI(ctx, buf)

		runner := tasktui.NewRunner(tuiCtx)

		res, execErr = runner.Run(tuiCtx, runnable)

		buf.WriteTo(cmd.Writer) //nolint:errcheck // Write any buffered log output to the command writer

		if execErr != nil {
			logger.Error(fmt.Sprintf("TUI execution error: %s", execErr.Error()), "error", execErr.Error())
		}
	default:
		// Run in standard mode
		res = runnable.Run(ctx)
	}

	outFileName := cmd.String(outFlag)
	if outFileName != "" {
		f, err := os.Create(outFileName) // Create the output file if it doesn't exist
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to create output file %s: %s", outFileName, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		defer f.Close() //nolint:errcheck

		if err := res.WriteBinary(f); err != nil {
			logger.Error(fmt.Sprintf("Failed to write results to file %s: %s", outFileName, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		logger.Info(fmt.Sprintf("Results written to %s", outFileName))
	}

	opts := taskrun.DefaultOutputOptions()
	opts.IncludeStdErr = !cmd.Bool(noOutputStdErrFlag)
	opts.IncludeStdOut = cmd.Bool(outputStdOutFlag)
	opts.ShowSuccessDetails = cmd.Bool(outputSuccessDetailsFlag)

	if err := taskrun.WriteResults(cmd.Writer, res, opts); err != nil {
		logger.Error(fmt.Sprintf("Failed to write results: %s", err.Error()))
		return cli.Exit(nil, 1)
	}

	if res.HasError() {
		logger.Error("Some tasks failed. See above for details.")
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

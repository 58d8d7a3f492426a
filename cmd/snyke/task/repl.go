// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/halvfigur/snyke/internal/ctxlog"
	"github.com/halvfigur/snyke/internal/taskfile"
	"github.com/halvfigur/snyke/internal/taskfile/hcl"
	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const hclFlag = "hcl"

// ErrReadLine is returned when the interactive prompt fails.
var ErrReadLine = errors.New("failed to read line")

// replCmd is the command that runs taskfile targets interactively.
var replCmd = &cli.Command{
	Name: "repl",
	Description: `Run taskfile targets from an interactive prompt.
Type one or more target names to run them, with tab completion and
history. Leave with 'quit', 'exit', Ctrl+C or Ctrl+D.

With --hcl the prompt evaluates HCL expressions against the taskfile
function set instead, which helps when debugging an HCL taskfile.`,
	Flags: []cli.Flag{
		newFileFlag(),
		&cli.BoolFlag{
			Name:        hclFlag,
			Usage:       "Evaluate HCL expressions instead of running targets",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
	},
	Action: replAction,
}

func replAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running repl command")

	if cmd.Bool(hclFlag) {
		hcl.EnterDebugMode()
		return nil
	}

	registry := registryFrom(ctx)

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

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name)
	}

	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var matches []string

		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}

		return matches
	})

	fmt.Fprintf(cmd.Writer, "Targets from %s: %s\n", describeSource(source), strings.Join(names, ", "))
	fmt.Fprintln(cmd.Writer, "Type a target name to run it, `quit` or `exit` or Ctrl+C to leave.")

	for {
		input, err := line.Prompt("snyke> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Join(ErrReadLine, err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			return nil
		}

		line.AppendHistory(input)

		runnable, err := buildRunnable(ctx, registry, source, strings.Fields(input), false)
		if err != nil {
			fmt.Fprintf(cmd.Writer, "%s\n", err.Error())
			continue
		}

		res := runnable.Run(ctx)

		if err := taskrun.WriteResults(cmd.Writer, res, nil); err != nil {
			logger.Error(fmt.Sprintf("Failed to write results: %s", err.Error()))
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

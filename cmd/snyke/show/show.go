// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show provides the command that displays previously saved task
// results.
package show

import (
	"context"
	"errors"
	"os"

	"github.com/halvfigur/snyke/internal/taskrun"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"
)

var (
	// ErrReadFile is returned when the file cannot be read.
	ErrReadFile = errors.New("failed to read file")
	// ErrDecodeResults is returned when the results cannot be decoded from the file.
	ErrDecodeResults = errors.New("failed to decode results")
	// ErrWriteResults is returned when the results cannot be written to stdout.
	ErrWriteResults = errors.New("failed to write results to stdout")
)

// ShowCmd is the command that shows task results saved with 'task run --out'.
var ShowCmd = &cli.Command{
	Name:        "show",
	Description: "Show previously saved task results.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: fileArg,
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		file, err := os.Open(cmd.StringArg(fileArg))
		if err != nil {
			return errors.Join(ErrReadFile, err)
		}
		defer file.Close() // nolint:errcheck

		results, err := taskrun.ReadBinaryResults(file)
		if err != nil {
			return errors.Join(ErrDecodeResults, err)
		}

		if err := taskrun.WriteResults(cmd.Writer, results, nil); err != nil {
			return errors.Join(ErrWriteResults, err)
		}

		return nil
	},
}

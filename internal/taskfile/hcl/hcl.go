// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package hcl

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

var (
	// ErrParseConfig is returned when the taskfile cannot be parsed as HCL.
	ErrParseConfig = errors.New("failed to parse HCL taskfile")
	// ErrDecodeConfig is returned when the parsed HCL does not match the
	// taskfile structure.
	ErrDecodeConfig = errors.New("failed to decode HCL taskfile")
)

// Config is a fully decoded HCL taskfile.
type Config struct {
	Name        string
	Description string
	Tasks       []*TaskBlock
}

// TaskBlock represents a task block in an HCL taskfile. One struct covers
// every task type; which attributes are meaningful depends on the type.
type TaskBlock struct {
	Type             string            `hcl:"type"`
	Name             string            `hcl:"name,optional"`
	WorkingDirectory string            `hcl:"working_directory,optional"`
	RunsOnCondition  string            `hcl:"runs_on_condition,optional"`
	RunsOnExitCodes  []int             `hcl:"runs_on_exit_codes,optional"`
	Env              map[string]string `hcl:"env,optional"`

	// Shell specific attributes
	CommandLine      string `hcl:"command_line,optional"`
	SuccessExitCodes []int  `hcl:"success_exit_codes,optional"`
	SkipExitCodes    []int  `hcl:"skip_exit_codes,optional"`
	OutputFile       string `hcl:"output_file,optional"`

	// Nested tasks (for serial and parallel)
	Tasks []*TaskBlock `hcl:"task,block"`
}

type metaBlock struct {
	Name        string `hcl:"name,optional"`
	Description string `hcl:"description,optional"`
}

type fileRoot struct {
	Taskfile *metaBlock   `hcl:"taskfile,block"`
	Tasks    []*TaskBlock `hcl:"task,block"`
}

// ParseConfig parses and decodes an HCL taskfile. The filename is only
// used in diagnostic messages.
func ParseConfig(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Join(ErrParseConfig, diagErrs(diags))
	}

	root := &fileRoot{}

	diags = gohcl.DecodeBody(file.Body, EvalContext(), root)
	if diags.HasErrors() {
		return nil, errors.Join(ErrDecodeConfig, diagErrs(diags))
	}

	cfg := &Config{
		Tasks: root.Tasks,
	}

	if root.Taskfile != nil {
		cfg.Name = root.Taskfile.Name
		cfg.Description = root.Taskfile.Description
	}

	return cfg, nil
}

func diagErrs(diags hcl.Diagnostics) error {
	var err error

	for _, diag := range diags.Errs() {
		err = multierror.Append(err, diag)
	}

	return err
}

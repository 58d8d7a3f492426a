// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskfile

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultYamlName is the YAML taskfile looked for in the working
	// directory.
	DefaultYamlName = "snyke.yaml"
	// altYamlName is accepted as an alternative spelling.
	altYamlName = "snyke.yml"
	// DefaultHclName is the HCL taskfile looked for in the working
	// directory.
	DefaultHclName = "snyke.hcl"
)

// Format identifies a taskfile's on-disk format.
type Format int

const (
	// FormatYAML is a YAML taskfile.
	FormatYAML Format = iota
	// FormatHCL is an HCL taskfile.
	FormatHCL
)

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == FormatHCL {
		return "hcl"
	}

	return "yaml"
}

// Source is a located taskfile, not yet parsed.
type Source struct {
	// Data is the raw taskfile content.
	Data []byte
	// Path is the file path or URL the data came from. Empty for the
	// built-in taskfile.
	Path string
	// Format is the detected format.
	Format Format
	// BuiltIn is true when no taskfile was found and the built-in one
	// is used instead.
	BuiltIn bool
}

// Load resolves the taskfile to use. An explicit location wins; it may
// be a local path or any URL accepted by go-getter. Otherwise the
// working directory is searched for snyke.yaml, snyke.yml and snyke.hcl,
// in that order. When nothing is found the built-in taskfile is
// returned.
func Load(ctx context.Context, fsys afero.Fs, location string) (*Source, error) {
	if location != "" {
		return loadExplicit(ctx, fsys, location)
	}

	for _, name := range []string{DefaultYamlName, altYamlName, DefaultHclName} {
		exists, err := afero.Exists(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrGetTaskfile, err)
		}

		if !exists {
			continue
		}

		data, err := afero.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrGetTaskfile, err)
		}

		return &Source{Data: data, Path: name, Format: formatForPath(name)}, nil
	}

	return &Source{Data: Builtin(), Format: FormatYAML, BuiltIn: true}, nil
}

func loadExplicit(ctx context.Context, fsys afero.Fs, location string) (*Source, error) {
	exists, err := afero.Exists(fsys, location)
	if err == nil && exists {
		data, rerr := afero.ReadFile(fsys, location)
		if rerr != nil {
			return nil, errors.Join(ErrGetTaskfile, rerr)
		}

		return &Source{Data: data, Path: location, Format: formatForPath(location)}, nil
	}

	data, err := getURL(ctx, location)
	if err != nil {
		return nil, err
	}

	return &Source{Data: data, Path: location, Format: formatForPath(location)}, nil
}

// formatForPath detects the taskfile format from a path or URL. Query
// strings and fragments are ignored so go-getter ref parameters do not
// affect detection.
func formatForPath(location string) Format {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}

	if strings.EqualFold(filepath.Ext(location), ".hcl") {
		return FormatHCL
	}

	return FormatYAML
}

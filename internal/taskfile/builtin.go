// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskfile

import "sync"

// builtinTaskfile supplies the default targets. It is used verbatim when
// the working directory has no taskfile, and target by target when a
// taskfile exists but does not declare a target of the same name.
const builtinTaskfile = `name: "snyke"
description: "Built-in development tasks"
tasks:
  - type: "shell"
    name: "typecheck"
    command_line: "go vet ./..."
  - type: "shell"
    name: "requirements"
    command_line: "go list -m all"
    output_file: "requirements.txt"
  - type: "shell"
    name: "format"
    command_line: "gofmt -l -w ."
  - type: "shell"
    name: "run"
    command_line: "go run ./cmd/snyke play"
`

// Builtin returns the built-in taskfile as YAML. Callers that want a
// starting point for a project taskfile can write it to disk as is.
func Builtin() []byte {
	return []byte(builtinTaskfile)
}

var builtinIndex = sync.OnceValues(func() ([]string, map[string]any) {
	def, err := parseDefinition([]byte(builtinTaskfile))
	if err != nil {
		// the built-in taskfile is a constant
		panic(err)
	}

	names := make([]string, 0, len(def.Tasks))
	byName := make(map[string]any, len(def.Tasks))

	for _, item := range def.Tasks {
		probe, err := probeTask(item)
		if err != nil {
			panic(err)
		}

		names = append(names, probe.Name)
		byName[probe.Name] = item
	}

	return names, byName
})

// builtinTargetNames returns the built-in target names in declaration
// order. The returned slice must not be modified.
func builtinTargetNames() []string {
	names, _ := builtinIndex()
	return names
}

// builtinTargets returns the built-in target definitions keyed by name.
// The returned map must not be modified.
func builtinTargets() map[string]any {
	_, byName := builtinIndex()
	return byName
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package taskfile locates, parses and builds taskfiles. A taskfile
// declares named top level tasks (targets) plus reusable task groups,
// in either YAML or HCL form. When the project has no taskfile, a
// built-in set of targets is used; a taskfile that declares a target
// with the same name as a built-in overrides it.
package taskfile

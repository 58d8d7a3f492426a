// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package hcl parses taskfiles written in HCL. A taskfile consists of an
// optional "taskfile" metadata block followed by "task" blocks, which may
// nest further task blocks for the serial and parallel task types.
// Attribute expressions are evaluated before decoding, so taskfiles can
// use functions such as env() and upper() in attribute values.
package hcl

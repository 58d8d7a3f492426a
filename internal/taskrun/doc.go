// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package taskrun executes trees of tasks, either serially or in
// parallel, and collects their results. Leaf tasks run operating system
// processes or in-process functions; groups compose them and may be
// nested to any depth. Each task reports its outcome, including captured
// output, and the package formats the aggregate result tree for humans
// or encodes it for later inspection.
package taskrun

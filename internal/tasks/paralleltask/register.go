// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package paralleltask

import "github.com/halvfigur/snyke/internal/taskregistry"

const taskType = "parallel"

// Register registers the parallel task type with the given registry.
func Register(r *taskregistry.Registry) {
	r.Register(taskType, NewCommander())
}

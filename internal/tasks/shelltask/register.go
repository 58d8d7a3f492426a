// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package shelltask

import "github.com/halvfigur/snyke/internal/taskregistry"

const taskType = "shell"

// Register registers the task type in the given registry.
func Register(r *taskregistry.Registry) {
	r.Register(taskType, NewCommander())
}

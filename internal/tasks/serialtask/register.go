// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package serialtask

import "github.com/halvfigur/snyke/internal/taskregistry"

const taskType = "serial"

// Register registers the serial task type with the given registry.
func Register(r *taskregistry.Registry) {
	r.Register(taskType, NewCommander())
}

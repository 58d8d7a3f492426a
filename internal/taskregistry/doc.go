// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package taskregistry provides a registry for task types and their commanders.
// It satisfies the tasks.Factory interface.
package taskregistry

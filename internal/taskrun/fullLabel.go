// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"slices"
	"strings"
)

// FullLabel returns the label of a Runnable prefixed with the labels of
// all its ancestors, joined with " > ".
func FullLabel(r Runnable) string {
	if r == nil {
		return "Unknown"
	}

	labels := []string{r.GetLabel()}
	for parent := r.GetParent(); parent != nil; parent = parent.GetParent() {
		labels = append(labels, parent.GetLabel())
	}

	slices.Reverse(labels)

	return strings.Join(labels, " > ")
}

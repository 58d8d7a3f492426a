// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine implements the snake game core: the board, the snakes
// and the step function that advances the simulation. The engine is
// deliberately free of any terminal or timing concerns; callers drive it
// through Step and observe it through a View.
//
// The engine is deterministic under an injected random source, which the
// tests use to script food placement.
package engine

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads and validates the application configuration. The
// configuration is a YAML file covering the game parameters and the task
// runner defaults; missing files and missing fields fall back to the
// embedded defaults.
package config

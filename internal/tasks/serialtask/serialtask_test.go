// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package serialtask

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults_BinaryRoundTrip(t *testing.T) {
	original := Results{
		{
			Label:    "root",
			ExitCode: 0,
			Status:   ResultStatusError,
			Error:    ErrChildTasksFailed,
			Children: Results{
				{
					Label:    "child-ok",
					ExitCode: 0,
					Status:   ResultStatusSuccess,
					StdOut:   []byte("hello\n"),
				},
				{
					Label:    "child-bad",
					ExitCode: 3,
					Status:   ResultStatusError,
					Error:    errors.New("command failed"),
					StdErr:   []byte("no such file\n"),
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, original.WriteBinary(&buf))

	decoded, err := ReadBinaryResults(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	root := decoded[0]
	assert.Equal(t, "root", root.Label)
	assert.Equal(t, ResultStatusError, root.Status)
	require.Error(t, root.Error)
	assert.Equal(t, ErrChildTasksFailed.Error(), root.Error.Error(),
		"error identity is not preserved across the wire, only the message")
	require.Len(t, root.Children, 2)

	assert.Equal(t, "child-ok", root.Children[0].Label)
	assert.Equal(t, []byte("hello\n"), root.Children[0].StdOut)
	assert.NoError(t, root.Children[0].Error)

	assert.Equal(t, "child-bad", root.Children[1].Label)
	assert.Equal(t, 3, root.Children[1].ExitCode)
	assert.Equal(t, ResultStatusError, root.Children[1].Status)
	require.Error(t, root.Children[1].Error)
	assert.Equal(t, "command failed", root.Children[1].Error.Error())
	assert.Equal(t, []byte("no such file\n"), root.Children[1].StdErr)

	assert.True(t, decoded.HasError(), "classification must survive the round trip")
}

func TestReadBinaryResults_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty_data",
			data: []byte{},
		},
		{
			name: "garbage_data",
			data: []byte{0x1, 0x2, 0x3, 0x4, 0x5},
		},
		{
			name: "truncated_gob_header",
			data: []byte{0x07, 0xff, 0x81, 0x03},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBinaryResults(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecodeResults)
		})
	}
}

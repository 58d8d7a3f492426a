// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskfile

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		url      string
		wantErr  error
		wantFile string
	}{
		{
			name:    "empty url returns error",
			url:     "",
			wantErr: ErrGetTaskfile,
		},
		{
			name:    "unreachable remote source fails",
			url:     "git::http://notexist//file.yaml",
			wantErr: ErrGetTaskfile,
		},
		{
			name:     "local file succeeds",
			url:      "./testdata/test.yaml",
			wantErr:  nil,
			wantFile: "testdata/test.yaml",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			data, err := getURL(ctx, tc.url)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)

			want, err := os.ReadFile(tc.wantFile)
			require.NoError(t, err)
			assert.Equal(t, want, data)
		})
	}
}

func TestSplitFileNameFromGetterURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		url          string
		wantURL      string
		wantFileName string
	}{
		{
			name:         "repo subpath with ref",
			url:          "git::https://github.com/org/repo//tasks/snyke.yaml?ref=main",
			wantURL:      "git::https://github.com/org/repo//tasks?ref=main",
			wantFileName: "snyke.yaml",
		},
		{
			name:         "repo subpath without ref",
			url:          "git::https://github.com/org/repo//tasks/snyke.yaml",
			wantURL:      "git::https://github.com/org/repo//tasks",
			wantFileName: "snyke.yaml",
		},
		{
			name:         "file directly under repo root",
			url:          "git::https://github.com/org/repo//snyke.yaml",
			wantURL:      "git::https://github.com/org/repo",
			wantFileName: "snyke.yaml",
		},
		{
			name:         "too few parts",
			url:          "https://github.com",
			wantURL:      "",
			wantFileName: "",
		},
		{
			name:         "trailing separator has no file name",
			url:          "git::https://github.com/org/repo//",
			wantURL:      "",
			wantFileName: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotURL, gotFileName := splitFileNameFromGetterURL(tc.url)
			assert.Equal(t, tc.wantURL, gotURL)
			assert.Equal(t, tc.wantFileName, gotFileName)
		})
	}
}

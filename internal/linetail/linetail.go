// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linetail wraps an io.Reader so that all data is captured while
// the most recent complete line remains cheaply available. Long-running
// child processes are read through it so a progress display can show the
// latest line of output without waiting for the process to finish.
package linetail

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

const ellipsis = "..."

// Reader tees everything read through it into an internal buffer and
// tracks the last complete line. It is safe for concurrent use.
type Reader struct {
	src     io.Reader
	full    *bytes.Buffer
	last    string
	partial strings.Builder
	mu      sync.RWMutex
}

// New returns a Reader wrapping r.
func New(r io.Reader) *Reader {
	return &Reader{
		src:  r,
		full: &bytes.Buffer{},
	}
}

// Read implements io.Reader. Data is forwarded unchanged while the
// internal buffer and line tracking are updated.
func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = r.src.Read(p)
	if n > 0 {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.full.Write(p[:n])
		r.consume(string(p[:n]))
	}

	return n, err //nolint:wrapcheck
}

// consume folds new data into the partial line and promotes the most
// recent complete line. Must be called with the write lock held.
func (r *Reader) consume(data string) {
	r.partial.WriteString(data)

	combined := r.partial.String()

	idx := strings.LastIndexByte(combined, '\n')
	if idx < 0 {
		return
	}

	complete := combined[:idx]
	rest := combined[idx+1:]

	if j := strings.LastIndexByte(complete, '\n'); j >= 0 {
		complete = complete[j+1:]
	}

	r.last = complete
	r.partial.Reset()
	r.partial.WriteString(rest)
}

// LastLine returns the most recent complete line, or "" if none has been
// read yet. If maxLen > 0 the result is truncated to maxLen bytes with a
// trailing ellipsis.
func (r *Reader) LastLine(maxLen int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.last
	if maxLen <= 0 || len(result) <= maxLen {
		return result
	}

	if maxLen <= len(ellipsis) {
		return result[:maxLen]
	}

	return result[:maxLen-len(ellipsis)] + ellipsis
}

// PartialLine returns data read since the last newline.
func (r *Reader) PartialLine() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.partial.String()
}

// Bytes returns everything read so far. The returned slice shares memory
// with the internal buffer and must not be held across further reads.
func (r *Reader) Bytes() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.full.Bytes()
}

// Buffer returns the underlying capture buffer. It must only be used once
// reading has completed.
func (r *Reader) Buffer() *bytes.Buffer {
	return r.full
}

// Reset clears the captured data and line state. The wrapped reader is
// not affected.
func (r *Reader) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.full.Reset()
	r.last = ""
	r.partial.Reset()
}

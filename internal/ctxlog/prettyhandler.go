// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/halvfigur/snyke/internal/color"
)

var (
	// ErrMarshalAttribute is returned when a log attribute cannot be marshaled.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when the log destination cannot be written to.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in pretty log output.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that writes human-readable log lines,
// rendering record attributes as indented, optionally colorized JSON.
// It wraps a JSON handler whose output buffer supplies the attributes.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	colour           bool
	outputEmptyAttrs bool
}

// Enabled reports whether the handler emits records at the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs returns a handler whose records include the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := *h
	derived.h = h.h.WithAttrs(attrs)

	return &derived
}

// WithGroup returns a handler that nests subsequent attributes under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	derived := *h
	derived.h = h.h.WithGroup(name)

	return &derived
}

// headerAttr passes one of the built-in record attributes through the
// user's ReplaceAttr function and returns the rendered value. An empty
// string means the attribute was replaced away and must be omitted.
func (h *PrettyHandler) headerAttr(key string, value slog.Value) string {
	attr := slog.Attr{Key: key, Value: value}
	if h.r != nil {
		attr = h.r([]string{}, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return ""
	}

	return attr.Value.String()
}

// levelColor maps a record level to the color of its level tag. The
// in-between cases cover custom levels such as LevelInfo+2.
func levelColor(l slog.Level) color.Code {
	switch {
	case l <= slog.LevelDebug:
		return color.FgWhite
	case l <= slog.LevelInfo:
		return color.FgCyan
	case l < slog.LevelWarn:
		return color.FgBlue
	case l < slog.LevelError:
		return color.FgYellow
	case l <= slog.LevelError+1:
		return color.FgRed
	default:
		return color.FgHiMagenta
	}
}

// computeAttrs runs the record through the inner JSON handler and decodes
// the buffered output into a map. The buffer is shared across derived
// handlers, hence the lock.
func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	if err := json.Unmarshal(h.b.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// Handle implements slog.Handler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	parts := make([]string, 0, 4)

	if ts := h.headerAttr(slog.TimeKey, slog.StringValue(r.Time.Format(TimeFormat))); ts != "" {
		parts = append(parts, color.Colorize(ts, color.FgWhite))
	}

	if level := h.headerAttr(slog.LevelKey, slog.AnyValue(r.Level)); level != "" {
		parts = append(parts, color.Colorize(level+":", levelColor(r.Level)))
	}

	if msg := h.headerAttr(slog.MessageKey, slog.StringValue(r.Message)); msg != "" {
		parts = append(parts, color.Colorize(msg, color.FgHiWhite))
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	if h.outputEmptyAttrs || len(attrs) > 0 {
		rendered, err := h.formatter().Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		parts = append(parts, color.Colorize(string(rendered), color.FgHiWhite))
	}

	if _, err := io.WriteString(h.writer, strings.Join(parts, " ")+"\n"); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// formatter is per handler so that colour follows the handler options
// rather than a process-wide setting.
func (h *PrettyHandler) formatter() *colorjson.Formatter {
	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !h.colour

	return f
}

// suppressDefaults removes the time, level and message keys before the
// inner JSON handler runs; they are rendered in the line header instead.
func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewPrettyHandler creates a PrettyHandler with the given slog options,
// then applies the functional options.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r: handlerOptions.ReplaceAttr,
		m: &sync.Mutex{},
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables colorized attribute output.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables colorized attribute output when the terminal
// supports it.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		h.colour = color.Enabled()
	}
}

// WithOutputEmptyAttrs emits an empty JSON object for records that carry
// no attributes rather than omitting the attribute block.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}

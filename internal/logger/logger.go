/*
 * psx - structured logging wrapper
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package logger wraps log/slog with the five levels the core emits
// (trace, debug, info, warn, error) and a compact text handler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// LevelTrace sits below slog's built-in Debug level so --log trace can
// still be told apart from --log debug.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps the CLI's level names onto slog.Level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Handler is a minimal slog.Handler that renders records as single lines
// of "<time> <level>: <msg> <attrs...>", matching the shape the reference
// driver prints to its log file.
type Handler struct {
	out   io.Writer
	level slog.Leveler
	mu    *sync.Mutex
}

// NewHandler builds a Handler writing to out at the given minimum level.
func NewHandler(out io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{out: out, level: level, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	levelName := r.Level.String()
	if r.Level == LevelTrace {
		levelName = "TRACE"
	}

	strs := []string{r.Time.Format("2006/01/02 15:04:05"), levelName + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, a.Key+"="+a.Value.String())
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(strings.Join(strs, " ") + "\n"))
	return err
}

// New builds a ready-to-use *slog.Logger at the given level, writing to out.
func New(out io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(out, level))
}

/*
 * asmconv - Wrapper for slog
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

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Output state shared by a handler and all handlers derived from it.
type output struct {
	mu      sync.Mutex
	out     io.Writer // Log file, may be nil.
	console io.Writer // Where console messages go.
	debug   bool      // Copy debug messages to console.
}

type LogHandler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	output *output
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := *h
	n.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		a.Key = h.group + a.Key
		n.attrs = append(n.attrs, a)
	}
	return &n
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	n := *h
	n.group = h.group + name + "."
	return &n
}

func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	strs := []string{formattedTime, level, r.Message}
	for _, a := range h.attrs {
		strs = append(strs, a.Key+"="+a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, h.group+a.Key+"="+a.Value.String())
		return true
	})
	b := []byte(strings.Join(strs, " ") + "\n")

	h.output.mu.Lock()
	defer h.output.mu.Unlock()

	var err error
	if h.output.out != nil {
		_, err = h.output.out.Write(b)
	}

	if h.output.debug || r.Level > slog.LevelDebug {
		_, err = h.output.console.Write(b)
	}
	return err
}

// Send debug messages to the console as well.
func (h *LogHandler) SetDebug(debug bool) {
	h.output.mu.Lock()
	h.output.debug = debug
	h.output.mu.Unlock()
}

// Change the log file, nil for none.
func (h *LogHandler) SetOutput(file io.Writer) {
	h.output.mu.Lock()
	h.output.out = file
	h.output.mu.Unlock()
}

func NewHandler(file io.Writer, opts *slog.HandlerOptions, debug bool) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &LogHandler{
		level:  opts.Level,
		output: &output{out: file, console: os.Stderr, debug: debug},
	}
}

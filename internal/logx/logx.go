// Copyright © 2026 tomasulator contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package logx gives the core an optional, pluggable trace sink. It is
// deliberately tiny: the core never makes a decision based on what it
// logs, so the default implementation is a silent no-op.
package logx

// Logger receives one line of trace text per call.
type Logger interface {
	Log(msg string)
}

type noopLogger struct{}

func (noopLogger) Log(msg string) {}

var (
	defaultLogger Logger = noopLogger{}
	active               = defaultLogger
	enabled              = false
)

// SetLogger installs impl as the active logger. A nil impl restores the
// no-op default.
func SetLogger(impl Logger) {
	if impl == nil {
		active = defaultLogger
		return
	}
	active = impl
}

// SetEnabled turns logging on or off without changing the installed
// Logger, so callers can toggle tracing without re-wiring it.
func SetEnabled(enable bool) {
	enabled = enable
}

// Enabled reports whether logging is currently switched on.
func Enabled() bool {
	return enabled
}

// Log forwards msg to the active logger when logging is enabled.
func Log(msg string) {
	if !enabled {
		return
	}
	active.Log(msg)
}

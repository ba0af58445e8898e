// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import "log/slog"

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// ansi escape codes for the log levels this module actually emits:
// debug traces (encoding substitutions, mode-stack pushes/pops under
// tracing), warnings (unregistered extension, cancelled unit), and
// errors (parse invariant violation, malformed srcML, I/O failure).
const (
	ansiReset  = "\x1b[0m"
	ansiDebug  = "\x1b[36m" // cyan
	ansiWarn   = "\x1b[33m" // yellow
	ansiError  = "\x1b[31m" // red
	ansiCancel = "\x1b[35m" // magenta
)

// ApplyColor wraps str in the ansi code for clr, unless [UseColor] is false.
func ApplyColor(clr, str string) string {
	if !UseColor {
		return str
	}
	return clr + str + ansiReset
}

// LevelColor applies the color associated with the given level to the
// given string and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level < slog.LevelInfo:
		return ApplyColor(ansiDebug, str)
	case level < slog.LevelWarn:
		return str
	case level < slog.LevelError:
		return ApplyColor(ansiWarn, str)
	default:
		return ApplyColor(ansiError, str)
	}
}

// CancelColor applies the color associated with a driver-initiated
// cancellation (not an error, but worth distinguishing at a glance).
func CancelColor(str string) string {
	return ApplyColor(ansiCancel, str)
}

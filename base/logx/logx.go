// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides level-gated, optionally colored logging for use
// across the translator, archive, and writer packages. It does not own
// a process lifetime: nothing in this package calls os.Exit or
// log.Fatal, since library code must never abort the host process.
package logx

import "log/slog"

// UserLevel is the minimum level that will be printed by the Print*
// and Println* functions. Messages below this level are silently dropped.
var UserLevel = defaultUserLevel

// SetLevel sets [UserLevel].
func SetLevel(level slog.Level) {
	UserLevel = level
}

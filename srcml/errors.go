// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"errors"
	"fmt"

	"github.com/srcml-go/srcml/archive"
)

// ErrCancelled is returned (wrapped) when a long-running translation or
// archive operation is stopped by its context being cancelled. Callers
// can test for it with errors.Is.
var ErrCancelled = errors.New("srcml: cancelled")

// IoError wraps a failure reading or writing the underlying file or
// stream a [Unit] or [Archive] is attached to. It always wraps a non-nil
// cause.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("srcml: io error: %v", e.Err)
	}
	return fmt.Sprintf("srcml: io error on %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// EncodingError is returned when source bytes cannot be decoded under
// the declared (or detected) encoding and [OptionEncodingStrict] is set.
// Without that option, the lexer substitutes U+FFFD and continues rather
// than returning this error.
type EncodingError struct {
	Encoding string
	Offset   int
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("srcml: encoding error at byte %d (encoding %q): %v", e.Offset, e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ParseInvariantViolation means the parser's internal bookkeeping broke
// an invariant it is supposed to maintain unconditionally; the case the
// parser reports is a mode-stack pop on an empty stack. A stack still
// open at end of input is truncated input, which the parser closes
// itself, not this error. It always indicates a parser bug,
// never a property of the input source; well-formed or not, source text
// must never trigger this.
type ParseInvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *ParseInvariantViolation) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("srcml: parser invariant violated: %s", e.Invariant)
	}
	return fmt.Sprintf("srcml: parser invariant violated: %s (%s)", e.Invariant, e.Detail)
}

// UnregisteredExtension is returned by language detection when a
// filename's extension isn't in the built-in table, a user-registered
// table, or recognized by content sniffing, and no default language was
// configured.
type UnregisteredExtension struct {
	Filename  string
	Extension string
}

func (e *UnregisteredExtension) Error() string {
	return fmt.Sprintf("srcml: no language registered for extension %q (file %q)", e.Extension, e.Filename)
}

// MalformedSrcml is returned by the archive reader when input claiming
// to be srcML XML cannot be parsed as such — not a source-language
// parse error, but a structural failure of the XML framing itself
// (unterminated unit, unknown root namespace, truncated header, ...).
type MalformedSrcml struct {
	Detail string
	Err    error
}

func (e *MalformedSrcml) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("srcml: malformed srcML: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("srcml: malformed srcML: %s", e.Detail)
}

func (e *MalformedSrcml) Unwrap() error { return e.Err }

// Cancelled reports whether err is, or wraps, [ErrCancelled].
func Cancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// wrapArchiveErr rewraps a [archive.MalformedError] surfaced by the
// archive package's reader/writer into the public [MalformedSrcml] type,
// so callers of Archive's methods only ever see the six-member taxonomy
// this package defines, never an internal package's error type. Any
// other error (io.EOF, a context error) passes through unchanged.
func wrapArchiveErr(err error) error {
	if err == nil {
		return nil
	}
	var me *archive.MalformedError
	if errors.As(err, &me) {
		return &MalformedSrcml{Detail: me.Detail, Err: me.Err}
	}
	return err
}

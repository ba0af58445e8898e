// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/srcml-go/srcml/archive"
	"github.com/srcml-go/srcml/langdetect"
	"github.com/srcml-go/srcml/lexer"
	"github.com/srcml-go/srcml/parser"
	"github.com/srcml-go/srcml/writer"
)

// defaultDetector is consulted by the package-level Translate* functions,
// which have no enclosing [Archive] of their own to own a detector
// instance. Archive methods use their own per-archive copy instead (see
// archive.go), per spec.md §5's "registries are copy-on-create per
// archive."
var defaultDetector = langdetect.New()

// flagsFromOptions translates the subset of Options relevant to parsing
// into package parser's local Flags bitmask — the decoupling point that
// lets parser avoid importing srcml.
func flagsFromOptions(opts Options) parser.Flags {
	var f parser.Flags
	if opts.Has(OptionPositions) {
		f |= parser.FlagPositions
	}
	if opts.Has(OptionOperatorMarkup) {
		f |= parser.FlagOperatorMarkup
	}
	if opts.Has(OptionLiteralMarkup) {
		f |= parser.FlagLiteralMarkup
	}
	if opts.Has(OptionModifierMarkup) {
		f |= parser.FlagModifierMarkup
	}
	if opts.Has(OptionOpenMPMarkup) {
		f |= parser.FlagOpenMPMarkup
	}
	if opts.Has(OptionMacroMarkup) {
		f |= parser.FlagMacroMarkup
	}
	if opts.Has(OptionCppMarkupElse) {
		f |= parser.FlagCppMarkupElse
	}
	if opts.Has(OptionCppTextualMarkup) {
		f |= parser.FlagCppTextualMarkup
	}
	if opts.Has(OptionDebugNamespace) {
		f |= parser.FlagDebugNamespace
	}
	return f
}

// translateEvents runs the lex/parse pipeline over src and returns the
// resulting event stream, wrapping every local error type the lexer and
// parser packages define into the canonical taxonomy from errors.go —
// the one place that wrapping happens, since lexer and parser cannot
// import srcml themselves (srcml imports them).
func translateEvents(ctx context.Context, language Language, src []byte, opts Options, userMacros map[string]bool) ([]parser.Event, error) {
	buf, err := lexer.Decode(src, opts.Has(OptionEncodingStrict))
	if err != nil {
		var de interface {
			Error() string
			Offset() int
		}
		offset := 0
		if errors.As(err, &de) {
			offset = de.Offset()
		}
		return nil, &EncodingError{Offset: offset, Err: err}
	}
	lex := lexer.New(buf, int32(language), language == CXX0X)
	flags := flagsFromOptions(opts)
	p := parser.New(lex, int32(language), flags, userMacros)
	events, err := p.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, parser.ErrCancelled) {
			return events, ErrCancelled
		}
		var inv *parser.InvariantError
		if errors.As(err, &inv) {
			return nil, &ParseInvariantViolation{Invariant: inv.What, Detail: inv.Error()}
		}
		return nil, &ParseInvariantViolation{Invariant: "unknown", Detail: err.Error()}
	}
	return events, nil
}

// TranslateSource translates src (named filename for language detection
// and the unit's Filename attribute) into a [Unit]. If language is
// Unknown, it is derived from filename's extension; if detection also
// fails, an UnregisteredExtension error is returned rather than guessing.
func TranslateSource(ctx context.Context, src []byte, filename string, language Language, opts Options, userMacros map[string]bool) (Unit, error) {
	derived := Language(defaultDetector.Detect(filename, src))
	if language == Unknown {
		language = derived
		if language == Unknown {
			return Unit{}, &UnregisteredExtension{Filename: filename, Extension: filepath.Ext(filename)}
		}
	}
	events, err := translateEvents(ctx, language, src, opts, userMacros)
	if err != nil {
		return Unit{}, err
	}
	u := Unit{
		Language:        language,
		Filename:        filename,
		SourceBytes:     src,
		DerivedLanguage: derived,
		events:          events,
	}
	if opts.Has(OptionHash) {
		u.Hash = writer.HashSource(src)
	}
	return u, nil
}

// TranslateFile reads path and calls TranslateSource with its contents
// and base name.
func TranslateFile(ctx context.Context, path string, language Language, opts Options) (Unit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Unit{}, &IoError{Path: path, Err: err}
	}
	return TranslateSource(ctx, src, filepath.Base(path), language, opts, nil)
}

// unitAttrs converts u's header fields into the archive package's
// writer-facing attribute struct.
func (u Unit) unitAttrs() archive.UnitAttrs {
	attrs := archive.UnitAttrs{
		Directory: u.Directory,
		Version:   u.Version,
		Timestamp: u.Timestamp,
		Hash:      u.Hash,
	}
	if u.Language != Unknown {
		attrs.Language = u.Language.String()
	}
	if u.Filename != "" {
		attrs.Filename = u.Filename
	}
	for _, a := range u.Attrs {
		attrs.Extra = append(attrs.Extra, writer.XMLAttr{Name: a.Name, Value: a.Value})
	}
	return attrs
}

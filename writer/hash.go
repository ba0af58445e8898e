// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package writer implements the output assembler (C6): it takes the
// event stream a parser.Parser produces and serializes it as
// namespace-correct XML, computing position and hash attributes and
// converting to the configured output encoding along the way. It knows
// nothing about archive framing (root-element wrapping across multiple
// units) — that belongs to the archive package, which uses an Assembler
// per unit internally.
package writer

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// HashSource returns the SHA-1 hash srcML records in a unit's hash
// attribute: computed over src with CRLF line endings normalized to LF
// first (never CR alone, which essentially never occurs in practice and
// isn't worth a second substitution pass), so the same logical content
// hashes identically regardless of which platform produced the file.
func HashSource(src []byte) string {
	normalized := strings.ReplaceAll(string(src), "\r\n", "\n")
	sum := sha1.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

/*
Package bidi implements a run-length variant of the Unicode UAX#9 Bidirectional Algorithm.

It is not fully standards-conforming: explicit embeddings, overrides and isolates
are not resolved, but treated as neutral characters. Within these limits it
computes embedding levels for a paragraph of text and a resolved paragraph
direction, which is what shaping and itemization need.

Characters are classified into bidi character types (see CharType) and then
run-length encoded into a list of runs, bounded by start-of-text and end-of-text
sentinels. The resolution passes for weak types, neutral types and implicit
levels operate on runs instead of characters, merging adjacent runs of equal type
between passes. The cost of a pass therefore is proportional to the number of
type transitions in the text, not to the number of characters.

Typical usage:

	levels, dir, err := bidi.EmbeddingLevels([]rune("abc אב"), bidi.Neutral)

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textcore.bidi'.
func tracer() tracing.Trace {
	return tracing.Select("textcore.bidi")
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "15.0.0"

// ErrInvalidDirection is returned if a caller passes a paragraph direction
// which is not one of the five directions of type Direction.
var ErrInvalidDirection = errors.New("textcore/bidi: invalid paragraph direction")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

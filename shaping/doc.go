/*
Package shaping turns runs of text into strings of positioned glyphs.

The package holds the parts of shaping common to all font backends: the
glyph string, the per-run analysis, the character-by-character basic shaper,
a fallback shaper for runs without a usable engine, and the bidi
post-processing of glyph strings for right-to-left runs.

Font backends implement interface Font. Shaping engines implement interface
ShapeEngine and are found through package engine, usually by an itemizer
filling in an Analysis for every run of text:

	var glyphs shaping.GlyphString
	err := shaping.Shape("Hello", analysis, &glyphs)

Shape never fails because of missing glyphs or engines. Characters without
a glyph are shaped as placeholder glyphs (see GlyphUnknownFlag); runs without
a shaping engine are shaped by the fallback shaper, which produces
placeholders only.

Glyph strings of runs with an odd (right-to-left) embedding level are in
visual order: the glyphs are reversed, but glyphs within one cluster keep
their logical order.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package shaping

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textcore.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("textcore.shaping")
}

// ErrNoAnalysis is returned by Shape if called without an analysis or
// without a glyph string.
var ErrNoAnalysis = errors.New("textcore/shaping: missing analysis or glyph string")

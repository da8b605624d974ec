/*
Package sfntfont is a font backend for shaping, based on the SFNT parser of
golang.org/x/image. It handles TrueType and OpenType fonts.

Importing this package registers a basic shaping engine for render type
"sfnt", covering all of Unicode:

	f, _ := sfntfont.GoRegular(fixed.I(12))
	m := engine.FindMap(engine.DefaultLanguage(), engine.TypeShape, sfntfont.RenderType)
	e := m.GetEngine(language.Latin).(shaping.ShapeEngine)

Fonts do not do any layout on their own (no GSUB or GPOS processing).
Kerning is taken from the font's 'kern' table, if present.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntfont

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcore/engine"
	"github.com/npillmayer/textcore/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'textcore.sfnt'.
func tracer() tracing.Trace {
	return tracing.Select("textcore.sfnt")
}

// RenderType is the render type fonts of this package are shaped for.
const RenderType = "sfnt"

func init() {
	if err := engine.Register(shaping.BasicShaperInfo(RenderType), shaping.NewBasicShaper); err != nil {
		tracer().Errorf("cannot register shaper for %s fonts: %v", RenderType, err)
	}
}

// Font is an SFNT font at a fixed size. It implements shaping.Font and is
// safe for concurrent use.
type Font struct {
	name    string
	f       *sfnt.Font
	ppem    fixed.Int26_6
	hinting font.Hinting
	metrics font.Metrics
	mu      sync.Mutex // guards buf
	buf     sfnt.Buffer
}

var _ shaping.Font = (*Font)(nil)

// Parse loads a font from the bytes of a TTF or OTF file. ppem is the font
// size in pixels per em. If name is empty, the full name from the font's name
// table is used.
func Parse(data []byte, name string, ppem fixed.Int26_6) (*Font, error) {
	if ppem <= 0 {
		return nil, fmt.Errorf("textcore/sfntfont: invalid font size %v", ppem)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textcore/sfntfont: %w", err)
	}
	f := &Font{name: name, f: sf, ppem: ppem, hinting: font.HintingNone}
	if f.name == "" {
		if f.name, err = sf.Name(&f.buf, sfnt.NameIDFull); err != nil {
			f.name = "<unnamed>"
		}
	}
	if f.metrics, err = sf.Metrics(&f.buf, ppem, f.hinting); err != nil {
		return nil, fmt.Errorf("textcore/sfntfont: %w", err)
	}
	tracer().Debugf("loaded font %s at %v ppem", f.name, ppem)
	return f, nil
}

// GoRegular returns the Go Regular font at size ppem.
func GoRegular(ppem fixed.Int26_6) (*Font, error) {
	return Parse(goregular.TTF, "", ppem)
}

func (f *Font) String() string {
	return fmt.Sprintf("%s@%v", f.name, f.ppem)
}

// Metrics returns the scaled metrics of the font.
func (f *Font) Metrics() font.Metrics {
	return f.metrics
}

// GlyphIndex returns the glyph for r, or 0 if the font does not cover r.
func (f *Font) GlyphIndex(r rune) shaping.Glyph {
	f.mu.Lock()
	defer f.mu.Unlock()
	x, err := f.f.GlyphIndex(&f.buf, r)
	if err != nil {
		tracer().Debugf("no glyph for %+q: %v", r, err)
		return 0
	}
	return shaping.Glyph(x)
}

// GlyphExtents returns the ink and logical rectangles of g. The y-axis
// points down, with the baseline at y=0. Logical rectangles span the font's
// ascent and descent.
//
// Placeholder glyphs get the extents of the font's .notdef glyph. If that
// cannot be measured, a box half an em wide is used.
func (f *Font) GlyphExtents(g shaping.Glyph) (ink, logical fixed.Rectangle26_6) {
	if g == 0 || g == shaping.GlyphEmpty {
		return
	}
	x := sfnt.GlyphIndex(0)
	if !g.IsUnknown() {
		if g > 0xFFFF {
			return
		}
		x = sfnt.GlyphIndex(g)
	}
	f.mu.Lock()
	bounds, advance, err := f.f.GlyphBounds(&f.buf, x, f.ppem, f.hinting)
	f.mu.Unlock()
	if err != nil {
		if !g.IsUnknown() {
			tracer().Debugf("cannot measure glyph %v: %v", g, err)
			return
		}
		advance = f.ppem / 2
		bounds = fixed.Rectangle26_6{
			Min: fixed.Point26_6{X: 0, Y: -f.metrics.Ascent},
			Max: fixed.Point26_6{X: advance, Y: 0},
		}
	}
	logical = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: -f.metrics.Ascent},
		Max: fixed.Point26_6{X: advance, Y: f.metrics.Descent},
	}
	return bounds, logical
}

// Kerning returns the horizontal kerning between two glyphs, or 0 if the
// font does not kern them.
func (f *Font) Kerning(left, right shaping.Glyph) fixed.Int26_6 {
	if left > 0xFFFF || right > 0xFFFF {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	k, err := f.f.Kern(&f.buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), f.ppem, f.hinting)
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) {
			tracer().Debugf("kerning %v/%v: %v", left, right, err)
		}
		return 0
	}
	return k
}

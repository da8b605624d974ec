package shaping

import (
	"unicode"

	"github.com/npillmayer/textcore/bidi"
	"github.com/npillmayer/textcore/engine"
)

// BasicShaperID is the engine ID of the basic shaper, suffixed by the
// render type it is registered for.
const BasicShaperID = "BasicShaper"

// BasicShaper is a shaping engine mapping every character to a single glyph.
// It is suitable for scripts without contextual forms and serves as a
// default engine for font backends.
//
// Characters of right-to-left runs are mirrored. Non-spacing marks are
// combined with the preceding glyph into one cluster, a crude approximation
// of overstriking.
type BasicShaper struct {
	id string
}

// NewBasicShaper creates a basic shaper. It is a valid engine.Factory.
func NewBasicShaper(id string) engine.Engine {
	return &BasicShaper{id: id}
}

// ID returns the engine ID.
func (bs *BasicShaper) ID() string {
	return bs.id
}

// BasicShaperInfo returns the engine info to register the basic shaper for
// a render type. The shaper covers all of Unicode, without any language
// preference.
func BasicShaperInfo(renderType string) engine.Info {
	return engine.Info{
		ID:         BasicShaperID + "-" + renderType,
		Type:       engine.TypeShape,
		RenderType: renderType,
		Ranges:     []engine.Range{{Start: 0, End: 0x10FFFF}},
	}
}

// Shape implements ShapeEngine.
func (bs *BasicShaper) Shape(font Font, text string, analysis *Analysis, glyphs *GlyphString) {
	glyphs.SetSize(0)
	if font == nil || analysis == nil {
		return
	}
	kerning := currentConfig().Kerning
	rtl := analysis.Level.IsRTL()
	i := 0
	for offset, r := range text {
		if rtl {
			r, _ = bidi.MirrorOf(r)
		}
		if r == 0x00A0 { // no-break space
			r = ' '
		}
		glyphs.Glyphs = append(glyphs.Glyphs, GlyphInfo{})
		glyphs.LogClusters = append(glyphs.LogClusters, offset)
		if IsZeroWidth(r) {
			glyphs.Glyphs[i].Glyph = GlyphEmpty
			i++
			continue
		}
		g := font.GlyphIndex(r)
		if g == 0 {
			setGlyph(font, glyphs, i, unknownGlyph(font, r))
			i++
			continue
		}
		setGlyph(font, glyphs, i, g)
		if i > 0 {
			if unicode.Is(unicode.Mn, r) {
				combineMark(font, glyphs, i)
			} else if kerning {
				kern(font, glyphs, i)
			}
		}
		i++
	}
	if rtl {
		glyphs.ReverseClusters()
	}
}

// setGlyph puts glyph g at position i, with its logical width as advance.
func setGlyph(font Font, glyphs *GlyphString, i int, g Glyph) {
	_, logical := glyphExtents(font, g)
	glyphs.Glyphs[i].Glyph = g
	glyphs.Glyphs[i].Geometry = GlyphGeometry{Width: logical.Max.X - logical.Min.X}
}

// combineMark merges the mark at position i into the cluster of the glyph
// before it. The previous glyph takes the larger of both advance widths, the
// mark gets none. Marks without an advance of their own and without a left
// side bearing are centered over the previous glyph.
func combineMark(font Font, glyphs *GlyphString, i int) {
	prev, mark := &glyphs.Glyphs[i-1], &glyphs.Glyphs[i]
	if mark.Geometry.Width > prev.Geometry.Width {
		prev.Geometry.Width = mark.Geometry.Width
	}
	mark.Geometry.Width = 0
	glyphs.LogClusters[i] = glyphs.LogClusters[i-1]
	ink, logical := glyphExtents(font, mark.Glyph)
	if logical.Max.X == logical.Min.X && ink.Min.X == 0 {
		mark.Geometry.XOffset = -(prev.Geometry.Width + ink.Max.X - ink.Min.X) / 2
	}
}

// kern adds the kerning between the glyphs at i-1 and i to the advance of
// the glyph at i-1.
func kern(font Font, glyphs *GlyphString, i int) {
	left, right := glyphs.Glyphs[i-1].Glyph, glyphs.Glyphs[i].Glyph
	if left == GlyphEmpty || left.IsUnknown() || right.IsUnknown() {
		return
	}
	glyphs.Glyphs[i-1].Geometry.Width += font.Kerning(left, right)
}

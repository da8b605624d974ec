package shaping

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Glyph is a glyph index of a font, or one of the special glyph values
// GlyphEmpty or an unknown glyph (see UnknownGlyph).
type Glyph uint32

const (
	// GlyphEmpty is a glyph which renders as nothing and has no extent.
	GlyphEmpty Glyph = 0x0FFFFFFF
	// GlyphUnknownFlag is set for placeholder glyphs of characters not
	// covered by a font. The remaining bits hold the character.
	GlyphUnknownFlag Glyph = 0x10000000
)

// UnknownGlyph returns the default placeholder glyph for r.
func UnknownGlyph(r rune) Glyph {
	return GlyphUnknownFlag | Glyph(r)
}

// IsUnknown is true for placeholder glyphs.
func (g Glyph) IsUnknown() bool {
	return g&GlyphUnknownFlag != 0
}

// Rune returns the character of a placeholder glyph, or -1 for other glyphs.
func (g Glyph) Rune() rune {
	if !g.IsUnknown() {
		return -1
	}
	return rune(g &^ GlyphUnknownFlag)
}

func (g Glyph) String() string {
	switch {
	case g == GlyphEmpty:
		return "<empty>"
	case g.IsUnknown():
		return fmt.Sprintf("<U+%04X>", g.Rune())
	}
	return fmt.Sprintf("#%d", uint32(g))
}

// Font is what a font backend has to provide for shaping.
//
// GlyphIndex returns 0 if the font has no glyph for r. GlyphExtents has to
// handle placeholder glyphs, usually by returning the extents of a box
// suitable to display the hex code of the character. Kerning returns the
// kerning adjustment between two adjacent glyphs; it may always return 0.
type Font interface {
	GlyphIndex(r rune) Glyph
	GlyphExtents(g Glyph) (ink, logical fixed.Rectangle26_6)
	Kerning(left, right Glyph) fixed.Int26_6
}

// UnknownGlypher is implemented by fonts which use their own placeholder
// glyphs. It replaces the default UnknownGlyph.
type UnknownGlypher interface {
	UnknownGlyph(r rune) Glyph
}

// unknownGlyph returns the placeholder for r, as produced by font.
func unknownGlyph(font Font, r rune) Glyph {
	if u, ok := font.(UnknownGlypher); ok {
		return u.UnknownGlyph(r)
	}
	return UnknownGlyph(r)
}

// glyphExtents returns the extents of g. The empty glyph, glyph 0 and glyphs
// of a missing font have zero extents.
func glyphExtents(font Font, g Glyph) (ink, logical fixed.Rectangle26_6) {
	if font == nil || g == 0 || g == GlyphEmpty {
		return
	}
	return font.GlyphExtents(g)
}

// describeFont returns a name for a font, for messages.
func describeFont(font Font) string {
	if font == nil {
		return "<no font>"
	}
	if s, ok := font.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", font)
}

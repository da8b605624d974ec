package shaping

import "unicode"

// fallbackShaper shapes runs without a usable shaping engine. It produces
// placeholder glyphs for every character, and empty glyphs for zero-width
// characters. Non-spacing marks are put into the cluster of the preceding
// character.
type fallbackShaper struct{}

var fallback fallbackShaper

func (fallbackShaper) ID() string {
	return "FallbackShaper"
}

func (fallbackShaper) Shape(font Font, text string, analysis *Analysis, glyphs *GlyphString) {
	glyphs.SetSize(0)
	cluster := 0
	for offset, r := range text {
		if !unicode.Is(unicode.Mn, r) {
			cluster = offset
		}
		g := GlyphEmpty
		if !IsZeroWidth(r) {
			g = unknownGlyph(font, r)
		}
		_, logical := glyphExtents(font, g)
		glyphs.Glyphs = append(glyphs.Glyphs, GlyphInfo{
			Glyph:    g,
			Geometry: GlyphGeometry{Width: logical.Max.X - logical.Min.X},
		})
		glyphs.LogClusters = append(glyphs.LogClusters, cluster)
	}
	if analysis != nil && analysis.Level.IsRTL() {
		glyphs.ReverseClusters()
	}
}

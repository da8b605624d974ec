package sfntfont

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcore/engine"
	"github.com/npillmayer/textcore/shaping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.sfnt")
	defer teardown()
	//
	_, err := Parse([]byte("no font"), "broken", fixed.I(12))
	assert.Error(t, err)
	_, err = GoRegular(0)
	assert.Error(t, err)
}

func TestGlyphIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.sfnt")
	defer teardown()
	//
	f, err := GoRegular(fixed.I(12))
	require.NoError(t, err)
	t.Logf("font = %s", f)
	assert.NotEqual(t, shaping.Glyph(0), f.GlyphIndex('a'))
	assert.Equal(t, shaping.Glyph(0), f.GlyphIndex(0x4E00), "Go Regular has no CJK glyphs")
}

func TestGlyphExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.sfnt")
	defer teardown()
	//
	f, err := GoRegular(fixed.I(12))
	require.NoError(t, err)
	ink, logical := f.GlyphExtents(f.GlyphIndex('M'))
	assert.True(t, logical.Max.X > 0, "advance of 'M' should be positive")
	assert.True(t, ink.Min.Y < 0, "ink of 'M' should be above the baseline")
	assert.Equal(t, -f.Metrics().Ascent, logical.Min.Y)
	assert.Equal(t, f.Metrics().Descent, logical.Max.Y)
	//
	ink, logical = f.GlyphExtents(shaping.GlyphEmpty)
	assert.True(t, ink.Empty() && logical.Empty())
	_, logical = f.GlyphExtents(shaping.UnknownGlyph(0x4E00))
	assert.True(t, logical.Max.X > 0, "placeholder glyphs should have an advance")
}

func TestShapeWithRegisteredEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.sfnt")
	defer teardown()
	//
	f, err := GoRegular(fixed.I(16))
	require.NoError(t, err)
	m := engine.FindMap("en", engine.TypeShape, RenderType)
	e, ok := m.GetEngine(language.Latin).(shaping.ShapeEngine)
	require.True(t, ok, "expected a shape engine for Latin")
	assert.Equal(t, shaping.BasicShaperID+"-"+RenderType, e.ID())
	//
	analysis := &shaping.Analysis{ShapeEngine: e, Font: f, Script: language.Latin}
	glyphs := &shaping.GlyphString{}
	require.NoError(t, shaping.Shape("Hi 一", analysis, glyphs))
	require.Equal(t, 4, glyphs.Len())
	assert.True(t, glyphs.Glyphs[3].Glyph.IsUnknown())
	assert.True(t, glyphs.Glyphs[3].Geometry.Width > 0)
	assert.Equal(t, []int{0, 1, 2, 3}, glyphs.LogClusters)
	assert.True(t, glyphs.Width() > fixed.I(16))
}

package shaping

import (
	"fmt"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcore/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// testFont has a glyph for every ASCII character, with glyph index equal to
// the character, plus a combining acute accent. Every glyph is 10 units wide,
// the accent has no advance. Placeholders are 20 units wide.
type testFont struct{}

const acute = 0x0301

func (testFont) GlyphIndex(r rune) Glyph {
	if (r >= 0x20 && r < 0x7F) || r == acute {
		return Glyph(r)
	}
	return 0
}

func (testFont) GlyphExtents(g Glyph) (ink, logical fixed.Rectangle26_6) {
	switch {
	case g.IsUnknown():
		logical.Max = fixed.P(20, 10)
	case g == acute:
		ink.Max = fixed.P(4, 10)
	default:
		logical.Max = fixed.P(10, 10)
		ink.Min = fixed.P(1, 0)
		ink.Max = fixed.P(9, 8)
	}
	return
}

func (testFont) Kerning(left, right Glyph) fixed.Int26_6 {
	if left == 'A' && right == 'V' {
		return -fixed.I(2)
	}
	return 0
}

func (testFont) String() string { return "TestFont" }

func glyphIDs(gs *GlyphString) []Glyph {
	ids := make([]Glyph, gs.Len())
	for i, g := range gs.Glyphs {
		ids[i] = g.Glyph
	}
	return ids
}

func shapeLTR(t *testing.T, text string) *GlyphString {
	gs := &GlyphString{}
	a := &Analysis{ShapeEngine: NewBasicShaper("test").(ShapeEngine), Font: testFont{}}
	require.NoError(t, Shape(text, a, gs))
	return gs
}

// ---------------------------------------------------------------------------

func TestReverseClusters(t *testing.T) {
	gs := &GlyphString{}
	gs.SetSize(6)
	copy(gs.LogClusters, []int{0, 0, 1, 2, 2, 2})
	for i := range gs.Glyphs {
		gs.Glyphs[i].Glyph = Glyph(i + 1)
	}
	gs.ReverseClusters()
	assert.Equal(t, []int{2, 2, 2, 1, 0, 0}, gs.LogClusters)
	assert.Equal(t, []Glyph{4, 5, 6, 3, 1, 2}, glyphIDs(gs))
	gs.SetSize(1)
	gs.ReverseClusters()
	assert.Equal(t, []int{0}, gs.LogClusters)
}

func TestBasicShaper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.shaping")
	defer teardown()
	//
	gs := shapeLTR(t, "AV")
	assert.Equal(t, []Glyph{'A', 'V'}, glyphIDs(gs))
	assert.Equal(t, fixed.I(8), gs.Glyphs[0].Geometry.Width, "kerning should apply to A")
	assert.Equal(t, fixed.I(18), gs.Width())
	assert.Equal(t, []int{0, 1}, gs.LogClusters)
	assert.True(t, gs.Glyphs[0].Attr.IsClusterStart && gs.Glyphs[1].Attr.IsClusterStart)
}

func TestKerningConfig(t *testing.T) {
	defer Configure(DefaultConfig())
	Configure(ConfigFrom(testconfig.Conf{KeyKerning: "false"}))
	gs := shapeLTR(t, "AV")
	assert.Equal(t, fixed.I(20), gs.Width())
	c := ConfigFrom(testconfig.Conf{KeyWarnFallback: false})
	assert.True(t, c.Kerning)
	assert.False(t, c.WarnFallback)
}

func TestNonSpacingMark(t *testing.T) {
	gs := shapeLTR(t, "e\u0301x")
	require.Equal(t, 3, gs.Len())
	assert.Equal(t, []int{0, 0, 3}, gs.LogClusters)
	assert.Equal(t, fixed.I(10), gs.Glyphs[0].Geometry.Width)
	assert.Equal(t, fixed.Int26_6(0), gs.Glyphs[1].Geometry.Width)
	assert.Equal(t, -fixed.I(7), gs.Glyphs[1].Geometry.XOffset, "mark should be centered over base")
	assert.True(t, gs.Glyphs[0].Attr.IsClusterStart)
	assert.False(t, gs.Glyphs[1].Attr.IsClusterStart)
	assert.Equal(t, []fixed.Int26_6{fixed.I(5), fixed.I(5), fixed.I(10)}, gs.LogicalWidths("e\u0301x"))
}

func TestZeroWidthAndUnknown(t *testing.T) {
	gs := shapeLTR(t, "a\u200b\u4e00\u00a0")
	require.Equal(t, 4, gs.Len())
	assert.Equal(t, GlyphEmpty, gs.Glyphs[1].Glyph)
	assert.Equal(t, fixed.Int26_6(0), gs.Glyphs[1].Geometry.Width)
	assert.True(t, gs.Glyphs[2].Glyph.IsUnknown())
	assert.Equal(t, rune(0x4e00), gs.Glyphs[2].Glyph.Rune())
	assert.Equal(t, fixed.I(20), gs.Glyphs[2].Geometry.Width)
	assert.Equal(t, Glyph(' '), gs.Glyphs[3].Glyph, "no-break space should be shaped as space")
	assert.True(t, IsZeroWidth(0xFEFF))
	assert.False(t, IsZeroWidth('a'))
}

func TestRightToLeftRun(t *testing.T) {
	gs := &GlyphString{}
	a := &Analysis{Level: 1, ShapeEngine: NewBasicShaper("test").(ShapeEngine), Font: testFont{}}
	require.NoError(t, Shape("(ae\u0301)", a, gs))
	// mirrored parens, visual order, cluster e+acute kept in logical order
	assert.Equal(t, []Glyph{'(', 'e', acute, 'a', ')'}, glyphIDs(gs))
	assert.Equal(t, []int{5, 2, 2, 1, 0}, gs.LogClusters)
	assert.Equal(t, []bool{true, true, false, true, true}, clusterStarts(gs))
}

func clusterStarts(gs *GlyphString) []bool {
	s := make([]bool, gs.Len())
	for i, g := range gs.Glyphs {
		s[i] = g.Attr.IsClusterStart
	}
	return s
}

type failingShaper struct{}

func (failingShaper) ID() string { return "failing" }
func (failingShaper) Shape(Font, string, *Analysis, *GlyphString) {}

func TestFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.shaping")
	defer teardown()
	//
	gs := &GlyphString{}
	require.NoError(t, Shape("ab\u0301", &Analysis{Font: testFont{}}, gs))
	require.Equal(t, 3, gs.Len())
	assert.True(t, gs.Glyphs[0].Glyph.IsUnknown())
	assert.Equal(t, []int{0, 1, 1}, gs.LogClusters)
	for i := 0; i < 2; i++ { // second round must not warn again
		require.NoError(t, Shape("xy", &Analysis{ShapeEngine: failingShaper{}, Font: testFont{}}, gs))
		assert.Equal(t, 2, gs.Len())
	}
	require.NoError(t, Shape("x", &Analysis{}, gs))
	assert.Equal(t, fixed.Int26_6(0), gs.Width())
	assert.Equal(t, ErrNoAnalysis, Shape("x", nil, gs))
}

func TestExtents(t *testing.T) {
	gs := shapeLTR(t, "ab")
	ink, logical := gs.Extents(testFont{})
	assert.Equal(t, fixed.I(20), logical.Max.X)
	assert.Equal(t, fixed.I(10), logical.Max.Y)
	assert.Equal(t, fixed.I(1), ink.Min.X)
	assert.Equal(t, fixed.I(19), ink.Max.X)
}

func TestBreak(t *testing.T) {
	attrs := Break("hello world", nil)
	require.Len(t, attrs, 12)
	assert.True(t, attrs[6].IsLineBreak)
	assert.False(t, attrs[3].IsLineBreak)
	assert.True(t, attrs[0].IsWordStart)
	assert.True(t, attrs[5].IsWordEnd)
	assert.True(t, attrs[5].IsWhite)
	assert.True(t, attrs[3].IsCursorPosition)
	assert.True(t, attrs[6].IsWordStart)
	assert.False(t, attrs[6].IsMandatoryBreak)
	assert.False(t, attrs[11].IsLineBreak)
	attrs = Break("a\nb", nil)
	assert.True(t, attrs[2].IsMandatoryBreak)
	assert.Len(t, Break("", nil), 1)
}

func TestArabicLangEngine(t *testing.T) {
	m := engine.FindMap("ar", engine.TypeLang, engine.RenderNone)
	e := m.GetEngine(language.Arabic)
	require.NotNil(t, e, "Arabic language engine should be registered")
	lang, ok := e.(LangEngine)
	require.True(t, ok)
	text := "\u0622\u0628"
	attrs := Break(text, nil)
	assert.True(t, attrs[1].BackspaceDeletesCharacter)
	attrs = Break(text, &Analysis{LangEngine: lang})
	assert.False(t, attrs[1].BackspaceDeletesCharacter)
	assert.True(t, attrs[2].BackspaceDeletesCharacter)
}

func ExampleGlyphString_ReverseClusters() {
	gs := &GlyphString{}
	gs.SetSize(6)
	copy(gs.LogClusters, []int{0, 0, 1, 2, 2, 2})
	gs.ReverseClusters()
	fmt.Println(gs.LogClusters)
	// Output: [2 2 2 1 0 0]
}

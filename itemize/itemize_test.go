package itemize

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcore/bidi"
	"github.com/npillmayer/textcore/engine"
	"github.com/npillmayer/textcore/sfntfont"
	"github.com/npillmayer/textcore/shaping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func testRegistry(t *testing.T) *engine.Registry {
	reg := engine.NewRegistry()
	require.NoError(t, reg.Register(shaping.BasicShaperInfo("test"), shaping.NewBasicShaper))
	return reg
}

func itemTexts(text string, items []Item) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text(text)
	}
	return texts
}

func TestItemizeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.itemize")
	defer teardown()
	//
	_, err := Itemize("abc", Params{})
	assert.ErrorIs(t, err, ErrNoRenderType)
	_, err = Itemize("abc", Params{Direction: bidi.Direction(-1), RenderType: "test"})
	assert.ErrorIs(t, err, bidi.ErrInvalidDirection)
	items, err := Itemize("", Params{RenderType: "test"})
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemizeLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.itemize")
	defer teardown()
	//
	reg := testRegistry(t)
	text := "abc אבג"
	items, err := Itemize(text, Params{Language: "en", RenderType: "test", Registry: reg})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"abc ", "אבג"}, itemTexts(text, items))
	assert.Equal(t, bidi.Level(0), items[0].Analysis.Level)
	assert.Equal(t, language.Latin, items[0].Analysis.Script)
	assert.Equal(t, bidi.Level(1), items[1].Analysis.Level)
	assert.Equal(t, language.Hebrew, items[1].Analysis.Script)
	assert.Equal(t, 3, items[1].NumChars)
	assert.Equal(t, 6, items[1].Length)
	require.NotNil(t, items[1].Analysis.ShapeEngine)
	assert.Equal(t, "BasicShaper-test", items[1].Analysis.ShapeEngine.ID())
	assert.Nil(t, items[1].Analysis.LangEngine)
}

func TestItemizeScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.itemize")
	defer teardown()
	//
	reg := testRegistry(t)
	for i, x := range []struct {
		text  string
		items []string
	}{
		{"abc 123", []string{"abc 123"}},
		{"abcабв", []string{"abc", "абв"}},
		{"(abc) абв.", []string{"(abc) ", "абв."}},
		{"é", []string{"é"}},
	} {
		items, err := Itemize(x.text, Params{Direction: bidi.LeftToRight, Language: "en", RenderType: "test", Registry: reg})
		require.NoError(t, err)
		if texts := itemTexts(x.text, items); !assert.Equal(t, x.items, texts) {
			t.Logf("test #%d failed", i)
		}
	}
}

func TestReorderItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.itemize")
	defer teardown()
	//
	reg := testRegistry(t)
	text := "אבג abc"
	items, err := Itemize(text, Params{Direction: bidi.Neutral, Language: "en", RenderType: "test", Registry: reg})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, bidi.Level(1), items[0].Analysis.Level)
	assert.Equal(t, bidi.Level(2), items[1].Analysis.Level)
	visual := ReorderItems(items)
	assert.Equal(t, []string{"abc", "אבג "}, itemTexts(text, visual))
	assert.Equal(t, []string{"אבג ", "abc"}, itemTexts(text, items), "input must not be modified")
}

func TestArabicItemsWithSFNT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.itemize")
	defer teardown()
	//
	font, err := sfntfont.GoRegular(fixed.I(12))
	require.NoError(t, err)
	text := "سلام"
	items, err := Itemize(text, Params{Language: "ar", RenderType: sfntfont.RenderType, Font: font})
	require.NoError(t, err)
	require.Len(t, items, 1)
	a := &items[0].Analysis
	assert.Equal(t, language.Arabic, a.Script)
	assert.True(t, a.Level.IsRTL())
	require.NotNil(t, a.LangEngine)
	assert.Equal(t, shaping.ArabicLangEngineID, a.LangEngine.ID())
	require.NotNil(t, a.ShapeEngine)
	//
	glyphs := &shaping.GlyphString{}
	require.NoError(t, shaping.Shape(items[0].Text(text), a, glyphs))
	assert.Equal(t, 4, glyphs.Len())
	assert.Equal(t, []int{6, 4, 2, 0}, glyphs.LogClusters)
	attrs := shaping.Break(text, a)
	assert.Len(t, attrs, 5)
}

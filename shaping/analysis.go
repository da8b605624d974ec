package shaping

import (
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/textcore/bidi"
	"github.com/npillmayer/textcore/engine"
)

// Analysis describes a run of text with uniform properties.
type Analysis struct {
	Level       bidi.Level        // embedding level of the run
	Language    language.Language // language of the run
	Script      language.Script   // script of the run
	ShapeEngine ShapeEngine       // engine to shape the run, may be nil
	LangEngine  LangEngine        // engine to tweak break attributes, may be nil
	Font        Font              // font to shape with, may be nil
}

// ShapeEngine is the interface of engines of type engine.TypeShape.
// Engines shape a run of text in a font and put the result into glyphs,
// replacing its previous content.
type ShapeEngine interface {
	engine.Engine
	Shape(font Font, text string, analysis *Analysis, glyphs *GlyphString)
}

// LangEngine is the interface of engines of type engine.TypeLang.
// Engines adjust the break attributes computed by Break for a run of text.
type LangEngine interface {
	engine.Engine
	ScriptBreak(text string, analysis *Analysis, attrs []LogAttr)
}

/*
Package itemize splits a paragraph of text into items, i.e. runs of
uniform embedding level, script and engines, ready to be shaped.

	items, err := itemize.Itemize(text, itemize.Params{
		Direction:  bidi.Neutral,
		RenderType: sfntfont.RenderType,
		Font:       font,
	})
	for _, item := range itemize.ReorderItems(items) {
		shaping.Shape(text[item.Offset:item.Offset+item.Length], &item.Analysis, glyphs)
		…
	}

Line breaking is not done by the itemizer; ReorderItems should be applied to
the items of a single line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package itemize

import (
	"errors"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcore/bidi"
	"github.com/npillmayer/textcore/engine"
	"github.com/npillmayer/textcore/shaping"
)

// tracer traces with key 'textcore.itemize'.
func tracer() tracing.Trace {
	return tracing.Select("textcore.itemize")
}

// ErrNoRenderType is returned by Itemize if the parameters do not name a
// render type to find shape engines for.
var ErrNoRenderType = errors.New("textcore/itemize: no render type given")

// Params are the parameters for itemizing a paragraph.
type Params struct {
	Direction  bidi.Direction    // paragraph direction hint
	Language   language.Language // language of the text; default from the environment
	RenderType string            // render type of the font backend
	Font       shaping.Font      // font for all items, may be nil
	Registry   *engine.Registry  // engine registry; default is engine.Modules()
}

// Item is a run of text with uniform analysis.
type Item struct {
	Offset   int // byte offset into the paragraph
	Length   int // length in bytes
	NumChars int // length in code-points
	Analysis shaping.Analysis
}

// Text returns the text of an item.
func (it Item) Text(paragraph string) string {
	return paragraph[it.Offset : it.Offset+it.Length]
}

// Itemize splits a paragraph into items, in logical order. A new item starts
// wherever the embedding level, the script, the shape engine or the language
// engine changes.
//
// Characters of script Common or Inherited (spaces, punctuation, combining
// marks) belong to the script of the characters preceding them. If there are
// none, they take the script of the first character following them.
func Itemize(text string, p Params) ([]Item, error) {
	if p.RenderType == "" {
		return nil, ErrNoRenderType
	}
	runes := []rune(text)
	levels, dir, err := bidi.EmbeddingLevels(runes, p.Direction)
	if err != nil {
		return nil, err
	}
	if len(runes) == 0 {
		return nil, nil
	}
	reg := p.Registry
	if reg == nil {
		reg = engine.Modules()
	}
	lang := p.Language
	if lang == "" {
		lang = engine.DefaultLanguage()
	}
	shapeMap := reg.FindMap(lang, engine.TypeShape, p.RenderType)
	langMap := reg.FindMap(lang, engine.TypeLang, engine.RenderNone)
	tracer().Debugf("itemizing %d characters, paragraph direction %s", len(runes), dir)
	//
	scripts := resolveScripts(runes)
	var items []Item
	var cur *Item
	i := 0
	for offset := range text {
		a := shaping.Analysis{
			Level:    levels[i],
			Language: lang,
			Script:   scripts[i],
			Font:     p.Font,
		}
		if cur != nil && cur.Analysis.Level == a.Level && cur.Analysis.Script == a.Script {
			a.ShapeEngine, a.LangEngine = cur.Analysis.ShapeEngine, cur.Analysis.LangEngine
		} else {
			a.ShapeEngine = shapeEngine(shapeMap.GetEngine(a.Script))
			a.LangEngine = langEngine(langMap.GetEngine(a.Script))
		}
		if cur == nil || !sameAnalysis(&cur.Analysis, &a) {
			items = append(items, Item{Offset: offset, Analysis: a})
			cur = &items[len(items)-1]
		}
		_, size := utf8.DecodeRuneInString(text[offset:])
		cur.Length += size
		cur.NumChars++
		i++
	}
	tracer().Debugf("paragraph has %d items", len(items))
	return items, nil
}

// ReorderItems returns the items of a line in visual order (rule L2).
// items have to be in logical order. The input is not modified.
func ReorderItems(items []Item) []Item {
	levels := make([]bidi.Level, len(items))
	for i := range items {
		levels[i] = items[i].Analysis.Level
	}
	visual := make([]Item, len(items))
	for i, j := range bidi.VisualOrder(levels) {
		visual[i] = items[j]
	}
	return visual
}

// resolveScripts finds the script of every character, resolving Common and
// Inherited.
func resolveScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	last := language.Script(0)
	pending := 0 // leading characters without a real script
	for i, r := range runes {
		s := language.LookupScript(r)
		if s == language.Common || s == language.Inherited || s == language.Unknown {
			if last == 0 {
				pending++
				scripts[i] = language.Common
				continue
			}
			s = last
		} else if last == 0 {
			for j := 0; j < pending; j++ {
				scripts[j] = s
			}
		}
		last = s
		scripts[i] = s
	}
	return scripts
}

func shapeEngine(e engine.Engine) shaping.ShapeEngine {
	if se, ok := e.(shaping.ShapeEngine); ok {
		return se
	}
	if e != nil {
		tracer().Errorf("engine %q is not a shape engine", e.ID())
	}
	return nil
}

func langEngine(e engine.Engine) shaping.LangEngine {
	if le, ok := e.(shaping.LangEngine); ok {
		return le
	}
	if e != nil {
		tracer().Errorf("engine %q is not a language engine", e.ID())
	}
	return nil
}

func sameAnalysis(a, b *shaping.Analysis) bool {
	return a.Level == b.Level && a.Script == b.Script &&
		sameEngine(a.ShapeEngine, b.ShapeEngine) && sameEngine(a.LangEngine, b.LangEngine)
}

// Engines are identified by ID, as every registered engine is instantiated
// at most once per registry.
func sameEngine(a, b engine.Engine) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

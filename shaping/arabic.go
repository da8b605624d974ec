package shaping

import (
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/textcore/engine"
)

// ArabicLangEngineID is the ID of the language engine for Arabic script.
const ArabicLangEngineID = "ArabicScriptEngineLang"

func init() {
	info := engine.Info{
		ID:         ArabicLangEngineID,
		Type:       engine.TypeLang,
		RenderType: engine.RenderNone,
		Ranges:     engine.ScriptCoverage(language.Arabic, "*"),
	}
	if err := engine.Register(info, newArabicLangEngine); err != nil {
		tracer().Errorf("cannot register Arabic language engine: %v", err)
	}
}

// arabicLangEngine adjusts break attributes for Arabic text: for letters
// which are commonly typed as two characters, but are encoded as one (or
// vice versa), backspace deletes the whole cluster.
type arabicLangEngine struct {
	id string
}

func newArabicLangEngine(id string) engine.Engine {
	return arabicLangEngine{id: id}
}

func (e arabicLangEngine) ID() string {
	return e.id
}

func (e arabicLangEngine) ScriptBreak(text string, analysis *Analysis, attrs []LogAttr) {
	var prev rune
	i := 0
	for _, r := range text {
		if i+1 >= len(attrs) {
			break
		}
		if r == 0x0622 || (prev == 0x0627 && r == 0x0653) { // alef with madda, alef + madda above
			attrs[i+1].BackspaceDeletesCharacter = false
		}
		prev = r
		i++
	}
}

package shaping

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// LogAttr holds the break attributes of a position in a text. Position i is
// the position right before the i-th character; for a text of n characters
// there are n+1 positions.
type LogAttr struct {
	IsLineBreak               bool // a line may be broken here
	IsMandatoryBreak          bool // a line has to be broken here
	IsCharBreak               bool // a grapheme boundary
	IsWhite                   bool // the character following is whitespace
	IsCursorPosition          bool // the cursor may be placed here
	IsWordStart               bool // a word starts here
	IsWordEnd                 bool // a word ends here
	BackspaceDeletesCharacter bool // backspace deletes one character, not a grapheme
}

// Break computes the break attributes of a run of text. Defaults are
// computed by the Unicode line, grapheme and word segmentation algorithms;
// then the language engine of the analysis, if any, may adjust them.
//
// The result holds one attribute per position, i.e., one more than the
// number of characters in text. analysis may be nil.
//
// Grapheme boundaries of the segmenter set IsCharBreak and IsCursorPosition.
// Line boundaries inside the text set IsLineBreak, with IsMandatoryBreak for
// hard breaks. Every word segment sets IsWordStart at its first position and
// IsWordEnd after its last character.
func Break(text string, analysis *Analysis) []LogAttr {
	runes := []rune(text)
	attrs := make([]LogAttr, len(runes)+1)
	attrs[0].IsCharBreak = true
	attrs[0].IsCursorPosition = true
	if len(runes) > 0 {
		defaultBreak(runes, attrs)
	}
	if analysis != nil && analysis.LangEngine != nil {
		analysis.LangEngine.ScriptBreak(text, analysis, attrs)
	}
	return attrs
}

func defaultBreak(runes []rune, attrs []LogAttr) {
	var seg segmenter.Segmenter
	seg.Init(runes)
	graphemes := seg.GraphemeIterator()
	for graphemes.Next() {
		g := graphemes.Grapheme()
		end := g.Offset + len(g.Text)
		attrs[end].IsCharBreak = true
		attrs[end].IsCursorPosition = true
		attrs[end].BackspaceDeletesCharacter = true
	}
	lines := seg.LineIterator()
	for lines.Next() {
		l := lines.Line()
		end := l.Offset + len(l.Text)
		if end < len(runes) {
			attrs[end].IsLineBreak = true
			attrs[end].IsMandatoryBreak = l.IsMandatoryBreak
		}
	}
	words := seg.WordIterator()
	for words.Next() {
		w := words.Word()
		attrs[w.Offset].IsWordStart = true
		attrs[w.Offset+len(w.Text)].IsWordEnd = true
	}
	for i, r := range runes {
		attrs[i].IsWhite = unicode.IsSpace(r)
	}
}

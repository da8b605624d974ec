package main

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/textcore/bidi"
	"github.com/npillmayer/textcore/engine"
	"github.com/npillmayer/textcore/itemize"
	"github.com/npillmayer/textcore/sfntfont"
	"github.com/npillmayer/textcore/shaping"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// analyze runs a line of text through bidi analysis, itemization and
// shaping, and prints the results.
func (intp *Intp) analyze(line string) {
	levels, dir, err := bidi.EmbeddingLevelsString(line, intp.dir)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Info.Printf("paragraph direction is %s\n", dir)
	printCharacters([]rune(line), levels)
	items, err := itemize.Itemize(line, itemize.Params{
		Direction:  intp.dir,
		Language:   intp.lang,
		RenderType: sfntfont.RenderType,
		Font:       intp.font,
	})
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	printItems(line, items)
	printGlyphs(line, itemize.ReorderItems(items))
	pterm.Printf("visual: %s\n", visualString([]rune(line), levels))
}

func printCharacters(runes []rune, levels []bidi.Level) {
	data := [][]string{
		{"#", "Char", "Code", "Name", "Bidi", "Level", "Script"},
	}
	for i, r := range runes {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			printable(r),
			fmt.Sprintf("U+%04X", r),
			runenames.Name(r),
			bidi.TypeOf(r).String(),
			fmt.Sprintf("%d", levels[i]),
			language.LookupScript(r).String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printItems(line string, items []itemize.Item) {
	data := [][]string{
		{"#", "Text", "Offset", "Chars", "Level", "Script", "Shape engine", "Lang engine"},
	}
	for i, item := range items {
		a := item.Analysis
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%q", item.Text(line)),
			fmt.Sprintf("%d", item.Offset),
			fmt.Sprintf("%d", item.NumChars),
			fmt.Sprintf("%d", a.Level),
			a.Script.String(),
			engineID(a.ShapeEngine),
			engineID(a.LangEngine),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printGlyphs shapes items and prints the glyphs. items are expected to be in
// visual order.
func printGlyphs(line string, items []itemize.Item) {
	data := [][]string{
		{"Item", "Glyph", "Cluster", "Width", "X-Offset", "Start"},
	}
	glyphs := &shaping.GlyphString{}
	for i := range items {
		if err := shaping.Shape(items[i].Text(line), &items[i].Analysis, glyphs); err != nil {
			pterm.Error.Println(err)
			return
		}
		for j, g := range glyphs.Glyphs {
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				g.Glyph.String(),
				fmt.Sprintf("%d", items[i].Offset+glyphs.LogClusters[j]),
				g.Geometry.Width.String(),
				g.Geometry.XOffset.String(),
				fmt.Sprintf("%v", g.Attr.IsClusterStart),
			})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// visualString reorders a line for display, mirroring characters on odd
// levels.
func visualString(runes []rune, levels []bidi.Level) string {
	var sb strings.Builder
	for _, i := range bidi.VisualOrder(levels) {
		r := runes[i]
		if levels[i].IsRTL() {
			r, _ = bidi.MirrorOf(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func printEngines() {
	data := [][]string{
		{"ID", "Type", "Render type", "Ranges"},
	}
	for _, info := range engine.Modules().Engines() {
		data = append(data, []string{
			info.ID,
			info.Type,
			info.RenderType,
			fmt.Sprintf("%d", len(info.Ranges)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func engineID(e engine.Engine) string {
	if e == nil {
		return "-"
	}
	return e.ID()
}

func printable(r rune) string {
	if shaping.IsZeroWidth(r) || r < 0x20 {
		return " "
	}
	return string(r)
}

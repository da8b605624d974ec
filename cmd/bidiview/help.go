package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, arg string) (bool, error) {
	help(arg)
	return false, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "dir", "direction":
		pterm.Info.Println("Paragraph direction")
		pterm.Println(`
	:dir ltr|rtl        strong direction, used regardless of the text
	:dir wltr|wrtl      weak direction, used if the text has no strong character
	:dir neutral        direction of the first strong character, default LTR
	`)
	case "levels", "bidi":
		pterm.Info.Println("Embedding levels")
		pterm.Println(`
	Every character gets an embedding level. Even levels are left-to-right,
	odd levels are right-to-left. Explicit embeddings and isolates are
	treated as neutral characters; only implicit levels are resolved.
	`)
	case "items", "glyphs":
		pterm.Info.Println("Items and glyphs")
		pterm.Println(`
	Items are runs of uniform level, script and engines. They are shaped
	in visual order. The cluster column holds the byte offset of a glyph's
	cluster in the input line.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<text>              analyze a line of text
	:dir <direction>    set paragraph direction (see :help dir)
	:lang <tag>         set language, e.g. :lang ar
	:kern on|off        switch kerning
	:trace <level>      set trace level [Debug|Info|Error]
	:show               show settings and registered engines
	:help [topic]       topics: dir, levels, items
	:quit               quit
	`)
	}
}

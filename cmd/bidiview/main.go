/*
Command bidiview is an interactive viewer for the bidi levels, items and
glyphs of a line of text.

Every line entered is analyzed and displayed as tables. Lines starting with a
colon are commands, e.g. ":dir rtl" or ":help". Quit with <ctrl>D or ":quit".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/textcore/bidi"
	"github.com/npillmayer/textcore/engine"
	"github.com/npillmayer/textcore/sfntfont"
	"github.com/npillmayer/textcore/shaping"
	"github.com/pterm/pterm"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'textcore.bidiview'
func tracer() tracing.Trace {
	return tracing.Select("textcore.bidiview")
}

var tracingKeys = []string{
	"textcore.bidiview",
	"textcore.bidi",
	"textcore.engine",
	"textcore.shaping",
	"textcore.itemize",
	"textcore.sfnt",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.textcore.bidi":   "Info",
		"trace.textcore.engine": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	dir := flag.String("dir", "neutral", "Paragraph direction [ltr|rtl|wltr|wrtl|neutral]")
	lang := flag.String("lang", "", "Language of the text, default from the environment")
	fontfile := flag.String("font", "", "TrueType/OpenType font to load, default Go Regular")
	size := flag.Int("size", 12, "Font size in pixels per em")
	kern := flag.Bool("kern", true, "Apply kerning")
	flag.Parse()
	pterm.Info.Println("Welcome to the bidi viewer")
	level, err := traceLevel(*tlevel)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	setTraceLevel(level)
	conf["shaping.kerning"] = *kern
	shaping.Configure(shaping.ConfigFrom(conf))
	//
	intp := &Intp{lang: engine.DefaultLanguage()}
	if *lang != "" {
		intp.lang = engine.LanguageFromString(*lang)
	}
	if intp.dir, err = parseDirection(*dir); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if intp.font, err = loadFont(*fontfile, *size); err != nil {
		pterm.Error.Println(err)
		os.Exit(4)
	}
	pterm.Info.Printf("using font %s\n", intp.font)
	//
	// set up REPL
	if intp.repl, err = readline.New("bidi > "); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                              // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) (tracing.TraceLevel, error) {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func loadFont(fontfile string, size int) (*sfntfont.Font, error) {
	if size <= 0 {
		return nil, errors.New("font size must be positive")
	}
	if fontfile == "" {
		return sfntfont.GoRegular(fixed.I(size))
	}
	data, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return sfntfont.Parse(data, "", fixed.I(size))
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	dir  bidi.Direction
	lang language.Language
	font *sfntfont.Font
}

func (intp *Intp) String() string {
	return fmt.Sprintf("( dir=%s lang=%s )", intp.dir, intp.lang)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.analyze(line)
			continue
		}
		quit, err := intp.execute(line[1:])
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// --- Commands ---------------------------------------------------------

var commandFn = map[string]func(*Intp, string) (bool, error){
	"quit":  quitOp,
	"q":     quitOp,
	"help":  helpOp,
	"dir":   dirOp,
	"lang":  langOp,
	"trace": traceOp,
	"kern":  kernOp,
	"show":  showOp,
}

func (intp *Intp) execute(cmdline string) (bool, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(cmdline), " ")
	f, ok := commandFn[strings.ToLower(cmd)]
	if !ok {
		return false, fmt.Errorf("unknown command %q, try :help", cmd)
	}
	tracer().Debugf("command %s %q", cmd, arg)
	return f(intp, strings.TrimSpace(arg))
}

func quitOp(intp *Intp, arg string) (bool, error) {
	return true, nil
}

func dirOp(intp *Intp, arg string) (bool, error) {
	dir, err := parseDirection(arg)
	if err != nil {
		return false, err
	}
	intp.dir = dir
	pterm.Info.Printf("paragraph direction is %s\n", dir)
	return false, nil
}

func langOp(intp *Intp, arg string) (bool, error) {
	if arg == "" {
		return false, errors.New("usage: :lang <tag>")
	}
	intp.lang = engine.LanguageFromString(arg)
	pterm.Info.Printf("language is %s\n", intp.lang)
	return false, nil
}

func traceOp(intp *Intp, arg string) (bool, error) {
	level, err := traceLevel(arg)
	if err != nil {
		return false, err
	}
	setTraceLevel(level)
	return false, nil
}

func kernOp(intp *Intp, arg string) (bool, error) {
	c := shaping.DefaultConfig()
	switch strings.ToLower(arg) {
	case "on", "true":
		c.Kerning = true
	case "off", "false":
		c.Kerning = false
	default:
		return false, errors.New("usage: :kern on|off")
	}
	shaping.Configure(c)
	return false, nil
}

func showOp(intp *Intp, arg string) (bool, error) {
	pterm.Println(intp.String())
	pterm.Printf("font: %s\n", intp.font)
	printEngines()
	return false, nil
}

func parseDirection(s string) (bidi.Direction, error) {
	switch strings.ToLower(s) {
	case "ltr":
		return bidi.LeftToRight, nil
	case "rtl":
		return bidi.RightToLeft, nil
	case "wltr":
		return bidi.WeakLeftToRight, nil
	case "wrtl":
		return bidi.WeakRightToLeft, nil
	case "neutral", "":
		return bidi.Neutral, nil
	}
	return bidi.Neutral, fmt.Errorf("invalid direction %q", s)
}

/*
Package for a generator for the UAX#9 mirrored character table.

Content

Generator for the table of mirrored character pairs used by bidi.MirrorOf.
For more information see http://www.unicode.org/reports/tr9/#Mirroring

The table is generated from the UCD file "BidiMirroring.txt", which is
downloaded from unicode.org.

Usage

The generator has two options, a "verbose" flag and the Unicode version.

   mirrorgen [-v] [-u 15.0.0]

This creates a file "mirrortables.go" in the current directory. It is designed
to be called from the "bidi" directory (see the go:generate line in mirror.go).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime"
	"sort"
	"strconv"
	"text/template"
	"time"

	"github.com/npillmayer/textcore/internal/ucdparse"
	"golang.org/x/text/unicode/runenames"
)

var logger = log.New(os.Stderr, "UAX#9 mirror generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

type pair struct {
	Ch, Mirrored rune
}

// Load the Unicode UAX#9 mirroring file: BidiMirroring.txt
func loadBidiMirroringFile(version string) ([]pair, error) {
	url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/BidiMirroring.txt", version)
	if verbose {
		logger.Printf("reading %s", url)
	}
	defer timeTrack(time.Now(), "loading BidiMirroring.txt")
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return parseMirroring(resp.Body)
}

// parseMirroring reads lines of the form
//
//    0028; 0029 # LEFT PARENTHESIS
func parseMirroring(r io.Reader) ([]pair, error) {
	var pairs []pair
	var ferr error
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		if ferr != nil {
			return
		}
		m, err := strconv.ParseUint(token.Field(1), 16, 32)
		if err != nil {
			ferr = fmt.Errorf("line %d: %w", token.LineNo, err)
			return
		}
		pairs = append(pairs, pair{Ch: token.From, Mirrored: rune(m)})
	})
	if err == nil {
		err = ferr
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Ch < pairs[j].Ch })
	return pairs, err
}

// --- Templates --------------------------------------------------------

var templateTable = `package bidi

// This file has been generated by bidi/internal/mirrorgen -- you probably should NOT EDIT IT !
//
// Mirrored character pairs from BidiMirroring.txt, sorted by code-point.

var mirroredChars = [...]mirrorPair{
{{range .}}	{{"{"}}{{hex .Ch}}, {{hex .Mirrored}}{{"}"}}, // {{name .Ch}}
{{end}}}
`

var funcMap = template.FuncMap{
	"hex": func(r rune) string {
		return fmt.Sprintf("0x%04X", r)
	},
	"name": func(r rune) string {
		return runenames.Name(r)
	},
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	version := flag.String("u", "15.0.0", "Unicode version")
	flag.Parse()
	verbose = *doVerbose
	pairs, err := loadBidiMirroringFile(*version)
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d mirrored characters\n", len(pairs))
	}
	f, ioerr := os.Create("mirrortables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	t := template.Must(template.New("mirror table").Funcs(funcMap).Parse(templateTable))
	checkFatal(t.Execute(w, pairs))
	checkFatal(w.Flush())
}

// --- Util -------------------------------------------------------------

func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}

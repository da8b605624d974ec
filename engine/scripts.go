package engine

import (
	"sort"

	"github.com/go-text/typesetting/language"
)

// scriptsInRange returns the scripts of all code-points in [start, end], in
// order of first appearance. Unassigned code-points do not contribute.
func scriptsInRange(start, end rune) []language.Script {
	if end < start {
		return nil
	}
	ranges := language.ScriptRanges[:]
	i := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].End >= start
	})
	var scripts []language.Script
	seen := make(map[language.Script]bool)
	for ; i < len(ranges) && ranges[i].Start <= end; i++ {
		if s := ranges[i].Script; !seen[s] {
			seen[s] = true
			scripts = append(scripts, s)
		}
	}
	return scripts
}

// ScriptCoverage returns the code-point ranges of a script, all carrying the
// language list langs. Adjacent ranges are joined.
func ScriptCoverage(script language.Script, langs string) []Range {
	var ranges []Range
	for _, sr := range language.ScriptRanges {
		if sr.Script != script {
			continue
		}
		if n := len(ranges); n > 0 && ranges[n-1].End+1 == sr.Start {
			ranges[n-1].End = sr.End
			continue
		}
		ranges = append(ranges, Range{Start: sr.Start, End: sr.End, Langs: langs})
	}
	return ranges
}

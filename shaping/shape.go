package shaping

import "sync"

// warnings remembers which shaping problems have been reported already.
// Engine failures are reported once per font, missing engines and fonts
// once per process.
var warnings sync.Map // of string → bool

func warnOnce(key string, format string, args ...interface{}) {
	if !currentConfig().WarnFallback {
		return
	}
	if _, loaded := warnings.LoadOrStore(key, true); loaded {
		return
	}
	tracer().Errorf(format, args...)
}

// Shape shapes a run of text, as described by analysis, and puts the result
// into glyphs. The shape engine and font of the analysis are used; if either
// of them is missing, or if the engine produces no glyphs, the run is shaped
// by the fallback shaper. Every glyph string returned has its cluster starts
// marked.
//
// Shape returns ErrNoAnalysis if analysis or glyphs is nil.
func Shape(text string, analysis *Analysis, glyphs *GlyphString) error {
	if analysis == nil || glyphs == nil {
		return ErrNoAnalysis
	}
	glyphs.SetSize(0)
	if analysis.ShapeEngine != nil && analysis.Font != nil {
		analysis.ShapeEngine.Shape(analysis.Font, text, analysis, glyphs)
		if glyphs.Len() == 0 && text != "" {
			name := describeFont(analysis.Font)
			warnOnce("font:"+name, "shape engine %q failed, expect ugly output; the offending font is %s",
				analysis.ShapeEngine.ID(), name)
		}
	} else {
		if analysis.ShapeEngine == nil {
			warnOnce("no-engine", "shape called without a shape engine, expect ugly output")
		}
		if analysis.Font == nil {
			warnOnce("no-font", "shape called without a font, expect ugly output")
		}
	}
	if glyphs.Len() == 0 {
		fallback.Shape(analysis.Font, text, analysis, glyphs)
	}
	glyphs.setClusterStarts()
	return nil
}

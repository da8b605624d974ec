package shaping

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

// GlyphGeometry holds the positioning of a glyph.
type GlyphGeometry struct {
	Width   fixed.Int26_6 // advance width
	XOffset fixed.Int26_6 // horizontal offset from the pen position
	YOffset fixed.Int26_6 // vertical offset from the baseline
}

// GlyphVisAttr holds visual attributes of a glyph.
type GlyphVisAttr struct {
	IsClusterStart bool // first glyph of a cluster, in visual order
}

// GlyphInfo is a glyph with its positioning.
type GlyphInfo struct {
	Glyph    Glyph
	Geometry GlyphGeometry
	Attr     GlyphVisAttr
}

// GlyphString is the result of shaping a run of text. LogClusters runs
// parallel to Glyphs and holds for every glyph the byte offset of the start
// of its cluster in the text.
//
// For left-to-right runs, log clusters are non-decreasing. For right-to-left
// runs they are non-increasing, with the glyphs of a cluster still in logical
// order.
type GlyphString struct {
	Glyphs      []GlyphInfo
	LogClusters []int
}

// Len returns the number of glyphs.
func (gs *GlyphString) Len() int {
	return len(gs.Glyphs)
}

// SetSize resizes a glyph string to n glyphs. New glyphs are zero values.
func (gs *GlyphString) SetSize(n int) {
	if n <= cap(gs.Glyphs) && n <= cap(gs.LogClusters) {
		gs.Glyphs = gs.Glyphs[:n]
		gs.LogClusters = gs.LogClusters[:n]
		for i := range gs.Glyphs {
			gs.Glyphs[i] = GlyphInfo{}
			gs.LogClusters[i] = 0
		}
		return
	}
	gs.Glyphs = make([]GlyphInfo, n)
	gs.LogClusters = make([]int, n)
}

// SwapRange reverses the glyphs in [start, end), together with their log
// clusters.
func (gs *GlyphString) SwapRange(start, end int) {
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		gs.Glyphs[i], gs.Glyphs[j] = gs.Glyphs[j], gs.Glyphs[i]
		gs.LogClusters[i], gs.LogClusters[j] = gs.LogClusters[j], gs.LogClusters[i]
	}
}

// ReverseClusters brings a glyph string into visual order for right-to-left
// runs. It reverses the whole string, then reverses the glyphs of every
// cluster back, so that clusters keep their glyphs in logical order.
func (gs *GlyphString) ReverseClusters() {
	n := gs.Len()
	gs.SwapRange(0, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && gs.LogClusters[end] == gs.LogClusters[start] {
			end++
		}
		gs.SwapRange(start, end)
		start = end
	}
}

// setClusterStarts marks the first glyph of every cluster.
func (gs *GlyphString) setClusterStarts() {
	last := -1
	for i := range gs.Glyphs {
		gs.Glyphs[i].Attr.IsClusterStart = gs.LogClusters[i] != last
		last = gs.LogClusters[i]
	}
}

// Width returns the sum of the advance widths of all glyphs.
func (gs *GlyphString) Width() fixed.Int26_6 {
	var w fixed.Int26_6
	for _, g := range gs.Glyphs {
		w += g.Geometry.Width
	}
	return w
}

// Extents computes the ink and logical rectangles of a glyph string, with
// the origin at the start of the baseline. The logical rectangle always
// spans the full advance width of the string.
func (gs *GlyphString) Extents(font Font) (ink, logical fixed.Rectangle26_6) {
	var x fixed.Int26_6
	first := true
	for _, g := range gs.Glyphs {
		gink, glog := glyphExtents(font, g.Glyph)
		offset := fixed.Point26_6{X: x + g.Geometry.XOffset, Y: g.Geometry.YOffset}
		if !gink.Empty() {
			gink = gink.Add(offset)
			if first {
				ink, first = gink, false
			} else {
				ink = ink.Union(gink)
			}
		}
		if glog.Min.Y < logical.Min.Y {
			logical.Min.Y = glog.Min.Y
		}
		if glog.Max.Y > logical.Max.Y {
			logical.Max.Y = glog.Max.Y
		}
		x += g.Geometry.Width
	}
	logical.Max.X = x
	return
}

// LogicalWidths distributes the advance widths of the glyphs over the
// characters of text, the text the glyph string has been shaped from.
// Every character of a cluster gets an equal share of the cluster's width.
// The result holds one width per character, in logical order.
func (gs *GlyphString) LogicalWidths(text string) []fixed.Int26_6 {
	widths := make([]fixed.Int26_6, utf8.RuneCountInString(text))
	clusterWidth := make(map[int]fixed.Int26_6)
	for i, g := range gs.Glyphs {
		clusterWidth[gs.LogClusters[i]] += g.Geometry.Width
	}
	starts := make([]int, 0, len(clusterWidth))
	for start := range clusterWidth {
		starts = append(starts, start)
	}
	sort.Ints(starts)
	charIndex := func(offset int) int {
		return utf8.RuneCountInString(text[:offset])
	}
	for k, start := range starts {
		if start < 0 || start > len(text) {
			continue
		}
		end := len(text)
		if k+1 < len(starts) && starts[k+1] <= len(text) {
			end = starts[k+1]
		}
		from, to := charIndex(start), charIndex(end)
		if to <= from {
			continue
		}
		share := clusterWidth[start] / fixed.Int26_6(to-from)
		for i := from; i < to; i++ {
			widths[i] = share
		}
		// put the rounding remainder on the first character
		widths[from] += clusterWidth[start] - share*fixed.Int26_6(to-from)
	}
	return widths
}

package bidi

import (
	"unicode/utf8"
)

// EmbeddingLevels computes the embedding level of every character of a
// paragraph of text. base is a hint for the paragraph direction; the resolved
// (strong) paragraph direction is returned together with the levels.
//
// The result holds one level per code-point of text. EmbeddingLevels returns
// ErrInvalidDirection if base is not a valid Direction.
func EmbeddingLevels(text []rune, base Direction) ([]Level, Direction, error) {
	if !base.IsValid() {
		return nil, base, ErrInvalidDirection
	}
	types := TypesOf(text)
	levels := make([]Level, len(types))
	if dir, ok := uniformDirection(types, base); ok {
		if dir == RightToLeft {
			for i := range levels {
				levels[i] = 1
			}
		}
		return levels, dir, nil
	}
	dir, _ := resolveLevels(types, base, levels)
	return levels, dir, nil
}

// EmbeddingLevelsString is like EmbeddingLevels for UTF-8 encoded text.
// It returns one level per code-point, not per byte. Invalid UTF-8 is decoded
// as U+FFFD.
func EmbeddingLevelsString(text string, base Direction) ([]Level, Direction, error) {
	runes := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		runes = append(runes, r)
	}
	return EmbeddingLevels(runes, base)
}

// uniformDirection checks if a paragraph is all left-to-right or all
// right-to-left, without running the resolution passes. Results must be
// identical to what resolveLevels would produce for such paragraphs.
func uniformDirection(types []CharType, base Direction) (Direction, bool) {
	var ored CharType
	anded := RLE // strong and RTL
	for _, t := range types {
		ored |= t
		if t.IsStrong() {
			anded &= t
		}
	}
	letters := ored.IsLetter()
	if ored&(maskIsolate|maskRTL|maskArabic) == 0 &&
		(!base.IsRTL() || (base.IsWeak() && letters)) {
		return LeftToRight, true
	}
	if ored&(maskIsolate|maskNumber) == 0 && anded.IsRTL() &&
		(base.IsRTL() || (base.IsWeak() && letters)) {
		return RightToLeft, true
	}
	return Neutral, false
}

// resolveLevels runs the full set of resolution passes on a paragraph and
// writes a level for every character to levels.
// It returns the paragraph direction and the maximum level found.
func resolveLevels(types []CharType, base Direction, levels []Level) (Direction, Level) {
	assert(len(levels) == len(types), "levels and types must have equal length")
	rl := borrowRunList()
	defer releaseRunList(rl)
	rl.encode(types)
	baseLevel, baseType := paragraphLevel(rl, base)
	tracer().Debugf("bidi: base level %d, runs = %v", baseLevel, rl)
	// Explicit levels, overrides and terminating embeddings (X1–X10) are
	// not supported.
	resolveWeakTypes(rl, baseType)
	rl.compact()
	tracer().Debugf("bidi: weak types resolved, runs = %v", rl)
	resolveNeutralTypes(rl)
	tracer().Debugf("bidi: neutral types resolved, runs = %v", rl)
	maxLevel := resolveImplicitLevels(rl, baseLevel)
	rl.compact()
	for h := rl.first(); h != rl.eot; h = rl.get(h).next {
		r := rl.get(h)
		for i := r.pos; i < r.pos+r.len; i++ {
			levels[i] = r.level
		}
	}
	return baseLevel.Direction(), maxLevel
}

// paragraphLevel finds the base level and the base type (L or R) of a paragraph.
//
// Strong directions given by the client are used as is. Otherwise the first
// strong character decides. For paragraphs without strong characters a weak
// hint is used; the default is left-to-right.
func paragraphLevel(rl *runList, base Direction) (Level, CharType) {
	switch base {
	case LeftToRight:
		return 0, L
	case RightToLeft:
		return 1, R
	}
	for h := rl.first(); h != rl.eot; h = rl.get(h).next {
		switch rl.get(h).typ {
		case R, AL:
			return 1, R
		case L:
			return 0, L
		}
	}
	if base == WeakRightToLeft {
		return 1, R
	}
	return 0, L
}

// resolveWeakTypes applies rules W1 to W7 in a single pass over the runs,
// looking at a window of three runs. Rules W3 and W7 change the previous run;
// they have to be applied to the last run after the loop.
func resolveWeakTypes(rl *runList, baseType CharType) {
	lastStrong := baseType
	h := rl.first()
	for h != rl.eot {
		this := rl.get(h)
		prev := rl.get(this.prev)
		prevType, thisType, nextType := prev.typ, this.typ, rl.get(this.next).typ
		if prevType == AL || prevType == R || prevType == L {
			lastStrong = prevType
		}
		// W1. NSM takes the type of the previous character
		if thisType == NSM {
			if prevType == SOT {
				this.typ = neutral
			} else {
				this.typ = prevType
			}
		}
		// W2. Only neutrals following AL are changed to AN.
		if thisType == neutral && lastStrong == AL {
			this.typ = AN
		}
		// W3. Change AL to R. This is done for the previous run, as AL has to
		// be remembered as last strong type for the current one.
		if prevType == AL {
			prev.typ = R
		}
		// W4. A single separator between two numbers of the same type.
		// W5 to W7 still apply to the run.
		if this.len == 1 {
			switch {
			case prevType == EN && thisType == ES && nextType == EN:
				this.typ = EN
			case prevType == EN && thisType == CS && nextType == EN:
				this.typ = EN
			case prevType == AN && thisType == CS && nextType == AN:
				this.typ = AN
			}
		}
		// W5. Terminators adjacent to European numbers
		if thisType == ET && (nextType == EN || prevType == EN) {
			this.typ = EN
		}
		thisType = this.typ
		// W6. Remaining separators and terminators become ON
		if thisType == ET || thisType == CS || thisType == ES {
			this.typ = ON
		}
		// W7. European numbers in a left-to-right context become L
		if prevType == EN && lastStrong == L {
			prev.typ = L
		}
		h = this.next
	}
	last := rl.get(rl.get(rl.eot).prev)
	if last.typ == AL { // W3
		last.typ = R
	}
	if last.typ == EN && lastStrong == L { // W7
		last.typ = L
	}
}

// resolveNeutralTypes applies rules N1 and N2. Numbers count as R when
// looking at the context of a neutral run.
func resolveNeutralTypes(rl *runList) {
	for h := rl.first(); h != rl.eot; h = rl.get(h).next {
		r := rl.get(h)
		switch r.typ {
		case WS, ON, ES, ET, CS, BN:
			r.typ = neutral
		default:
			if r.typ.IsExplicit() || r.typ.IsIsolate() {
				r.typ = neutral
			}
		}
	}
	rl.compact()
	for h := rl.first(); h != rl.eot; h = rl.get(h).next {
		r := rl.get(h)
		if r.typ != neutral {
			continue
		}
		prevType, nextType := rl.get(r.prev).typ, rl.get(r.next).typ
		if prevType == EN || prevType == AN {
			prevType = R
		}
		if nextType == EN || nextType == AN {
			nextType = R
		}
		switch {
		case prevType == R && nextType == R: // N1
			r.typ = R
		case prevType == L && nextType == L: // N1
			r.typ = L
		default: // N2
			r.typ = embedding
		}
	}
	rl.compact()
}

// resolveImplicitLevels applies rules I1 and I2 and returns the maximum level.
//
//	Type | Even level | Odd level
//	-----+------------+-----------
//	L    |   EL       |   EL+1
//	R    |   EL+1     |   EL
//	AN   |   EL+2     |   EL+1
//	EN   |   EL+2     |   EL+1
//
// European numbers directly following an L run stay on an even level.
func resolveImplicitLevels(rl *runList, baseLevel Level) Level {
	level := baseLevel
	maxLevel := baseLevel
	for h := rl.first(); h != rl.eot; h = rl.get(h).next {
		r := rl.get(h)
		r.level = level
		if level%2 == 0 {
			switch {
			case r.typ == R:
				r.level = level + 1
			case r.typ == AN:
				r.level = level + 2
			case r.typ == EN && rl.get(r.prev).typ != L:
				r.level = level + 2
			}
		} else if r.typ == L || r.typ == AN || r.typ == EN {
			r.level = level + 1
		}
		if r.level > maxLevel {
			maxLevel = r.level
		}
	}
	return maxLevel
}

package bidi

//go:generate go run ./internal/mirrorgen -v

type mirrorPair struct {
	ch, mirrored rune
}

// MirrorOf returns the mirrored counterpart of r, e.g. ')' for '('.
// If r has no counterpart, MirrorOf returns r unchanged and false.
//
// Mirroring is meant to be applied to characters resolved to an odd
// (right-to-left) embedding level only.
func MirrorOf(r rune) (rune, bool) {
	n := len(mirroredChars)
	// The table is small and sorted. We halve a step size instead of an
	// interval, starting in the middle of the table.
	pos := n/2 + 1
	step := pos
	for step > 1 {
		c := mirroredChars[pos].ch
		step = (step + 1) / 2
		if c < r {
			pos += step
			if pos > n-1 {
				pos = n - 1
			}
		} else if c > r {
			pos -= step
			if pos < 0 {
				pos = 0
			}
		} else {
			break
		}
	}
	if mirroredChars[pos].ch == r {
		return mirroredChars[pos].mirrored, true
	}
	return r, false
}

// MirroredPairs calls f for every entry of the mirroring table, in code-point order.
func MirroredPairs(f func(ch, mirrored rune)) {
	for _, p := range mirroredChars {
		f(p.ch, p.mirrored)
	}
}

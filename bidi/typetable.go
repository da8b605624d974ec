package bidi

import (
	"sync"

	xbidi "golang.org/x/text/unicode/bidi"
)

// The type table is a two-level table: the high bits of a code-point select a
// block of 256 entries, the low 8 bits index into the block. Blocks where every
// code-point has the same type share a single block value. The table covers the
// Basic Multilingual Plane and the Supplementary Multilingual Plane; everything
// above is handled by range tests in typeOfUncovered.

const (
	blockBits  = 8
	blockSize  = 1 << blockBits
	tableLimit = 0x20000 // first code-point not covered by the table
)

type typeBlock [blockSize]CharType

var typeTable struct {
	once   sync.Once
	blocks [tableLimit >> blockBits]*typeBlock
}

// TypeOf returns the bidi character type of r. Code-points without a bidi
// class default to L.
func TypeOf(r rune) CharType {
	if r < 0 {
		return L
	}
	if r >= tableLimit {
		return typeOfUncovered(r)
	}
	typeTable.once.Do(buildTypeTable)
	return typeTable.blocks[r>>blockBits][r&(blockSize-1)]
}

// typeOfUncovered returns bidi types for code-points above the SMP.
func typeOfUncovered(r rune) CharType {
	switch {
	case r >= 0xE0001 && r <= 0xE007F: // tag characters
		return BN
	case r >= 0xE0100 && r <= 0xE01EF: // variation selectors supplement
		return NSM
	case r >= 0xE0000 && r <= 0xE0FFF: // default ignorables
		return BN
	}
	return L
}

func buildTypeTable() {
	uniform := make(map[CharType]*typeBlock)
	shared, distinct := 0, 0
	for b := range typeTable.blocks {
		block := &typeBlock{}
		base := rune(b << blockBits)
		same := true
		for i := 0; i < blockSize; i++ {
			block[i] = classify(base + rune(i))
			if block[i] != block[0] {
				same = false
			}
		}
		if same {
			if u, ok := uniform[block[0]]; ok {
				typeTable.blocks[b] = u
				shared++
				continue
			}
			uniform[block[0]] = block
		}
		typeTable.blocks[b] = block
		distinct++
	}
	tracer().Debugf("bidi type table: %d distinct blocks, %d shared", distinct, shared)
}

// classify maps the bidi class of x/text to our bidi character types.
func classify(r rune) CharType {
	props, sz := xbidi.LookupRune(r)
	if sz == 0 {
		return L
	}
	switch props.Class() {
	case xbidi.L:
		return L
	case xbidi.R:
		return R
	case xbidi.AL:
		return AL
	case xbidi.EN:
		return EN
	case xbidi.ES:
		return ES
	case xbidi.ET:
		return ET
	case xbidi.AN:
		return AN
	case xbidi.CS:
		return CS
	case xbidi.B:
		return BS
	case xbidi.S:
		return SS
	case xbidi.WS:
		return WS
	case xbidi.ON:
		return ON
	case xbidi.BN:
		return BN
	case xbidi.NSM:
		return NSM
	case xbidi.LRO:
		return LRO
	case xbidi.RLO:
		return RLO
	case xbidi.LRE:
		return LRE
	case xbidi.RLE:
		return RLE
	case xbidi.PDF:
		return PDF
	case xbidi.LRI:
		return LRI
	case xbidi.RLI:
		return RLI
	case xbidi.FSI:
		return FSI
	case xbidi.PDI:
		return PDI
	}
	return L
}

// TypesOf classifies a sequence of code-points.
func TypesOf(text []rune) []CharType {
	types := make([]CharType, len(text))
	for i, r := range text {
		types[i] = TypeOf(r)
	}
	return types
}

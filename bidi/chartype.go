package bidi

import (
	"strconv"
	"strings"
)

// CharType is the bidi character type of a code-point. It is a bitmask: the
// low bits hold categories (strong, weak, neutral, …) and finer properties
// (RTL, Arabic, number, …), such that category tests are simple mask tests.
//
// Every type of a real character has exactly one of the Strong, Weak or Neutral
// bits set. Sentinels and internal types have none of them.
type CharType uint32

// Bits of a CharType.
const (
	maskRTL       CharType = 0x00000001
	maskArabic    CharType = 0x00000002
	maskStrong    CharType = 0x00000010
	maskWeak      CharType = 0x00000020
	maskNeutral   CharType = 0x00000040
	maskSentinel  CharType = 0x00000080
	maskLetter    CharType = 0x00000100
	maskNumber    CharType = 0x00000200
	maskNumSepter CharType = 0x00000400
	maskSpace     CharType = 0x00000800
	maskExplicit  CharType = 0x00001000
	maskSeparator CharType = 0x00002000
	maskOverride  CharType = 0x00004000
	maskIsolate   CharType = 0x00008000
	maskES        CharType = 0x00010000
	maskET        CharType = 0x00020000
	maskCS        CharType = 0x00040000
	maskNSM       CharType = 0x00080000
	maskBN        CharType = 0x00100000
	maskWS        CharType = 0x00200000
	maskPS        CharType = 0x00400000
	maskSS        CharType = 0x00800000
	maskFirst     CharType = 0x01000000
	maskEOT       CharType = 0x02000000
	maskInternal  CharType = 0x10000000
	maskEmbedding CharType = 0x20000000
)

// Bidi character types, as defined by UAX#9, plus sentinels and paragraph hints.
const (
	L   = maskStrong | maskLetter                        // Strong left-to-right
	R   = maskStrong | maskLetter | maskRTL              // Strong right-to-left
	AL  = maskStrong | maskLetter | maskRTL | maskArabic // Arabic letter
	EN  = maskWeak | maskNumber                          // European number
	AN  = maskWeak | maskNumber | maskArabic             // Arabic number
	ES  = maskWeak | maskNumSepter | maskES              // European number separator
	ET  = maskWeak | maskNumSepter | maskET              // European number terminator
	CS  = maskWeak | maskNumSepter | maskCS              // Common number separator
	NSM = maskWeak | maskNSM                             // Non spacing mark
	BN  = maskWeak | maskSpace | maskBN                  // Boundary neutral
	BS  = maskNeutral | maskSpace | maskSeparator | maskPS
	SS  = maskNeutral | maskSpace | maskSeparator | maskSS
	WS  = maskNeutral | maskSpace | maskWS // Whitespace
	ON  = maskNeutral                      // Other neutral

	LRE = maskStrong | maskExplicit                          // Left-to-right embedding
	RLE = maskStrong | maskExplicit | maskRTL                // Right-to-left embedding
	LRO = maskStrong | maskExplicit | maskOverride           // Left-to-right override
	RLO = maskStrong | maskExplicit | maskOverride | maskRTL // Right-to-left override
	PDF = maskWeak | maskExplicit                            // Pop directional format
	LRI = maskNeutral | maskIsolate                          // Left-to-right isolate
	RLI = maskNeutral | maskIsolate | maskRTL                // Right-to-left isolate
	FSI = maskNeutral | maskIsolate | maskFirst              // First strong isolate
	PDI = maskNeutral | maskIsolate | maskSeparator          // Pop directional isolate

	SOT = maskSentinel           // Start of text
	EOT = maskSentinel | maskEOT // End of text

	WL = maskWeak           // Weak left-to-right, paragraph hint only
	WR = maskWeak | maskRTL // Weak right-to-left, paragraph hint only
)

// Types used during resolution only.
const (
	neutral   = maskInternal                 // a collapsed neutral (N)
	embedding = maskInternal | maskEmbedding // takes the embedding direction (E)
)

// IsStrong is true for L, R, AL and the explicit embeddings/overrides.
func (t CharType) IsStrong() bool { return t&maskStrong != 0 }

// IsWeak is true for numbers, number separators, NSM, BN and PDF.
func (t CharType) IsWeak() bool { return t&maskWeak != 0 }

// IsNeutral is true for whitespace, separators, other neutrals and isolates.
func (t CharType) IsNeutral() bool { return t&maskNeutral != 0 }

// IsLetter is true for L, R and AL.
func (t CharType) IsLetter() bool { return t&maskLetter != 0 }

// IsNumber is true for EN and AN.
func (t CharType) IsNumber() bool { return t&maskNumber != 0 }

// IsNumberSeparatorOrTerminator is true for ES, ET and CS.
func (t CharType) IsNumberSeparatorOrTerminator() bool { return t&maskNumSepter != 0 }

// IsRTL is true for types carrying a right-to-left direction.
func (t CharType) IsRTL() bool { return t&maskRTL != 0 }

// IsArabic is true for AL and AN.
func (t CharType) IsArabic() bool { return t&maskArabic != 0 }

// IsSeparator is true for block and segment separators and PDI.
func (t CharType) IsSeparator() bool { return t&maskSeparator != 0 }

// IsSpace is true for whitespace-like types (WS, BN, BS, SS).
func (t CharType) IsSpace() bool { return t&maskSpace != 0 }

// IsExplicit is true for LRE, RLE, LRO, RLO and PDF.
func (t CharType) IsExplicit() bool { return t&maskExplicit != 0 }

// IsIsolate is true for LRI, RLI, FSI and PDI.
func (t CharType) IsIsolate() bool { return t&maskIsolate != 0 }

// IsSentinel is true for SOT and EOT.
func (t CharType) IsSentinel() bool { return t&maskSentinel != 0 }

var typeNames = map[CharType]string{
	L: "L", R: "R", AL: "AL", EN: "EN", AN: "AN", ES: "ES", ET: "ET", CS: "CS",
	NSM: "NSM", BN: "BN", BS: "B", SS: "S", WS: "WS", ON: "ON",
	LRE: "LRE", RLE: "RLE", LRO: "LRO", RLO: "RLO", PDF: "PDF",
	LRI: "LRI", RLI: "RLI", FSI: "FSI", PDI: "PDI",
	SOT: "SOT", EOT: "EOT", WL: "WL", WR: "WR",
	neutral: "N", embedding: "E",
}

func (t CharType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "bidi_type(0x" + strconv.FormatUint(uint64(t), 16) + ")"
}

// TypesString returns a compact string of bidi types, mainly for debugging.
func TypesString(types []CharType) string {
	var b strings.Builder
	for i, t := range types {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

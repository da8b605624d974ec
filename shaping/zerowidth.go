package shaping

import "unicode"

// ZeroWidth holds the characters which are not displayed, but shaped as
// GlyphEmpty.
var ZeroWidth = &unicode.RangeTable{
	LatinOffset: 1,
	R16: []unicode.Range16{
		{Lo: 0x00AD, Hi: 0x00AD, Stride: 1}, // soft hyphen
		{Lo: 0x034F, Hi: 0x034F, Stride: 1}, // combining grapheme joiner
		{Lo: 0x200B, Hi: 0x200F, Stride: 1}, // zero width space … right-to-left mark
		{Lo: 0x2028, Hi: 0x2028, Stride: 1}, // line separator
		{Lo: 0x202A, Hi: 0x202E, Stride: 1}, // bidi embeddings and overrides
		{Lo: 0x2060, Hi: 0x2063, Stride: 1}, // word joiner … invisible separator
		{Lo: 0x2066, Hi: 0x2069, Stride: 1}, // bidi isolates
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1}, // zero width no-break space
	},
}

// IsZeroWidth is true for characters in ZeroWidth.
func IsZeroWidth(r rune) bool {
	return unicode.Is(ZeroWidth, r)
}

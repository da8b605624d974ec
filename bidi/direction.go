package bidi

import "unicode/utf8"

// Direction is the direction of a paragraph, as a hint for the bidi
// algorithm or as its result.
type Direction int8

// Paragraph directions. Weak directions are used only if a paragraph contains
// no strong character.
const (
	LeftToRight     Direction = iota // strong left-to-right
	RightToLeft                      // strong right-to-left
	WeakLeftToRight                  // left-to-right, unless the text says otherwise
	WeakRightToLeft                  // right-to-left, unless the text says otherwise
	Neutral                          // no direction
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case WeakLeftToRight:
		return "WeakLeftToRight"
	case WeakRightToLeft:
		return "WeakRightToLeft"
	case Neutral:
		return "Neutral"
	}
	return "Direction(?)"
}

// IsValid is true for the five paragraph directions.
func (d Direction) IsValid() bool {
	return d >= LeftToRight && d <= Neutral
}

// IsWeak is true for weak directions and for Neutral.
func (d Direction) IsWeak() bool {
	return d == WeakLeftToRight || d == WeakRightToLeft || d == Neutral
}

// IsRTL is true for RightToLeft and WeakRightToLeft.
func (d Direction) IsRTL() bool {
	return d == RightToLeft || d == WeakRightToLeft
}

// Level is an embedding level. Even levels are left-to-right, odd levels are
// right-to-left.
type Level uint8

// IsRTL is true for odd levels.
func (l Level) IsRTL() bool {
	return l&1 == 1
}

// Direction returns the strong direction of a level.
func (l Level) Direction() Direction {
	if l.IsRTL() {
		return RightToLeft
	}
	return LeftToRight
}

// UnicharDirection returns the direction of a character: LeftToRight for
// strong left-to-right characters, RightToLeft for R and AL, and Neutral for
// everything else.
func UnicharDirection(r rune) Direction {
	t := TypeOf(r)
	if !t.IsLetter() {
		return Neutral
	}
	if t.IsRTL() {
		return RightToLeft
	}
	return LeftToRight
}

// FindBaseDirection returns the direction of the first strong character of
// text, or Neutral if there is none.
func FindBaseDirection(text string) Direction {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if dir := UnicharDirection(r); dir != Neutral {
			return dir
		}
		text = text[size:]
	}
	return Neutral
}

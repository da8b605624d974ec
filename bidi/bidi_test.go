package bidi

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCharTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.bidi")
	defer teardown()
	//
	for _, x := range []struct {
		r   rune
		typ CharType
	}{
		{'a', L}, {'א', R}, {'ا', AL}, {'1', EN}, {'١', AN},
		{'\u0300', NSM}, {'+', ES}, {'%', ET}, {',', CS}, {' ', WS},
		{'\n', BS}, {'\t', SS}, {'!', ON}, {'\u200b', BN}, {'\u2067', RLI},
	} {
		if typ := TypeOf(x.r); typ != x.typ {
			t.Errorf("expected type of %+q to be %s, is %s", x.r, x.typ, typ)
		}
	}
	if !R.IsRTL() || !AL.IsArabic() || L.IsRTL() {
		t.Errorf("RTL/Arabic masks broken")
	}
	if !EN.IsNumber() || !AN.IsNumber() || !CS.IsNumberSeparatorOrTerminator() {
		t.Errorf("number masks broken")
	}
	if TypeOf(0xE0020) != BN || TypeOf(0xE0100) != NSM || TypeOf(0x30000) != L {
		t.Errorf("types above SMP not handled correctly")
	}
}

func TestTypesString(t *testing.T) {
	s := TypesString([]CharType{L, R, neutral, embedding, SOT})
	if s != "L R N E SOT" {
		t.Errorf("expected types string 'L R N E SOT', is '%s'", s)
	}
}

func TestMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.bidi")
	defer teardown()
	//
	if m, ok := MirrorOf('('); !ok || m != ')' {
		t.Errorf("expected '(' to mirror to ')', is %+q", m)
	}
	if m, ok := MirrorOf('a'); ok || m != 'a' {
		t.Errorf("expected 'a' not to be mirrored, is %+q", m)
	}
	n := 0
	MirroredPairs(func(ch, mirrored rune) {
		n++
		if m, ok := MirrorOf(ch); !ok || m != mirrored {
			t.Errorf("expected %+q to mirror to %+q, is %+q", ch, mirrored, m)
		}
		if m, ok := MirrorOf(mirrored); !ok || m != ch {
			t.Errorf("expected %+q to mirror back to %+q, is %+q", mirrored, ch, m)
		}
	})
	if n != len(mirroredChars) {
		t.Errorf("expected %d mirrored pairs, have %d", len(mirroredChars), n)
	}
}

func TestRunListEncode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.bidi")
	defer teardown()
	//
	rl := newRunList()
	rl.encode([]CharType{L, L, WS, R, R, R})
	runs := rl.runs()
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, have %d: %v", len(runs), rl)
	}
	if runs[2].pos != 3 || runs[2].len != 3 || runs[2].typ != R {
		t.Errorf("expected third run to be [3-R-6], is %v", runs[2])
	}
	rl.get(rl.first()).typ = R
	rl.get(rl.get(rl.first()).next).typ = R
	rl.compact()
	if runs = rl.runs(); len(runs) != 1 || runs[0].len != 6 {
		t.Errorf("expected single run after compaction, have %v", rl)
	}
	rl.compact()
	if runs = rl.runs(); len(runs) != 1 {
		t.Errorf("expected compaction to be idempotent, have %v", rl)
	}
}

func TestRunListReuse(t *testing.T) {
	rl := newRunList()
	rl.encode([]CharType{L, R, L, R})
	c := rl.capacity()
	rl.clear()
	rl.encode([]CharType{R, L, R, L})
	if rl.capacity() != c {
		t.Errorf("expected run records to be re-used, capacity grew from %d to %d", c, rl.capacity())
	}
	rl.encode(nil)
	if rl.first() != rl.eot {
		t.Errorf("expected empty run list for empty input, have %v", rl)
	}
}

func TestInvalidDirection(t *testing.T) {
	if _, _, err := EmbeddingLevels([]rune("abc"), Direction(17)); err != ErrInvalidDirection {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestEmbeddingLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.bidi")
	defer teardown()
	tracing.Select("textcore.bidi").SetTraceLevel(tracing.LevelDebug)
	//
	for i, x := range []struct {
		text   string
		base   Direction
		dir    Direction
		levels []Level
	}{
		{"abc", Neutral, LeftToRight, []Level{0, 0, 0}},
		{"aאb", Neutral, LeftToRight, []Level{0, 1, 0}},
		{"سلام", Neutral, RightToLeft, []Level{1, 1, 1, 1}},
		{"אב 12", Neutral, RightToLeft, []Level{1, 1, 1, 2, 2}},
		{"ا ١", Neutral, RightToLeft, []Level{1, 1, 2}},
		{"abc אבג", Neutral, LeftToRight, []Level{0, 0, 0, 0, 1, 1, 1}},
		{"1+1", LeftToRight, LeftToRight, []Level{0, 0, 0}},
		{"abc", RightToLeft, RightToLeft, []Level{2, 2, 2}},
		{"123", WeakRightToLeft, RightToLeft, []Level{2, 2, 2}},
		{"!?", WeakRightToLeft, RightToLeft, []Level{1, 1}},
		{"!?", WeakLeftToRight, LeftToRight, []Level{0, 0}},
		{"", Neutral, LeftToRight, []Level{}},
		{"א 1,2", Neutral, RightToLeft, []Level{1, 1, 2, 2, 2}},
		{"א 10%", Neutral, RightToLeft, []Level{1, 1, 2, 2, 2}},
		{"א %10", Neutral, RightToLeft, []Level{1, 1, 2, 2, 2}},
		{"ا١,١", Neutral, RightToLeft, []Level{1, 2, 2, 2}},
		{"1 ا", Neutral, RightToLeft, []Level{2, 1, 1}},
		{"א b 1", Neutral, RightToLeft, []Level{1, 1, 2, 2, 2}},
		{"a 1,2 א", Neutral, LeftToRight, []Level{0, 0, 0, 0, 0, 0, 1}},
	} {
		levels, dir, err := EmbeddingLevelsString(x.text, x.base)
		if err != nil {
			t.Fatalf("test #%d: unexpected error: %v", i, err)
		}
		if dir != x.dir {
			t.Errorf("test #%d: expected direction %s, is %s", i, x.dir, dir)
		}
		if fmt.Sprint(levels) != fmt.Sprint(x.levels) {
			t.Errorf("test #%d: expected levels %v, are %v", i, x.levels, levels)
		}
	}
}

// Characters representing bidi types, for generating test paragraphs.
var typeSamples = []rune{
	'a', 'א', 'ا', '1', '١', '+', '%', ',', '\u0300',
	'\u200b', '\n', '\t', ' ', '!', '\u202a', '\u202b', '\u202c', '\u2066', '\u2069',
}

func TestUniformParagraphsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.bidi")
	defer teardown()
	tracing.Select("textcore.bidi").SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(4711))
	bases := []Direction{LeftToRight, RightToLeft, WeakLeftToRight, WeakRightToLeft, Neutral}
	uniform := 0
	for i := 0; i < 2000; i++ {
		// draw from a small alphabet, so that uniform paragraphs are frequent
		alphabet := typeSamples[rnd.Intn(3):]
		alphabet = alphabet[:1+rnd.Intn(len(alphabet))]
		text := make([]rune, rnd.Intn(10))
		for j := range text {
			text[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		types := TypesOf(text)
		for _, base := range bases {
			dir, ok := uniformDirection(types, base)
			if !ok {
				continue
			}
			uniform++
			levels := make([]Level, len(types))
			fulldir, _ := resolveLevels(types, base, levels)
			if fulldir != dir {
				t.Errorf("%+q, base %s: uniform direction is %s, resolved is %s", string(text), base, dir, fulldir)
			}
			for j, l := range levels {
				if l.Direction() != dir || l > 1 {
					t.Errorf("%+q, base %s: level at %d is %d, paragraph is %s", string(text), base, j, l, dir)
					break
				}
			}
		}
	}
	t.Logf("%d uniform paragraphs checked", uniform)
}

func TestLevelParity(t *testing.T) {
	rnd := rand.New(rand.NewSource(815))
	for i := 0; i < 500; i++ {
		text := make([]rune, 1+rnd.Intn(12))
		for j := range text {
			text[j] = typeSamples[rnd.Intn(len(typeSamples))]
		}
		levels, _, _ := EmbeddingLevels(text, Neutral)
		for j, l := range levels {
			switch TypeOf(text[j]) {
			case R, AL:
				if !l.IsRTL() {
					t.Errorf("%+q: RTL letter at %d on even level %d", string(text), j, l)
				}
			case L:
				if l.IsRTL() {
					t.Errorf("%+q: LTR letter at %d on odd level %d", string(text), j, l)
				}
			}
		}
	}
}

func TestVisualOrder(t *testing.T) {
	for i, x := range []struct {
		levels []Level
		order  []int
	}{
		{[]Level{}, []int{}},
		{[]Level{0, 0, 0}, []int{0, 1, 2}},
		{[]Level{0, 0, 0, 0, 1, 1, 1}, []int{0, 1, 2, 3, 6, 5, 4}},
		{[]Level{1, 1, 1, 2, 2}, []int{3, 4, 2, 1, 0}},
		{[]Level{0, 1, 2, 2, 1, 0}, []int{0, 4, 2, 3, 1, 5}},
	} {
		order := VisualOrder(x.levels)
		if fmt.Sprint(order) != fmt.Sprint(x.order) {
			t.Errorf("test #%d: expected visual order %v, is %v", i, x.order, order)
		}
	}
}

func TestLevelRuns(t *testing.T) {
	runs := LevelRuns([]Level{0, 0, 1, 1, 1, 2})
	if len(runs) != 3 || runs[1] != (LevelRun{Level: 1, Start: 2, End: 5}) {
		t.Errorf("unexpected level runs %v", runs)
	}
}

func TestBaseDirection(t *testing.T) {
	if d := FindBaseDirection("123 אbc"); d != RightToLeft {
		t.Errorf("expected base direction RightToLeft, is %s", d)
	}
	if d := FindBaseDirection("123 !"); d != Neutral {
		t.Errorf("expected base direction Neutral, is %s", d)
	}
	if d := UnicharDirection('x'); d != LeftToRight {
		t.Errorf("expected direction of 'x' to be LeftToRight, is %s", d)
	}
}

func ExampleEmbeddingLevelsString() {
	levels, dir, _ := EmbeddingLevelsString("abc אבג", Neutral)
	fmt.Println(levels, dir)
	fmt.Println(VisualOrder(levels))
	// Output:
	// [0 0 0 0 1 1 1] LeftToRight
	// [0 1 2 3 6 5 4]
}

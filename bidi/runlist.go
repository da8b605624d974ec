package bidi

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// --- Runs ------------------------------------------------------------------

// runRef is a handle for a run within the arena of a runList.
type runRef int32

const noRun runRef = -1

// A run is a maximal sequence of characters sharing one bidi type.
// Runs are doubly linked by handles into the arena of their run list.
type run struct {
	typ        CharType
	pos, len   int // position of first character, number of characters
	level      Level
	prev, next runRef
}

func (r run) String() string {
	if r.len == 0 {
		return fmt.Sprintf("|%s|", r.typ)
	}
	return fmt.Sprintf("[%d-%s-%d:%d]", r.pos, r.typ, r.pos+r.len, r.level)
}

// --- Run list --------------------------------------------------------------

// runList is a list of runs, bounded by a SOT and an EOT sentinel run.
// Run records live in an arena; released records have their handle pushed
// onto a stack of free handles and will be re-used by the next allocation.
// A runList is therefore cheap to re-use for a series of paragraphs.
type runList struct {
	arena []run
	free  *arraystack.Stack // of runRef
	sot   runRef
	eot   runRef
}

func newRunList() *runList {
	return &runList{
		arena: make([]run, 0, 32),
		free:  arraystack.New(),
		sot:   noRun,
		eot:   noRun,
	}
}

// get returns a pointer to the run record for handle h.
func (rl *runList) get(h runRef) *run {
	return &rl.arena[h]
}

// alloc returns the handle of a cleared run record, preferring free records.
func (rl *runList) alloc() runRef {
	if v, ok := rl.free.Pop(); ok {
		h := v.(runRef)
		rl.arena[h] = run{prev: noRun, next: noRun}
		return h
	}
	rl.arena = append(rl.arena, run{prev: noRun, next: noRun})
	return runRef(len(rl.arena) - 1)
}

// release puts the record for h back to the free list.
func (rl *runList) release(h runRef) {
	rl.free.Push(h)
}

// clear releases every run of the list, including the sentinels.
func (rl *runList) clear() {
	for h := rl.sot; h != noRun; {
		next := rl.arena[h].next
		rl.release(h)
		h = next
	}
	rl.sot, rl.eot = noRun, noRun
}

// capacity is the number of run records ever allocated by this list.
func (rl *runList) capacity() int {
	return len(rl.arena)
}

// encode run-length encodes a sequence of bidi types. An old list content
// is cleared first.
func (rl *runList) encode(types []CharType) {
	rl.clear()
	rl.sot = rl.alloc()
	sot := rl.get(rl.sot)
	sot.typ = SOT
	last := rl.sot
	for i := 0; i < len(types); {
		j := i + 1
		for j < len(types) && types[j] == types[i] {
			j++
		}
		h := rl.alloc()
		r := rl.get(h)
		r.typ, r.pos, r.len = types[i], i, j-i
		rl.link(last, h)
		last = h
		i = j
	}
	rl.eot = rl.alloc()
	eot := rl.get(rl.eot)
	eot.typ, eot.pos = EOT, len(types)
	rl.link(last, rl.eot)
}

func (rl *runList) link(a, b runRef) {
	rl.arena[a].next = b
	rl.arena[b].prev = a
}

// first returns the first non-sentinel run or the EOT run for empty lists.
func (rl *runList) first() runRef {
	return rl.arena[rl.sot].next
}

// compact merges adjacent runs of equal type and level. Merged-away runs are
// released to the free list.
func (rl *runList) compact() {
	h := rl.first()
	for h != noRun && h != rl.eot {
		r := rl.get(h)
		p := rl.get(r.prev)
		if r.prev != rl.sot && p.typ == r.typ && p.level == r.level {
			next := r.next
			p.len += r.len
			rl.link(r.prev, next)
			rl.release(h)
			h = next
			continue
		}
		h = r.next
	}
}

// runs returns a copy of the non-sentinel runs, in logical order.
func (rl *runList) runs() []run {
	var rr []run
	for h := rl.first(); h != noRun && h != rl.eot; h = rl.arena[h].next {
		rr = append(rr, rl.arena[h])
	}
	return rr
}

func (rl *runList) String() string {
	var b strings.Builder
	for h := rl.sot; h != noRun; h = rl.arena[h].next {
		b.WriteString(rl.arena[h].String())
	}
	return b.String()
}

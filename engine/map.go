package engine

import (
	"fmt"

	"github.com/go-text/typesetting/language"
)

// A slot holds the engines for one script. Engines with a language match
// are held in exact, others in fallback. Both lists are ordered from the
// most recently registered engine to the least recently registered one.
type slot struct {
	exact    []*Pair
	fallback []*Pair
}

// Map selects engines of one engine type and render type by script, for a
// given language. Maps are created by FindMap and are immutable after that.
type Map struct {
	Language   language.Language
	EngineType string
	RenderType string
	slots      map[language.Script]*slot
}

func newMap(lang language.Language, engineType, renderType string) *Map {
	return &Map{
		Language:   lang,
		EngineType: engineType,
		RenderType: renderType,
		slots:      make(map[language.Script]*slot),
	}
}

// add puts pair into the slot of script. Pairs are prepended, thus the last
// one added comes first.
func (m *Map) add(script language.Script, pair *Pair, exact bool) {
	s, ok := m.slots[script]
	if !ok {
		s = &slot{}
		m.slots[script] = s
	}
	list := &s.fallback
	if exact {
		list = &s.exact
	}
	if len(*list) > 0 && (*list)[0] == pair {
		return // pair covers script with more than one range
	}
	*list = append([]*Pair{pair}, *list...)
}

// GetEngine returns the best engine for script, or nil if there is none.
// Engines matching the map's language are preferred, and engines for the
// script itself are preferred over engines for script Common:
//
//	exact[script] → exact[Common] → fallback[script] → fallback[Common]
func (m *Map) GetEngine(script language.Script) Engine {
	if m == nil {
		return nil
	}
	s, c := m.slots[script], m.slots[language.Common]
	for _, list := range [][]*Pair{
		s.pairs(true), c.pairs(true), s.pairs(false), c.pairs(false),
	} {
		if len(list) > 0 {
			return list[0].Engine()
		}
	}
	return nil
}

// GetEngines returns all engines registered for script, split into engines
// with a language match and fallback engines. All engines returned are
// created, if they have not been before.
func (m *Map) GetEngines(script language.Script) (exact, fallback []Engine) {
	if m == nil {
		return nil, nil
	}
	s := m.slots[script]
	return engines(s.pairs(true)), engines(s.pairs(false))
}

// Scripts returns the number of scripts with at least one engine.
func (m *Map) Scripts() int {
	if m == nil {
		return 0
	}
	return len(m.slots)
}

func (m *Map) String() string {
	return fmt.Sprintf("map[%s|%s|%s: %d scripts]", m.Language, m.EngineType, m.RenderType, len(m.slots))
}

func (s *slot) pairs(exact bool) []*Pair {
	if s == nil {
		return nil
	}
	if exact {
		return s.exact
	}
	return s.fallback
}

func engines(pairs []*Pair) []Engine {
	if len(pairs) == 0 {
		return nil
	}
	e := make([]Engine, 0, len(pairs))
	for _, p := range pairs {
		if eng := p.Engine(); eng != nil {
			e = append(e, eng)
		}
	}
	return e
}

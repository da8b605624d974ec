package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/language"
)

type mapKey struct {
	lang       language.Language
	engineType string
	renderType string
}

// Registry holds registered engines and the maps built from them.
// A Registry is safe for concurrent use. Maps are cached for the lifetime of
// the registry; engines registered after a map has been built will not show
// up in that map.
type Registry struct {
	mu     sync.Mutex
	pairs  []*Pair
	maps   map[mapKey]*Map
	faults map[string]bool // configuration faults already reported
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		maps:   make(map[mapKey]*Map),
		faults: make(map[string]bool),
	}
}

var modules = NewRegistry()

// Modules returns the process-wide registry.
func Modules() *Registry {
	return modules
}

// Register registers an engine with the process-wide registry.
func Register(info Info, factory Factory) error {
	return modules.Register(info, factory)
}

// FindMap finds or builds a map from the process-wide registry.
func FindMap(lang language.Language, engineType, renderType string) *Map {
	return modules.FindMap(lang, engineType, renderType)
}

// Register adds an engine to the registry. IDs must be unique within a
// registry.
func (reg *Registry) Register(info Info, factory Factory) error {
	if factory == nil || strings.TrimSpace(info.ID) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidInfo, info.ID)
	}
	if info.Type == "" || info.RenderType == "" {
		return fmt.Errorf("%w: engine %q has no type", ErrInvalidInfo, info.ID)
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, p := range reg.pairs {
		if p.Info.ID == info.ID {
			return fmt.Errorf("%w: %q", ErrAlreadyRegistered, info.ID)
		}
	}
	if len(reg.maps) > 0 {
		tracer().Infof("engine %q registered after maps have been built", info.ID)
	}
	reg.pairs = append(reg.pairs, newPair(info, factory))
	tracer().Debugf("registered %s engine %q for render type %q", info.Type, info.ID, info.RenderType)
	return nil
}

// Engines returns the infos of all registered engines, in order of
// registration.
func (reg *Registry) Engines() []Info {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	infos := make([]Info, len(reg.pairs))
	for i, p := range reg.pairs {
		infos[i] = p.Info
	}
	return infos
}

// FindMap returns the map for a language, an engine type and a render type.
// Maps are built on first request and cached. Repeated calls with the same
// arguments return the same map.
//
// FindMap never returns nil. If no engine matches, the map will be empty and
// the fault is reported once.
func (reg *Registry) FindMap(lang language.Language, engineType, renderType string) *Map {
	key := mapKey{lang: lang, engineType: engineType, renderType: renderType}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if m, ok := reg.maps[key]; ok {
		return m
	}
	m := reg.buildMap(key)
	reg.maps[key] = m
	return m
}

// buildMap is called with reg.mu held.
func (reg *Registry) buildMap(key mapKey) *Map {
	m := newMap(key.lang, key.engineType, key.renderType)
	if len(reg.pairs) == 0 {
		reg.fault("no engines registered")
		return m
	}
	typeFound := false
	for _, p := range reg.pairs {
		if p.Info.Type != key.engineType {
			continue
		}
		typeFound = true
		if p.Info.RenderType != key.renderType {
			continue
		}
		for _, r := range p.Info.Ranges {
			exact := LanguageMatches(key.lang, r.Langs)
			for _, script := range scriptsInRange(r.Start, r.End) {
				m.add(script, p, exact)
			}
		}
	}
	if !typeFound {
		reg.fault(fmt.Sprintf("no engines of type %q registered", key.engineType))
	}
	tracer().Infof("built engine %s", m)
	return m
}

// fault reports a configuration fault, once per registry.
func (reg *Registry) fault(msg string) {
	if reg.faults[msg] {
		return
	}
	reg.faults[msg] = true
	tracer().Errorf("engine configuration: %s", msg)
}

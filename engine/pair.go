package engine

import "sync"

// Pair holds the description of a registered engine together with its
// factory. The engine is created on first use.
type Pair struct {
	Info    Info
	factory Factory
	once    sync.Once
	engine  Engine
}

func newPair(info Info, factory Factory) *Pair {
	return &Pair{Info: info, factory: factory}
}

// Engine returns the engine of a pair, creating it if necessary. Engines are
// created at most once, even with concurrent callers. If the factory does
// not produce an engine, Engine returns nil for the rest of the process.
func (p *Pair) Engine() Engine {
	p.once.Do(func() {
		p.engine = p.factory(p.Info.ID)
		if p.engine == nil {
			tracer().Errorf("engine %q: factory did not create an engine", p.Info.ID)
			return
		}
		tracer().Debugf("created engine %q", p.Info.ID)
	})
	return p.engine
}

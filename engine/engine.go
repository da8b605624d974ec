/*
Package engine keeps a registry of text processing engines and selects
engines per script and language.

Engines are registered once, usually from init functions of the packages
implementing them. Every engine declares its type (shaping or language
analysis), the type of font backend it renders for, and a set of code-point
ranges it covers, optionally restricted to a list of languages.

Clients ask for a Map for a triple (language, engine type, render type).
Maps are built on first request and cached for the lifetime of the process.
Within a map, engines whose language list matches the requested language
take precedence over engines without a language match:

	m := engine.FindMap(language.NewLanguage("en"), engine.TypeShape, "sfnt")
	e := m.GetEngine(language.Latin)

Engines themselves are created lazily, when a map lookup hands them out for
the first time, and at most once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package engine

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textcore.engine'.
func tracer() tracing.Trace {
	return tracing.Select("textcore.engine")
}

// Engine types.
const (
	TypeShape = "shape" // shaping engines, mapping characters to glyphs
	TypeLang  = "lang"  // language engines, tweaking text boundaries
)

// RenderNone is the render type of engines independent of a font backend.
const RenderNone = "none"

// Errors returned by registration.
var (
	ErrAlreadyRegistered = errors.New("textcore/engine: engine already registered")
	ErrInvalidInfo       = errors.New("textcore/engine: invalid engine info")
)

// Engine is the common interface of all engines. Clients will usually
// type-assert an Engine to the interface of its engine type.
type Engine interface {
	ID() string
}

// Range is a range of code-points [Start, End] an engine covers. Langs is a
// list of language ranges, separated by any of ";:, ". An empty list means
// that the engine does not prefer any language. "*" matches every language.
type Range struct {
	Start, End rune
	Langs      string
}

// Info describes an engine.
type Info struct {
	ID         string  // unique name of the engine
	Type       string  // TypeShape or TypeLang
	RenderType string  // RenderNone or the type of font backend
	Ranges     []Range // code-point coverage
}

// Factory creates an engine. It is called with the ID of the engine info
// it has been registered with.
type Factory func(id string) Engine

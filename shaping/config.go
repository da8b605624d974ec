package shaping

import (
	"sync/atomic"

	"github.com/npillmayer/schuko"
)

// Configuration keys.
const (
	KeyKerning      = "shaping.kerning"       // apply font kerning in the basic shaper
	KeyWarnFallback = "shaping.warn-fallback" // report runs shaped by the fallback shaper
)

// Config holds the settings of the shaping package.
type Config struct {
	Kerning      bool
	WarnFallback bool
}

// DefaultConfig returns the settings used if Configure is never called.
func DefaultConfig() Config {
	return Config{Kerning: true, WarnFallback: true}
}

// ConfigFrom reads settings from a configuration. Keys not set in conf keep
// their default values.
func ConfigFrom(conf schuko.Configuration) Config {
	c := DefaultConfig()
	if conf == nil {
		return c
	}
	if conf.IsSet(KeyKerning) {
		c.Kerning = conf.GetBool(KeyKerning)
	}
	if conf.IsSet(KeyWarnFallback) {
		c.WarnFallback = conf.GetBool(KeyWarnFallback)
	}
	return c
}

var config atomic.Value // of Config

// Configure sets the configuration for all subsequent shaping calls.
func Configure(c Config) {
	config.Store(c)
	tracer().Debugf("shaping configured: kerning=%v, warn-fallback=%v", c.Kerning, c.WarnFallback)
}

func currentConfig() Config {
	if c, ok := config.Load().(Config); ok {
		return c
	}
	return DefaultConfig()
}

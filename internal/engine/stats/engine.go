// Package stats implements the stat modifier engine: stat name
// canonicalization, per-item modifier resolution and multi-item aggregation.
package stats

import (
	"github.com/Saichiiro/astoria-sub001/internal/engine"
	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// Config holds the optional dependencies of the engine
type Config struct {
	// SynonymTable defaults to DefaultSynonymTable
	SynonymTable *SynonymTable
	// HiddenKeys are stat names or aliases; defaults to hp, hpMax, mana and manaMax
	HiddenKeys []string
}

// Engine is the default engine.Engine implementation
type Engine struct {
	canon      *Canonicalizer
	aggregator *Aggregator
}

// Verify that Engine implements engine.Engine interface
var _ engine.Engine = (*Engine)(nil)

// New creates an engine. A nil config uses the defaults.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}

	canon := NewCanonicalizer(cfg.SynonymTable)
	return &Engine{
		canon: canon,
		aggregator: NewAggregator(&AggregatorConfig{
			Canonicalizer: canon,
			HiddenKeys:    cfg.HiddenKeys,
		}),
	}
}

// ResolveModifiers returns the deduplicated modifiers of one item
func (e *Engine) ResolveModifiers(item inventory.Item) []inventory.CanonicalModifier {
	return ResolveModifiers(item)
}

// AggregateAcrossTypes sums modifiers per (canonical stat, type)
func (e *Engine) AggregateAcrossTypes(mods []inventory.CanonicalModifier) []inventory.AggregatedModifier {
	return e.aggregator.AggregateAcrossTypes(mods)
}

// ComputeTotals aggregates the modifiers of many items
func (e *Engine) ComputeTotals(items []inventory.Item) inventory.StatTotals {
	return e.aggregator.ComputeTotals(items)
}

// Format renders a modifier as a short badge
func (e *Engine) Format(m inventory.CanonicalModifier) string {
	return Format(m)
}

// Canonicalize maps a raw stat name onto its canonical key
func (e *Engine) Canonicalize(raw string) string {
	return e.canon.Canonicalize(raw)
}

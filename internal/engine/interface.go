// Package engine defines the stat modifier engine consumed by the service layer
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/Saichiiro/astoria-sub001/internal/engine Engine

import (
	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// Engine resolves item modifiers and aggregates them into stat totals.
// Implementations do no I/O and are safe for concurrent use.
type Engine interface {
	// ResolveModifiers returns the deduplicated modifiers of one item
	ResolveModifiers(item inventory.Item) []inventory.CanonicalModifier

	// AggregateAcrossTypes sums modifiers per (canonical stat, type), dropping zero sums
	AggregateAcrossTypes(mods []inventory.CanonicalModifier) []inventory.AggregatedModifier

	// ComputeTotals aggregates the modifiers of many items with source attribution
	ComputeTotals(items []inventory.Item) inventory.StatTotals

	// Format renders a modifier as a short badge
	Format(m inventory.CanonicalModifier) string

	// Canonicalize maps a raw stat name onto its canonical key
	Canonicalize(raw string) string
}

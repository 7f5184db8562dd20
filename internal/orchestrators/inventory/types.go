package inventory

import (
	"time"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// ResolveItemInput asks for the effective modifiers of a single item.
type ResolveItemInput struct {
	Item inventory.Item
}

// ResolveItemOutput holds the resolved modifiers, one display badge per
// modifier and the same modifiers merged across synonymous stats.
type ResolveItemOutput struct {
	Modifiers  []inventory.CanonicalModifier
	Badges     []string
	Aggregated []inventory.AggregatedModifier
}

type ComputeTotalsInput struct {
	Items []inventory.Item
}

type ComputeTotalsOutput struct {
	Totals     inventory.StatTotals
	Aggregated []inventory.AggregatedModifier
}

// SaveInventoryInput replaces a character's inventory. Items without an ID
// receive a generated one.
type SaveInventoryInput struct {
	CharacterID string
	Items       []inventory.Item
}

type SaveInventoryOutput struct {
	CharacterID string
	Items       []inventory.Item
	UpdatedAt   time.Time
}

type GetInventoryInput struct {
	CharacterID string
}

type GetInventoryOutput struct {
	CharacterID string
	Items       []inventory.Item
	UpdatedAt   time.Time
}

type ComputeCharacterTotalsInput struct {
	CharacterID string
}

type ComputeCharacterTotalsOutput struct {
	CharacterID string
	Totals      inventory.StatTotals
	Aggregated  []inventory.AggregatedModifier
	UpdatedAt   time.Time
}

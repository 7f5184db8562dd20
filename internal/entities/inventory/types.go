// Package inventory holds the item and stat modifier data model shared by the
// engine, the repositories and the handlers.
package inventory

import "strings"

// ModifierType tells whether a modifier is an additive amount or a percentage
type ModifierType string

const (
	ModifierTypeFlat    ModifierType = "flat"
	ModifierTypePercent ModifierType = "percent"
)

// String returns the string representation of the modifier type
func (t ModifierType) String() string {
	return string(t)
}

// ParseModifierType coerces free text into a ModifierType.
// Anything other than "percent" (case and surrounding blanks ignored) is flat.
func ParseModifierType(s string) ModifierType {
	if strings.EqualFold(strings.TrimSpace(s), string(ModifierTypePercent)) {
		return ModifierTypePercent
	}
	return ModifierTypeFlat
}

// CanonicalModifier is a validated modifier.
// Value is always finite and never zero; Stat keeps the display text.
type CanonicalModifier struct {
	Stat          string       `json:"stat"`
	Value         float64      `json:"value"`
	Type          ModifierType `json:"type"`
	Source        string       `json:"source"`
	DurationTurns *int         `json:"durationTurns"`
}

// AggregatedModifier is the sum of every modifier sharing a canonical stat key and type
type AggregatedModifier struct {
	Stat  string       `json:"stat"`
	Type  ModifierType `json:"type"`
	Value float64      `json:"value"`
}

// Contribution is one entry of a stat breakdown
type Contribution struct {
	Stat     string       `json:"stat"`
	Value    float64      `json:"value"`
	Type     ModifierType `json:"type"`
	Source   string       `json:"source"`
	Quantity int          `json:"quantity"`
}

// StatTotals is the result of aggregating the modifiers of a set of items
type StatTotals struct {
	// Totals maps canonical stat keys to the sum of every contribution
	Totals map[string]float64 `json:"totals"`
	// Breakdown keeps every contribution per key, in item processing order
	Breakdown map[string][]Contribution `json:"breakdown"`
	// TotalPoints sums flat contributions only
	TotalPoints float64 `json:"totalPoints"`
	// Hidden flags keys a bonus panel should not show
	Hidden map[string]bool `json:"hidden"`
	// Keys lists canonical keys in first-seen order
	Keys []string `json:"keys"`
}

// NewStatTotals returns empty, ready to fill totals
func NewStatTotals() StatTotals {
	return StatTotals{
		Totals:    make(map[string]float64),
		Breakdown: make(map[string][]Contribution),
		Hidden:    make(map[string]bool),
		Keys:      []string{},
	}
}

// IsHidden reports whether key is flagged as hidden
func (t StatTotals) IsHidden(key string) bool {
	return t.Hidden[key]
}

// VisibleKeys returns the keys in first-seen order, hidden keys excluded
func (t StatTotals) VisibleKeys() []string {
	visible := make([]string, 0, len(t.Keys))
	for _, key := range t.Keys {
		if !t.Hidden[key] {
			visible = append(visible, key)
		}
	}
	return visible
}

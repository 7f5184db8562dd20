package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// trivialSerialized are serialized fields that carry no data
var trivialSerialized = map[string]bool{
	"":     true,
	"[]":   true,
	"{}":   true,
	"null": true,
	`""`:   true,
}

// ResolveModifiers returns the deduplicated modifiers of an item. The first
// source yielding anything wins: structured records, then serialized
// records, then the effect text. Sources are never merged. It never fails;
// an item with nothing usable resolves to an empty slice.
func ResolveModifiers(item inventory.Item) []inventory.CanonicalModifier {
	var candidates []inventory.CanonicalModifier

	switch item.Modifiers.Kind {
	case inventory.ModifierFieldStructured:
		candidates = normalizeInputs(item.Modifiers.Entries)
	case inventory.ModifierFieldSerialized:
		if entries, ok := ParseSerialized(item.Modifiers.Text); ok {
			candidates = normalizeInputs(entries)
		}
	}

	if len(candidates) == 0 {
		candidates = ExtractModifiers(item.Effect)
	}

	return dedupe(candidates)
}

// ParseSerialized reads modifier records from text. It accepts a JSON array of
// objects, or a JSON string holding such an array. ok is false for trivial or
// unparseable text.
func ParseSerialized(text string) (entries []inventory.ModifierInput, ok bool) {
	text = strings.TrimSpace(text)
	if trivialSerialized[text] {
		return nil, false
	}

	raw, ok := decodeWithNumbers(text)
	if !ok {
		return nil, false
	}

	// double-encoded payloads
	if inner, isString := raw.(string); isString {
		inner = strings.TrimSpace(inner)
		if trivialSerialized[inner] {
			return nil, false
		}
		if raw, ok = decodeWithNumbers(inner); !ok {
			return nil, false
		}
	}

	list, isList := raw.([]any)
	if !isList || len(list) == 0 {
		return nil, false
	}
	return inventory.DecodeModifierInputs(list), true
}

// NormalizeInput validates one record; ok is false when it must be dropped
func NormalizeInput(in inventory.ModifierInput) (inventory.CanonicalModifier, bool) {
	stat := strings.TrimSpace(in.Stat)
	if stat == "" {
		return inventory.CanonicalModifier{}, false
	}

	value, ok := in.Value.Float64()
	if !ok || value == 0 {
		return inventory.CanonicalModifier{}, false
	}

	var duration *int
	if in.DurationTurns != nil && *in.DurationTurns >= 0 {
		d := *in.DurationTurns
		duration = &d
	}

	return inventory.CanonicalModifier{
		Stat:          stat,
		Value:         value,
		Type:          inventory.ParseModifierType(in.Type),
		Source:        strings.TrimSpace(in.Source),
		DurationTurns: duration,
	}, true
}

func normalizeInputs(entries []inventory.ModifierInput) []inventory.CanonicalModifier {
	mods := make([]inventory.CanonicalModifier, 0, len(entries))
	for _, e := range entries {
		if m, ok := NormalizeInput(e); ok {
			mods = append(mods, m)
		}
	}
	return mods
}

type dedupeKey struct {
	stat  string
	typ   inventory.ModifierType
	value float64
}

// dedupe keeps the first of every (normalized stat, type, value) triple
func dedupe(mods []inventory.CanonicalModifier) []inventory.CanonicalModifier {
	out := make([]inventory.CanonicalModifier, 0, len(mods))
	seen := make(map[dedupeKey]bool, len(mods))

	for _, m := range mods {
		key := dedupeKey{stat: Normalize(m.Stat), typ: m.Type, value: m.Value}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}

	return out
}

// Format renders a modifier as a short badge such as "+5 Magie" or "-10% Vitesse"
func Format(m inventory.CanonicalModifier) string {
	sign := "+"
	if m.Value < 0 {
		sign = "-"
	}

	amount := strconv.FormatFloat(math.Abs(m.Value), 'f', -1, 64)
	if m.Type == inventory.ModifierTypePercent {
		amount += "%"
	}

	return sign + amount + " " + strings.TrimSpace(m.Stat)
}

// decodeWithNumbers decodes a single JSON value, keeping numbers as json.Number
func decodeWithNumbers(text string) (any, bool) {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, false
	}
	if decoder.More() {
		return nil, false
	}
	return raw, true
}

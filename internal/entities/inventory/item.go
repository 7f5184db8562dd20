package inventory

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeItem is the rpg-toolkit entity type of an inventory item
const EntityTypeItem = "item"

// DefaultItemName labels contributions from items that carry no usable name
const DefaultItemName = "Objet inconnu"

// ModifierFieldKind tells which shape an item's modifier field arrived in
type ModifierFieldKind int

const (
	// ModifierFieldAbsent means the item carries no modifier data
	ModifierFieldAbsent ModifierFieldKind = iota
	// ModifierFieldStructured means a list of modifier-like records
	ModifierFieldStructured
	// ModifierFieldSerialized means the same list serialized as text
	ModifierFieldSerialized
)

// String returns the string representation of the kind
func (k ModifierFieldKind) String() string {
	switch k {
	case ModifierFieldStructured:
		return "structured"
	case ModifierFieldSerialized:
		return "serialized"
	default:
		return "absent"
	}
}

// ModifierInput is one untrusted modifier-like record from a catalog
type ModifierInput struct {
	Stat          string
	Value         Number
	Type          string
	Source        string
	DurationTurns *int
}

type modifierInputJSON struct {
	Stat          string `json:"stat"`
	Value         Number `json:"value"`
	Type          string `json:"type,omitempty"`
	Source        string `json:"source,omitempty"`
	DurationTurns *int   `json:"durationTurns,omitempty"`
}

// MarshalJSON writes the record with the catalog field names
func (m ModifierInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(modifierInputJSON(m))
}

// UnmarshalJSON reads a record leniently; fields of the wrong type are left empty
func (m *ModifierInput) UnmarshalJSON(data []byte) error {
	raw, err := decodeJSONValue(data)
	if err != nil {
		return err
	}
	fields, _ := raw.(map[string]any)
	*m = DecodeModifierInput(fields)
	return nil
}

// ModifierField is the modifier data of an item, its shape decided once at ingestion
type ModifierField struct {
	Kind    ModifierFieldKind
	Entries []ModifierInput
	Text    string
}

// StructuredModifiers builds a field holding modifier records
func StructuredModifiers(entries ...ModifierInput) ModifierField {
	return ModifierField{Kind: ModifierFieldStructured, Entries: entries}
}

// SerializedModifiers builds a field holding serialized modifier records
func SerializedModifiers(text string) ModifierField {
	return ModifierField{Kind: ModifierFieldSerialized, Text: text}
}

// Item is an inventory item as supplied by the catalog.
// Only Name, Modifiers, Effect and Quantity take part in stat resolution.
type Item struct {
	ID        string
	Name      string
	Modifiers ModifierField
	Effect    string
	Quantity  int
}

var _ core.Entity = (*Item)(nil)

// GetID returns the item's ID
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string {
	return EntityTypeItem
}

// DisplayName returns the trimmed name, or DefaultItemName when blank
func (i Item) DisplayName() string {
	if name := strings.TrimSpace(i.Name); name != "" {
		return name
	}
	return DefaultItemName
}

// EquippedQuantity returns the quantity, defaulting to one
func (i Item) EquippedQuantity() int {
	if i.Quantity > 0 {
		return i.Quantity
	}
	return 1
}

type itemJSON struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Modifiers any    `json:"modifiers,omitempty"`
	Effect    string `json:"effect,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// MarshalJSON writes the modifier field back in the shape it was received in
func (i Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{
		ID:       i.ID,
		Name:     i.Name,
		Effect:   i.Effect,
		Quantity: i.Quantity,
	}

	switch i.Modifiers.Kind {
	case ModifierFieldStructured:
		entries := i.Modifiers.Entries
		if entries == nil {
			entries = []ModifierInput{}
		}
		out.Modifiers = entries
	case ModifierFieldSerialized:
		out.Modifiers = i.Modifiers.Text
	}

	return json.Marshal(out)
}

// UnmarshalJSON ingests an item through DecodeItem.
// A JSON value that is not an object yields an empty item.
func (i *Item) UnmarshalJSON(data []byte) error {
	raw, err := decodeJSONValue(data)
	if err != nil {
		return err
	}
	fields, _ := raw.(map[string]any)
	*i = DecodeItem(fields)
	return nil
}

// DecodeItem builds an Item from a generic map as produced by JSON, YAML or
// structpb decoding. This is the only place the shape of the modifier field is
// inspected. Fields of unexpected types are ignored.
func DecodeItem(raw map[string]any) Item {
	item := Item{
		ID:        stringField(raw, "id"),
		Name:      stringField(raw, "name"),
		Effect:    stringField(raw, "effect"),
		Modifiers: DecodeModifierField(raw["modifiers"]),
	}

	if q, ok := intFromAny(raw["quantity"]); ok && q > 0 {
		item.Quantity = q
	}

	return item
}

// DecodeModifierField classifies a raw modifier field value
func DecodeModifierField(raw any) ModifierField {
	switch v := raw.(type) {
	case string:
		return SerializedModifiers(v)
	case []any:
		return StructuredModifiers(DecodeModifierInputs(v)...)
	case []map[string]any:
		entries := make([]ModifierInput, 0, len(v))
		for _, e := range v {
			entries = append(entries, DecodeModifierInput(e))
		}
		return StructuredModifiers(entries...)
	case []ModifierInput:
		return StructuredModifiers(v...)
	default:
		return ModifierField{Kind: ModifierFieldAbsent}
	}
}

// DecodeModifierInputs decodes a list of generic records; non-object entries are skipped
func DecodeModifierInputs(raw []any) []ModifierInput {
	entries := make([]ModifierInput, 0, len(raw))
	for _, e := range raw {
		fields, ok := e.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, DecodeModifierInput(fields))
	}
	return entries
}

// DecodeModifierInput builds a ModifierInput from a generic record
func DecodeModifierInput(raw map[string]any) ModifierInput {
	input := ModifierInput{
		Stat:   stringField(raw, "stat"),
		Value:  numberFromAny(raw["value"]),
		Type:   stringField(raw, "type"),
		Source: stringField(raw, "source"),
	}

	duration, present := raw["durationTurns"]
	if !present {
		duration = raw["duration_turns"]
	}
	if turns, ok := intFromAny(duration); ok && turns >= 0 {
		input.DurationTurns = &turns
	}

	return input
}

// decodeJSONValue decodes data keeping numbers as json.Number
func decodeJSONValue(data []byte) (any, error) {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

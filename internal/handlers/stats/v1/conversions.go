package v1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
)

// Request field names.
const (
	fieldItem        = "item"
	fieldItems       = "items"
	fieldCharacterID = "characterId"
)

// itemFromValue ingests one request item. Anything that is not an object
// becomes an empty item, which resolves to no modifiers.
func itemFromValue(raw any) inventory.Item {
	fields, _ := raw.(map[string]any)
	return inventory.DecodeItem(fields)
}

func itemsFromRequest(req map[string]any) ([]inventory.Item, error) {
	raw, present := req[fieldItems]
	if !present || raw == nil {
		return []inventory.Item{}, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, errors.InvalidArgument("items must be a list").WithMeta("field", fieldItems)
	}

	items := make([]inventory.Item, 0, len(list))
	for _, entry := range list {
		items = append(items, itemFromValue(entry))
	}
	return items, nil
}

func characterIDFromRequest(req map[string]any) string {
	id, _ := req[fieldCharacterID].(string)
	return id
}

// itemValue re-encodes an item through its JSON form so the modifier field
// keeps the shape it was stored with.
func itemValue(item inventory.Item) (any, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode item %q", item.ID)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to encode item %q", item.ID)
	}
	return out, nil
}

func itemsValue(items []inventory.Item) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		v, err := itemValue(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func modifierValue(m inventory.CanonicalModifier) map[string]any {
	out := map[string]any{
		"stat":  m.Stat,
		"value": m.Value,
		"type":  string(m.Type),
	}
	if m.Source != "" {
		out["source"] = m.Source
	}
	if m.DurationTurns != nil {
		out["durationTurns"] = *m.DurationTurns
	}
	return out
}

func modifiersValue(mods []inventory.CanonicalModifier) []any {
	out := make([]any, 0, len(mods))
	for _, m := range mods {
		out = append(out, modifierValue(m))
	}
	return out
}

func aggregatedValue(mods []inventory.AggregatedModifier) []any {
	out := make([]any, 0, len(mods))
	for _, m := range mods {
		out = append(out, map[string]any{
			"stat":  m.Stat,
			"type":  string(m.Type),
			"value": m.Value,
		})
	}
	return out
}

func stringsValue(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

// totalsValue renders StatTotals for the character sheet panel. Hidden keys
// are listed so the caller can decide whether to show them.
func totalsValue(t inventory.StatTotals) map[string]any {
	totals := make(map[string]any, len(t.Totals))
	for key, v := range t.Totals {
		totals[key] = v
	}

	breakdown := make(map[string]any, len(t.Breakdown))
	for key, contributions := range t.Breakdown {
		list := make([]any, 0, len(contributions))
		for _, c := range contributions {
			list = append(list, map[string]any{
				"stat":     c.Stat,
				"value":    c.Value,
				"type":     string(c.Type),
				"source":   c.Source,
				"quantity": c.Quantity,
			})
		}
		breakdown[key] = list
	}

	hidden := make([]any, 0, len(t.Hidden))
	for _, key := range t.Keys {
		if t.IsHidden(key) {
			hidden = append(hidden, key)
		}
	}

	return map[string]any{
		"totals":      totals,
		"breakdown":   breakdown,
		"totalPoints": t.TotalPoints,
		"keys":        stringsValue(t.Keys),
		"visibleKeys": stringsValue(t.VisibleKeys()),
		"hidden":      hidden,
	}
}

func timeValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return out, nil
}

func inventoryResponse(characterID string, items []inventory.Item, updatedAt time.Time) (*structpb.Struct, error) {
	list, err := itemsValue(items)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]any{
		fieldCharacterID: characterID,
		fieldItems:       list,
		"updatedAt":      timeValue(updatedAt),
	})
	return resp, errors.ToGRPCError(err)
}

package testutils

import (
	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// TestCharacterID is the character the fixtures belong to.
const TestCharacterID = "char-test-001"

// Modifier builds a structured modifier record.
func Modifier(stat string, value float64, typ string) inventory.ModifierInput {
	return inventory.ModifierInput{Stat: stat, Value: inventory.NumberOf(value), Type: typ}
}

// CreateTestSceptre carries two structured modifiers on unknown stats.
func CreateTestSceptre() inventory.Item {
	return inventory.Item{
		ID:   "item-sceptre",
		Name: "Sceptre",
		Modifiers: inventory.StructuredModifiers(
			Modifier("Puissance Magie 1", 2, "flat"),
			Modifier("Maitrise Magie 1", 1, "flat"),
		),
	}
}

// CreateTestRing carries a structured flat bonus and a percent bonus.
func CreateTestRing() inventory.Item {
	return inventory.Item{
		ID:   "item-ring",
		Name: "Anneau",
		Modifiers: inventory.StructuredModifiers(
			Modifier("Force", 1, "flat"),
			Modifier("Vitesse", 5, "percent"),
		),
	}
}

// CreateTestBoots stores its modifiers as serialized text.
func CreateTestBoots() inventory.Item {
	return inventory.Item{
		ID:        "item-boots",
		Name:      "Bottes",
		Modifiers: inventory.SerializedModifiers(`[{"stat":"vitesse","value":2}]`),
	}
}

// CreateTestPotion only describes its bonus in free text.
func CreateTestPotion() inventory.Item {
	return inventory.Item{
		ID:       "item-potion",
		Name:     "Potion",
		Quantity: 3,
		Effect:   "+10 PV",
	}
}

// CreateTestInventory bundles every fixture item.
func CreateTestInventory() []inventory.Item {
	return []inventory.Item{
		CreateTestSceptre(),
		CreateTestRing(),
		CreateTestBoots(),
		CreateTestPotion(),
	}
}

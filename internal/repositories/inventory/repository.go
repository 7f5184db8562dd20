// Package inventory stores each character's carried items.
package inventory

import (
	"context"
	"time"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/Saichiiro/astoria-sub001/internal/repositories/inventory Repository

// Repository persists one inventory per character.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	// Update replaces the stored inventory, creating it when absent.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CharacterInventory is the stored record.
type CharacterInventory struct {
	CharacterID string           `json:"character_id"`
	Items       []inventory.Item `json:"items"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type GetInput struct {
	CharacterID string
}

type GetOutput struct {
	Inventory *CharacterInventory
}

type UpdateInput struct {
	CharacterID string
	Items       []inventory.Item
}

type UpdateOutput struct {
	Inventory *CharacterInventory
}

type DeleteInput struct {
	CharacterID string
}

type DeleteOutput struct{}

// Package inventory serves stat totals for stored character inventories on
// top of the stat engine.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/Saichiiro/astoria-sub001/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Saichiiro/astoria-sub001/internal/engine"
	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
	"github.com/Saichiiro/astoria-sub001/internal/pkg/idgen"
	inventoryrepo "github.com/Saichiiro/astoria-sub001/internal/repositories/inventory"
)

// Service is the inventory use-case surface consumed by the gRPC handler.
type Service interface {
	ResolveItem(ctx context.Context, input *ResolveItemInput) (*ResolveItemOutput, error)
	ComputeTotals(ctx context.Context, input *ComputeTotalsInput) (*ComputeTotalsOutput, error)

	SaveInventory(ctx context.Context, input *SaveInventoryInput) (*SaveInventoryOutput, error)
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	ComputeCharacterTotals(ctx context.Context, input *ComputeCharacterTotalsInput) (*ComputeCharacterTotalsOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Engine        engine.Engine
	InventoryRepo inventoryrepo.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	repo   inventoryrepo.Repository
	idGen  idgen.Generator
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine: cfg.Engine,
		repo:   cfg.InventoryRepo,
		idGen:  cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) ResolveItem(_ context.Context, input *ResolveItemInput) (*ResolveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mods := o.engine.ResolveModifiers(input.Item)
	badges := make([]string, 0, len(mods))
	for _, m := range mods {
		badges = append(badges, o.engine.Format(m))
	}

	return &ResolveItemOutput{
		Modifiers:  mods,
		Badges:     badges,
		Aggregated: o.engine.AggregateAcrossTypes(mods),
	}, nil
}

func (o *orchestrator) ComputeTotals(_ context.Context, input *ComputeTotalsInput) (*ComputeTotalsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.computeTotals(input.Items), nil
}

func (o *orchestrator) SaveInventory(ctx context.Context, input *SaveInventoryInput) (*SaveInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	characterID := strings.TrimSpace(input.CharacterID)
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}

	items := make([]inventory.Item, len(input.Items))
	copy(items, input.Items)
	assigned := 0
	for i := range items {
		if strings.TrimSpace(items[i].ID) == "" {
			items[i].ID = o.idGen.Generate()
			assigned++
		}
	}

	out, err := o.repo.Update(ctx, inventoryrepo.UpdateInput{
		CharacterID: characterID,
		Items:       items,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save inventory for character %s", characterID)
	}

	slog.Info("Saved inventory",
		"character_id", characterID,
		"items", len(items),
		"ids_assigned", assigned)

	return &SaveInventoryOutput{
		CharacterID: out.Inventory.CharacterID,
		Items:       out.Inventory.Items,
		UpdatedAt:   out.Inventory.UpdatedAt,
	}, nil
}

func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	stored, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetInventoryOutput{
		CharacterID: stored.CharacterID,
		Items:       stored.Items,
		UpdatedAt:   stored.UpdatedAt,
	}, nil
}

func (o *orchestrator) ComputeCharacterTotals(ctx context.Context, input *ComputeCharacterTotalsInput) (*ComputeCharacterTotalsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	stored, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	computed := o.computeTotals(stored.Items)

	slog.Debug("Computed character totals",
		"character_id", stored.CharacterID,
		"items", len(stored.Items),
		"keys", len(computed.Totals.Keys),
		"total_points", computed.Totals.TotalPoints)

	return &ComputeCharacterTotalsOutput{
		CharacterID: stored.CharacterID,
		Totals:      computed.Totals,
		Aggregated:  computed.Aggregated,
		UpdatedAt:   stored.UpdatedAt,
	}, nil
}

func (o *orchestrator) load(ctx context.Context, characterID string) (*inventoryrepo.CharacterInventory, error) {
	characterID = strings.TrimSpace(characterID)
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}

	out, err := o.repo.Get(ctx, inventoryrepo.GetInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load inventory for character %s", characterID)
	}
	return out.Inventory, nil
}

// computeTotals pairs the per-key totals with the cross-item aggregation of
// every resolved modifier.
func (o *orchestrator) computeTotals(items []inventory.Item) *ComputeTotalsOutput {
	var all []inventory.CanonicalModifier
	for _, item := range items {
		all = append(all, o.engine.ResolveModifiers(item)...)
	}

	return &ComputeTotalsOutput{
		Totals:     o.engine.ComputeTotals(items),
		Aggregated: o.engine.AggregateAcrossTypes(all),
	}
}

func validateCharacterID(characterID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", characterID, vb)
	return vb.Build()
}

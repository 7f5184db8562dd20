// Package v1 exposes the stat engine and stored inventories over gRPC.
package v1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Saichiiro/astoria-sub001/internal/errors"
	"github.com/Saichiiro/astoria-sub001/internal/orchestrators/inventory"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.InventoryService == nil {
		return errors.InvalidArgument("inventory service is required")
	}
	return nil
}

// Handler implements StatsServiceServer
type Handler struct {
	inventoryService inventory.Service
}

var _ StatsServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{inventoryService: cfg.InventoryService}, nil
}

// ResolveModifiers resolves the modifiers of {"item": {...}}.
func (h *Handler) ResolveModifiers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.AsMap()
	raw, ok := fields[fieldItem]
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item is required").WithMeta("field", fieldItem))
	}

	out, err := h.inventoryService.ResolveItem(ctx, &inventory.ResolveItemInput{Item: itemFromValue(raw)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]any{
		"modifiers":  modifiersValue(out.Modifiers),
		"badges":     stringsValue(out.Badges),
		"aggregated": aggregatedValue(out.Aggregated),
	})
	return resp, errors.ToGRPCError(err)
}

// ComputeTotals aggregates {"items": [...]} without touching storage.
func (h *Handler) ComputeTotals(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	items, err := itemsFromRequest(req.AsMap())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.ComputeTotals(ctx, &inventory.ComputeTotalsInput{Items: items})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := totalsValue(out.Totals)
	fields["aggregated"] = aggregatedValue(out.Aggregated)
	resp, err := toStruct(fields)
	return resp, errors.ToGRPCError(err)
}

// GetCharacterTotals aggregates the stored inventory of {"characterId": ...}.
func (h *Handler) GetCharacterTotals(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.inventoryService.ComputeCharacterTotals(ctx, &inventory.ComputeCharacterTotalsInput{
		CharacterID: characterIDFromRequest(req.AsMap()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := totalsValue(out.Totals)
	fields["aggregated"] = aggregatedValue(out.Aggregated)
	fields[fieldCharacterID] = out.CharacterID
	fields["updatedAt"] = timeValue(out.UpdatedAt)
	resp, err := toStruct(fields)
	return resp, errors.ToGRPCError(err)
}

func (h *Handler) GetInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.inventoryService.GetInventory(ctx, &inventory.GetInventoryInput{
		CharacterID: characterIDFromRequest(req.AsMap()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return inventoryResponse(out.CharacterID, out.Items, out.UpdatedAt)
}

// SaveInventory replaces the stored inventory with {"characterId", "items"}.
func (h *Handler) SaveInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.AsMap()
	items, err := itemsFromRequest(fields)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.SaveInventory(ctx, &inventory.SaveInventoryInput{
		CharacterID: characterIDFromRequest(fields),
		Items:       items,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return inventoryResponse(out.CharacterID, out.Items, out.UpdatedAt)
}

package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	entities "github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
	v1 "github.com/Saichiiro/astoria-sub001/internal/handlers/stats/v1"
	"github.com/Saichiiro/astoria-sub001/internal/orchestrators/inventory"
	inventorymock "github.com/Saichiiro/astoria-sub001/internal/orchestrators/inventory/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *inventorymock.MockService
	handler     *v1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = inventorymock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1.NewHandler(&v1.HandlerConfig{InventoryService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestResolveModifiersDecodesItemShape() {
	two := 2
	s.mockService.EXPECT().
		ResolveItem(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *inventory.ResolveItemInput) (*inventory.ResolveItemOutput, error) {
			s.Equal("Sceptre", input.Item.Name)
			s.Equal(entities.ModifierFieldSerialized, input.Item.Modifiers.Kind)
			return &inventory.ResolveItemOutput{
				Modifiers: []entities.CanonicalModifier{
					{Stat: "Magie", Value: 2, Type: entities.ModifierTypeFlat, Source: "effet", DurationTurns: &two},
				},
				Badges:     []string{"+2 Magie"},
				Aggregated: []entities.AggregatedModifier{{Stat: "Magie", Type: entities.ModifierTypeFlat, Value: 2}},
			}, nil
		})

	resp, err := s.handler.ResolveModifiers(s.ctx, s.request(map[string]any{
		"item": map[string]any{"name": "Sceptre", "modifiers": `[{"stat":"Magie","value":2}]`},
	}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal([]any{"+2 Magie"}, got["badges"])
	mods := got["modifiers"].([]any)
	s.Require().Len(mods, 1)
	s.Equal(map[string]any{
		"stat": "Magie", "value": float64(2), "type": "flat", "source": "effet", "durationTurns": float64(2),
	}, mods[0])
	s.Len(got["aggregated"], 1)
}

func (s *HandlerTestSuite) TestResolveModifiersRequiresItem() {
	_, err := s.handler.ResolveModifiers(s.ctx, s.request(map[string]any{}))

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
}

func (s *HandlerTestSuite) TestComputeTotals() {
	s.mockService.EXPECT().
		ComputeTotals(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *inventory.ComputeTotalsInput) (*inventory.ComputeTotalsOutput, error) {
			s.Require().Len(input.Items, 3)
			s.Equal(entities.ModifierFieldStructured, input.Items[0].Modifiers.Kind)
			s.Equal(entities.Item{}, input.Items[2], "non-object entries become empty items")

			totals := entities.NewStatTotals()
			totals.Keys = []string{"hp", "force"}
			totals.Totals["hp"] = 10
			totals.Totals["force"] = 3
			totals.Hidden["hp"] = true
			totals.TotalPoints = 13
			totals.Breakdown["force"] = []entities.Contribution{
				{Stat: "Force", Value: 3, Type: entities.ModifierTypeFlat, Source: "Anneau", Quantity: 1},
			}
			return &inventory.ComputeTotalsOutput{Totals: totals, Aggregated: []entities.AggregatedModifier{}}, nil
		})

	resp, err := s.handler.ComputeTotals(s.ctx, s.request(map[string]any{
		"items": []any{
			map[string]any{"name": "Anneau", "modifiers": []any{map[string]any{"stat": "Force", "value": 3}}},
			map[string]any{"name": "Potion", "effect": "+10 PV"},
			"garbage",
		},
	}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal(map[string]any{"hp": float64(10), "force": float64(3)}, got["totals"])
	s.Equal(float64(13), got["totalPoints"])
	s.Equal([]any{"hp", "force"}, got["keys"])
	s.Equal([]any{"force"}, got["visibleKeys"])
	s.Equal([]any{"hp"}, got["hidden"])
	breakdown := got["breakdown"].(map[string]any)
	s.Equal([]any{map[string]any{
		"stat": "Force", "value": float64(3), "type": "flat", "source": "Anneau", "quantity": float64(1),
	}}, breakdown["force"])
}

func (s *HandlerTestSuite) TestComputeTotalsRejectsNonListItems() {
	_, err := s.handler.ComputeTotals(s.ctx, s.request(map[string]any{"items": "nope"}))

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
}

func (s *HandlerTestSuite) TestComputeTotalsMissingItemsIsEmpty() {
	s.mockService.EXPECT().
		ComputeTotals(s.ctx, &inventory.ComputeTotalsInput{Items: []entities.Item{}}).
		Return(&inventory.ComputeTotalsOutput{Totals: entities.NewStatTotals()}, nil)

	resp, err := s.handler.ComputeTotals(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)
	s.Equal(float64(0), resp.AsMap()["totalPoints"])
}

func (s *HandlerTestSuite) TestGetCharacterTotalsMapsNotFound() {
	s.mockService.EXPECT().
		ComputeCharacterTotals(s.ctx, &inventory.ComputeCharacterTotalsInput{CharacterID: "ghost"}).
		Return(nil, errors.NotFound("inventory for character ghost not found").WithMeta("character_id", "ghost"))

	_, err := s.handler.GetCharacterTotals(s.ctx, s.request(map[string]any{"characterId": "ghost"}))

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("ghost", errors.GetMeta(errors.FromGRPCError(err))["character_id"])
}

func (s *HandlerTestSuite) TestSaveInventory() {
	updatedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.mockService.EXPECT().
		SaveInventory(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *inventory.SaveInventoryInput) (*inventory.SaveInventoryOutput, error) {
			s.Equal("char-1", input.CharacterID)
			s.Require().Len(input.Items, 1)
			items := append([]entities.Item(nil), input.Items...)
			items[0].ID = "item_1"
			return &inventory.SaveInventoryOutput{CharacterID: "char-1", Items: items, UpdatedAt: updatedAt}, nil
		})

	resp, err := s.handler.SaveInventory(s.ctx, s.request(map[string]any{
		"characterId": "char-1",
		"items":       []any{map[string]any{"name": "Cape", "modifiers": "[]", "quantity": 2}},
	}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal("char-1", got["characterId"])
	s.Equal("2026-01-02T03:04:05Z", got["updatedAt"])
	s.Equal([]any{map[string]any{
		"id": "item_1", "name": "Cape", "modifiers": "[]", "quantity": float64(2),
	}}, got["items"])
}

func (s *HandlerTestSuite) TestGetInventory() {
	s.mockService.EXPECT().
		GetInventory(s.ctx, &inventory.GetInventoryInput{CharacterID: "char-1"}).
		Return(&inventory.GetInventoryOutput{
			CharacterID: "char-1",
			Items: []entities.Item{{
				ID:        "a",
				Name:      "Anneau",
				Modifiers: entities.StructuredModifiers(entities.ModifierInput{Stat: "Force", Value: entities.NumberOf(1)}),
			}},
		}, nil)

	resp, err := s.handler.GetInventory(s.ctx, s.request(map[string]any{"characterId": "char-1"}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal("", got["updatedAt"])
	items := got["items"].([]any)
	s.Require().Len(items, 1)
	s.Equal([]any{map[string]any{"stat": "Force", "value": float64(1)}}, items[0].(map[string]any)["modifiers"])
}

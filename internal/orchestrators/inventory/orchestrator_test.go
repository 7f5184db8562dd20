package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/Saichiiro/astoria-sub001/internal/engine/mock"
	"github.com/Saichiiro/astoria-sub001/internal/engine/stats"
	entities "github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
	"github.com/Saichiiro/astoria-sub001/internal/orchestrators/inventory"
	idgenmock "github.com/Saichiiro/astoria-sub001/internal/pkg/idgen/mock"
	inventoryrepo "github.com/Saichiiro/astoria-sub001/internal/repositories/inventory"
	inventoryrepomock "github.com/Saichiiro/astoria-sub001/internal/repositories/inventory/mock"
	"github.com/Saichiiro/astoria-sub001/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *inventoryrepomock.MockRepository
	mockIDGen    *idgenmock.MockGenerator
	orchestrator inventory.Service
	ctx          context.Context
	updatedAt    time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = inventoryrepomock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()
	s.updatedAt = time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)

	var err error
	s.orchestrator, err = inventory.NewOrchestrator(&inventory.Config{
		Engine:        stats.New(nil),
		InventoryRepo: s.mockRepo,
		IDGenerator:   s.mockIDGen,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name    string
		cfg     *inventory.Config
		missing []string
	}{
		{name: "nil config", cfg: nil},
		{name: "empty config", cfg: &inventory.Config{}, missing: []string{"Engine", "InventoryRepo", "IDGenerator"}},
		{
			name:    "missing repo",
			cfg:     &inventory.Config{Engine: stats.New(nil), IDGenerator: s.mockIDGen},
			missing: []string{"InventoryRepo"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := inventory.NewOrchestrator(tc.cfg)
			s.Nil(svc)
			s.True(errors.IsInvalidArgument(err))
			for _, field := range tc.missing {
				s.Contains(err.Error(), field)
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestResolveItem() {
	out, err := s.orchestrator.ResolveItem(s.ctx, &inventory.ResolveItemInput{
		Item: entities.Item{
			Name: "Gantelets",
			Modifiers: entities.StructuredModifiers(
				testutils.Modifier("Force", 2, "flat"),
				testutils.Modifier("STR", 1, "flat"),
				testutils.Modifier("Vitesse", -10, "percent"),
			),
		},
	})
	s.Require().NoError(err)

	s.Len(out.Modifiers, 3)
	s.Equal([]string{"+2 Force", "+1 STR", "-10% Vitesse"}, out.Badges)
	s.Equal([]entities.AggregatedModifier{
		{Stat: "Force", Type: entities.ModifierTypeFlat, Value: 3},
		{Stat: "Vitesse", Type: entities.ModifierTypePercent, Value: -10},
	}, out.Aggregated)
}

func (s *OrchestratorTestSuite) TestResolveItemEmpty() {
	out, err := s.orchestrator.ResolveItem(s.ctx, &inventory.ResolveItemInput{})
	s.Require().NoError(err)
	s.Empty(out.Modifiers)
	s.NotNil(out.Badges)
	s.Empty(out.Aggregated)
}

func (s *OrchestratorTestSuite) TestNilInputs() {
	_, err := s.orchestrator.ResolveItem(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.ComputeTotals(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.SaveInventory(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.GetInventory(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.ComputeCharacterTotals(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestComputeTotals() {
	out, err := s.orchestrator.ComputeTotals(s.ctx, &inventory.ComputeTotalsInput{
		Items: testutils.CreateTestInventory(),
	})
	s.Require().NoError(err)

	s.Equal(float64(1), out.Totals.Totals[stats.KeyForce])
	s.Equal(float64(7), out.Totals.Totals[stats.KeyVitesse])
	s.Equal(float64(10), out.Totals.Totals[stats.KeyHP])
	s.True(out.Totals.IsHidden(stats.KeyHP))
	s.Equal(float64(16), out.Totals.TotalPoints)

	s.Contains(out.Aggregated, entities.AggregatedModifier{Stat: "Vitesse", Type: entities.ModifierTypePercent, Value: 5})
	s.Contains(out.Aggregated, entities.AggregatedModifier{Stat: "vitesse", Type: entities.ModifierTypeFlat, Value: 2})
}

func (s *OrchestratorTestSuite) TestSaveInventoryAssignsMissingIDs() {
	items := []entities.Item{
		{ID: "keep-me", Name: "Cape"},
		{Name: "Anneau"},
		{ID: "   ", Name: "Bottes"},
	}

	s.mockIDGen.EXPECT().Generate().Return("item_1")
	s.mockIDGen.EXPECT().Generate().Return("item_2")
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.UpdateInput) (*inventoryrepo.UpdateOutput, error) {
			s.Equal(testutils.TestCharacterID, input.CharacterID)
			return &inventoryrepo.UpdateOutput{Inventory: &inventoryrepo.CharacterInventory{
				CharacterID: input.CharacterID,
				Items:       input.Items,
				UpdatedAt:   s.updatedAt,
			}}, nil
		})

	out, err := s.orchestrator.SaveInventory(s.ctx, &inventory.SaveInventoryInput{
		CharacterID: "  " + testutils.TestCharacterID + " ",
		Items:       items,
	})
	s.Require().NoError(err)

	s.Equal(testutils.TestCharacterID, out.CharacterID)
	s.Equal(s.updatedAt, out.UpdatedAt)
	s.Require().Len(out.Items, 3)
	s.Equal("keep-me", out.Items[0].ID)
	s.Equal("item_1", out.Items[1].ID)
	s.Equal("item_2", out.Items[2].ID)
	s.Equal("", items[1].ID, "caller slice is not modified")
}

func (s *OrchestratorTestSuite) TestSaveInventoryRequiresCharacterID() {
	_, err := s.orchestrator.SaveInventory(s.ctx, &inventory.SaveInventoryInput{CharacterID: " "})
	s.True(errors.IsInvalidArgument(err))
	s.Equal("is required", errors.GetMeta(err)["field.character_id"])
}

func (s *OrchestratorTestSuite) TestSaveInventoryRepoFailure() {
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.SaveInventory(s.ctx, &inventory.SaveInventoryInput{
		CharacterID: testutils.TestCharacterID,
	})
	s.True(errors.IsInternal(err))
	s.Contains(errors.GetMessage(err), testutils.TestCharacterID)
}

func (s *OrchestratorTestSuite) TestGetInventory() {
	stored := testutils.CreateTestInventory()
	s.mockRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{CharacterID: testutils.TestCharacterID}).
		Return(&inventoryrepo.GetOutput{Inventory: &inventoryrepo.CharacterInventory{
			CharacterID: testutils.TestCharacterID,
			Items:       stored,
			UpdatedAt:   s.updatedAt,
		}}, nil)

	out, err := s.orchestrator.GetInventory(s.ctx, &inventory.GetInventoryInput{CharacterID: testutils.TestCharacterID})
	s.Require().NoError(err)
	s.Equal(stored, out.Items)
	s.Equal(s.updatedAt, out.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestGetInventoryNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{CharacterID: "ghost"}).
		Return(nil, errors.NotFound("inventory for character ghost not found"))

	_, err := s.orchestrator.GetInventory(s.ctx, &inventory.GetInventoryInput{CharacterID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestComputeCharacterTotals() {
	s.mockRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{CharacterID: testutils.TestCharacterID}).
		Return(&inventoryrepo.GetOutput{Inventory: &inventoryrepo.CharacterInventory{
			CharacterID: testutils.TestCharacterID,
			Items: []entities.Item{
				{Name: "Anneau", Effect: "+1 Force"},
				{Name: "Gantelet", Effect: "+2 force"},
			},
			UpdatedAt: s.updatedAt,
		}}, nil)

	out, err := s.orchestrator.ComputeCharacterTotals(s.ctx, &inventory.ComputeCharacterTotalsInput{
		CharacterID: testutils.TestCharacterID,
	})
	s.Require().NoError(err)

	s.Equal(testutils.TestCharacterID, out.CharacterID)
	s.Equal(float64(3), out.Totals.Totals[stats.KeyForce])
	s.Len(out.Totals.Breakdown[stats.KeyForce], 2)
	s.Equal([]entities.AggregatedModifier{
		{Stat: "Force", Type: entities.ModifierTypeFlat, Value: 3},
	}, out.Aggregated)
	s.Equal(s.updatedAt, out.UpdatedAt)
}

// The orchestrator only delegates to the engine; a mocked engine proves
// nothing is computed on the side.
func (s *OrchestratorTestSuite) TestResolveItemDelegatesToEngine() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	svc, err := inventory.NewOrchestrator(&inventory.Config{
		Engine:        mockEngine,
		InventoryRepo: s.mockRepo,
		IDGenerator:   s.mockIDGen,
	})
	s.Require().NoError(err)

	item := entities.Item{Name: "Dague", Effect: "+1 Attaque"}
	mod := entities.CanonicalModifier{Stat: "Attaque", Value: 1, Type: entities.ModifierTypeFlat}
	agg := []entities.AggregatedModifier{{Stat: "Attaque", Type: entities.ModifierTypeFlat, Value: 1}}

	mockEngine.EXPECT().ResolveModifiers(item).Return([]entities.CanonicalModifier{mod})
	mockEngine.EXPECT().Format(mod).Return("badge")
	mockEngine.EXPECT().AggregateAcrossTypes([]entities.CanonicalModifier{mod}).Return(agg)

	out, err := svc.ResolveItem(s.ctx, &inventory.ResolveItemInput{Item: item})
	s.Require().NoError(err)
	s.Equal([]string{"badge"}, out.Badges)
	s.Equal(agg, out.Aggregated)
}

func (s *OrchestratorTestSuite) TestComputeCharacterTotalsPropagatesStoreErrors() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "not found", err: errors.NotFound("missing"), check: errors.IsNotFound},
		{name: "plain failure", err: fmt.Errorf("connection reset"), check: errors.IsInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, tc.err)

			_, err := s.orchestrator.ComputeCharacterTotals(s.ctx, &inventory.ComputeCharacterTotalsInput{
				CharacterID: testutils.TestCharacterID,
			})
			s.True(tc.check(err))
		})
	}
}

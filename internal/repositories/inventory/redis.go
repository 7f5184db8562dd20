package inventory

import (
	"context"
	"encoding/json"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
	"github.com/Saichiiro/astoria-sub001/internal/pkg/clock"
	redisclient "github.com/Saichiiro/astoria-sub001/internal/redis"
)

const (
	// KeyPrefix starts every stored inventory key: inventory:character:{character_id}
	KeyPrefix = "inventory:character:"
	// KeyPattern matches every stored inventory in a SCAN.
	KeyPattern = KeyPrefix + "*"

	errCharacterIDEmpty = "character ID cannot be empty"
)

// RedisConfig wires the redis store. Clock defaults to the system clock.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// NewRedis creates a redis-backed Repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid inventory repository config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: clk}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.CharacterID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("inventory for character %s not found", input.CharacterID).
				WithMeta("character_id", input.CharacterID)
		}
		return nil, errors.Wrap(err, "failed to read inventory from redis")
	}

	var record CharacterInventory
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to decode inventory for character %s", input.CharacterID)
	}
	if record.Items == nil {
		record.Items = []inventory.Item{}
	}

	return &GetOutput{Inventory: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	items := input.Items
	if items == nil {
		items = []inventory.Item{}
	}
	record := &CharacterInventory{
		CharacterID: input.CharacterID,
		Items:       items,
		UpdatedAt:   r.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode inventory")
	}

	if err := r.client.Set(ctx, buildKey(input.CharacterID), data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to write inventory to redis")
	}

	return &UpdateOutput{Inventory: record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete inventory from redis")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("inventory for character %s not found", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}

func buildKey(characterID string) string {
	return KeyPrefix + characterID
}

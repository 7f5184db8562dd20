package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Saichiiro/astoria-sub001/internal/config"
	"github.com/Saichiiro/astoria-sub001/internal/redis"
	inventoryrepo "github.com/Saichiiro/astoria-sub001/internal/repositories/inventory"
)

var (
	scanRedisAddr string
	scanAssumeYes bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find stored inventories that can no longer be decoded",
	Long: `Scan every inventory:character:* key, report records that are not valid
inventory JSON or whose character_id does not match the key, and offer to delete them.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanRedisAddr, "redis", "", "redis address (overrides ASTORIA_REDIS_ADDR)")
	scanCmd.Flags().BoolVar(&scanAssumeYes, "yes", false, "delete corrupted records without asking")
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = scanRedisAddr
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	defer func() { _ = client.Close() }()

	_, err = scanInventories(ctx, client, cmd.InOrStdin(), cmd.OutOrStdout(), scanAssumeYes)
	return err
}

// checkInventoryRecord reports why a stored payload is unusable, or nil.
func checkInventoryRecord(key, data string) error {
	var record inventoryrepo.CharacterInventory
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return fmt.Errorf("invalid inventory json: %w", err)
	}
	if want := strings.TrimPrefix(key, inventoryrepo.KeyPrefix); record.CharacterID != want {
		return fmt.Errorf("character_id %q does not match key", record.CharacterID)
	}
	return nil
}

// scanInventories walks the inventory keys and returns the corrupted ones
// that are still present after the optional cleanup.
func scanInventories(ctx context.Context, client redis.Client, in io.Reader, out io.Writer, assumeYes bool) ([]string, error) {
	iter := client.Scan(ctx, 0, inventoryrepo.KeyPattern, 0).Iterator()

	var corrupted []string
	checked := 0
	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Fprintf(out, "Error reading %s: %v\n", key, err)
			continue
		}
		if err := checkInventoryRecord(key, data); err != nil {
			fmt.Fprintf(out, "Corrupted %s: %v\n", key, err)
			corrupted = append(corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	fmt.Fprintf(out, "Checked %d inventories, found %d corrupted\n", checked, len(corrupted))
	if len(corrupted) == 0 {
		return nil, nil
	}

	if !assumeYes {
		fmt.Fprint(out, "Delete these records? (yes/no): ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(out, "Aborted, no changes made")
			return corrupted, nil
		}
	}

	repo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	var remaining []string
	for _, key := range corrupted {
		characterID := strings.TrimPrefix(key, inventoryrepo.KeyPrefix)
		if _, err := repo.Delete(ctx, inventoryrepo.DeleteInput{CharacterID: characterID}); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", key, err)
			remaining = append(remaining, key)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", key)
	}
	return remaining, nil
}

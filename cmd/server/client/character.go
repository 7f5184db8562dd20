package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var characterID string

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Show the stat totals of a stored character inventory",
	RunE:  runCharacter,
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show the stored inventory of a character",
	RunE:  runInventory,
}

func init() {
	for _, cmd := range []*cobra.Command{characterCmd, inventoryCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}
}

func characterRequest() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"characterId": characterID})
}

func runCharacter(cmd *cobra.Command, _ []string) error {
	req, err := characterRequest()
	if err != nil {
		return err
	}

	client, cleanup, err := createStatsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacterTotals(ctx, req)
	if err != nil {
		return callError("get character totals", err)
	}
	return printResponse(cmd.OutOrStdout(), resp)
}

func runInventory(cmd *cobra.Command, _ []string) error {
	req, err := characterRequest()
	if err != nil {
		return err
	}

	client, cleanup, err := createStatsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetInventory(ctx, req)
	if err != nil {
		return callError("get inventory", err)
	}
	return printResponse(cmd.OutOrStdout(), resp)
}

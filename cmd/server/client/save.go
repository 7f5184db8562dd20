package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	saveCharacterID string
	saveFile        string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Replace a character inventory with the items of a catalog file",
	RunE:  runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveCharacterID, "character-id", "", "Character ID (required)")
	saveCmd.Flags().StringVar(&saveFile, "file", "", "catalog file (required)")
	_ = saveCmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	_ = saveCmd.MarkFlagRequired("file")         // nolint:errcheck // safe to ignore in init
}

func runSave(cmd *cobra.Command, _ []string) error {
	items, err := itemsValue(saveFile)
	if err != nil {
		return err
	}

	req, err := structpb.NewStruct(map[string]any{
		"characterId": saveCharacterID,
		"items":       items,
	})
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

	resp, err := client.SaveInventory(ctx, req)
	if err != nil {
		return callError("save inventory", err)
	}
	return printResponse(cmd.OutOrStdout(), resp)
}

package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	itemName   string
	itemEffect string
	itemFile   string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the modifiers of one item",
	Long: `Resolve the modifiers of a single item, either the first item of a catalog
file or an item described on the command line. Examples:

  client resolve --name "Armure" --effect "-3 Agilité pendant 2 tours"
  client resolve --file sceptre.yaml`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&itemName, "name", "", "item name")
	resolveCmd.Flags().StringVar(&itemEffect, "effect", "", "free text effect")
	resolveCmd.Flags().StringVar(&itemFile, "file", "", "catalog file; its first item is resolved")
	resolveCmd.MarkFlagsMutuallyExclusive("effect", "file")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	item := map[string]any{"name": itemName, "effect": itemEffect}
	if itemFile != "" {
		items, err := itemsValue(itemFile)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return cmd.Help()
		}
		item = items[0].(map[string]any)
	}

	req, err := structpb.NewStruct(map[string]any{"item": item})
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

	resp, err := client.ResolveModifiers(ctx, req)
	if err != nil {
		return callError("resolve modifiers", err)
	}
	return printResponse(cmd.OutOrStdout(), resp)
}

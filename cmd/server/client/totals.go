package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var totalsFile string

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Compute totals for the items of a catalog file",
	RunE:  runTotals,
}

func init() {
	totalsCmd.Flags().StringVar(&totalsFile, "file", "", "catalog file (required)")
	_ = totalsCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runTotals(cmd *cobra.Command, _ []string) error {
	items, err := itemsValue(totalsFile)
	if err != nil {
		return err
	}

	req, err := structpb.NewStruct(map[string]any{"items": items})
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

	resp, err := client.ComputeTotals(ctx, req)
	if err != nil {
		return callError("compute totals", err)
	}
	return printResponse(cmd.OutOrStdout(), resp)
}

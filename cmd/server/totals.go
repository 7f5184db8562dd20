package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Saichiiro/astoria-sub001/internal/catalog"
	"github.com/Saichiiro/astoria-sub001/internal/engine/stats"
	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

var (
	catalogPath string
	showAll     bool
	hiddenStats []string
)

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Print stat totals for an item catalog",
	Long: `Compute stat totals for the items of a YAML or JSON catalog (a file or a
directory of files) without a server, and print them as a character sheet panel.`,
	RunE: runTotals,
}

func init() {
	totalsCmd.Flags().StringVar(&catalogPath, "file", "", "catalog file or directory (required)")
	totalsCmd.Flags().BoolVar(&showAll, "all", false, "include hidden stats (hp, mana...)")
	totalsCmd.Flags().StringSliceVar(&hiddenStats, "hidden", nil, "override the hidden stat keys")
	_ = totalsCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runTotals(cmd *cobra.Command, _ []string) error {
	items, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	engine := stats.New(&stats.Config{HiddenKeys: hiddenStats})
	writePanel(cmd.OutOrStdout(), engine.ComputeTotals(items), showAll)
	return nil
}

func loadCatalog(path string) ([]inventory.Item, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return catalog.LoadDir(path)
	}
	return catalog.LoadFile(path)
}

// writePanel prints one line per stat with its contributors underneath.
func writePanel(w io.Writer, totals inventory.StatTotals, all bool) {
	keys := totals.VisibleKeys()
	if all {
		keys = totals.Keys
	}

	if len(keys) == 0 {
		fmt.Fprintln(w, "No stat bonuses.")
		return
	}

	for _, key := range keys {
		label := key
		if totals.IsHidden(key) {
			label += " (hidden)"
		}
		fmt.Fprintf(w, "%s: %s\n", label, signed(totals.Totals[key]))
		for _, c := range totals.Breakdown[key] {
			line := stats.Format(inventory.CanonicalModifier{Stat: c.Stat, Value: c.Value, Type: c.Type})
			if c.Quantity > 1 {
				fmt.Fprintf(w, "  %s (%s x%d)\n", line, c.Source, c.Quantity)
				continue
			}
			fmt.Fprintf(w, "  %s (%s)\n", line, c.Source)
		}
	}
	fmt.Fprintf(w, "Total points: %s\n", signed(totals.TotalPoints))
}

func signed(v float64) string {
	return fmt.Sprintf("%+g", v)
}
